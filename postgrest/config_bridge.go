package postgrest

import "github.com/filipecabaco/native-postgrest-parser/config"

// The functions below read config.Cfg with a safe fallback, so this
// package behaves sensibly even if a caller never triggers config's
// init() (e.g. a test that imports postgrest alone still gets
// config's init via the transitive import, but the fallback keeps the
// translator correct even if Cfg is ever zeroed out by a caller).

func cfgMaxIdentifierLength() int {
	if config.Cfg.MaxIdentifierLength > 0 {
		return config.Cfg.MaxIdentifierLength
	}
	return 128
}

func cfgMaxQueryDepth() int {
	if config.Cfg.MaxQueryDepth > 0 {
		return config.Cfg.MaxQueryDepth
	}
	return 32
}

func cfgMaxInValues() int {
	if config.Cfg.MaxInValues > 0 {
		return config.Cfg.MaxInValues
	}
	return 1000
}

func cfgDefaultSchema() string {
	if config.Cfg.DefaultSchema != "" {
		return config.Cfg.DefaultSchema
	}
	return "public"
}

func cfgDefaultFTSLanguage() string {
	if config.Cfg.DefaultFTSLanguage != "" {
		return config.Cfg.DefaultFTSLanguage
	}
	return "english"
}
