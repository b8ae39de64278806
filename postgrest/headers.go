package postgrest

import "strings"

// parsePreferHeader parses the `Prefer` header's comma-separated
// `key=value` pairs into PreferOptions. Unrecognized keys and values are
// ignored, matching PostgREST's own tolerant parsing: a client sending a
// future Prefer token shouldn't break an older server. Grounded on the
// teacher's flat key/value header parsing in api/database (the Prefer-like
// constants there), generalized from the teacher's single-key handling to
// the full multi-key `Prefer` grammar.
func parsePreferHeader(raw string) PreferOptions {
	var opts PreferOptions
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case PreferKeyReturn:
			opts.Return = PreferReturn(value)
		case PreferKeyResolution:
			opts.Resolution = PreferResolution(value)
		case PreferKeyCount:
			opts.Count = PreferCount(value)
		case PreferKeyMissing:
			opts.Missing = PreferMissing(value)
		case PreferKeyPlurality:
			opts.Plurality = PreferPlurality(value)
		}
	}
	return opts
}

// resolveSchema picks the fallback schema to operate against: the
// method-appropriate profile header, then config's default. A dotted
// prefix in the path still wins, because parsePath applies it afterwards
// and uses this result only when the path has no prefix. Grounded
// on PostgREST's own documented precedence and the teacher's
// config.Cfg.DefaultSchema fallback (config/config.go).
func resolveSchema(method Method, headers Headers) string {
	var headerName string
	switch method {
	case MethodGet:
		headerName = HeaderAcceptProfile
	default:
		headerName = HeaderContentProfile
	}
	if v, ok := headers.Get(headerName); ok && v != "" {
		return v
	}
	return cfgDefaultSchema()
}
