// Package config provides centralized configuration for the query translator.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all translator-tunable values. None of them affect
// correctness of the grammar; they bound pathological input (deeply
// nested logic trees, huge IN lists) the way a real deployment would.
type Config struct {
	DefaultSchema       string // schema used when no dotted prefix or profile header is present
	MaxQueryDepth       int    // max nesting depth for and()/or() logic trees
	MaxIdentifierLength int    // max byte length for a table/column/alias identifier
	MaxInValues         int    // max cardinality for an `in.(...)` list, array literal, or quantified list
	DefaultFTSLanguage  string // language used by fts/plfts/phfts/wfts when none is given
}

// Cfg is the global configuration instance, loaded at startup.
var Cfg Config

func init() {
	// Ignore error: a missing .env file is the common case outside dev.
	godotenv.Load()
	Cfg = Load()
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		DefaultSchema:       getEnv("PGREST_DEFAULT_SCHEMA", "public"),
		MaxQueryDepth:       getEnvInt("PGREST_MAX_QUERY_DEPTH", 32),
		MaxIdentifierLength: getEnvInt("PGREST_MAX_IDENTIFIER_LENGTH", 128),
		MaxInValues:         getEnvInt("PGREST_MAX_IN_VALUES", 1000),
		DefaultFTSLanguage:  getEnv("PGREST_DEFAULT_FTS_LANGUAGE", "english"),
	}
}

// getEnv returns the environment variable value or a default if not set.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns the environment variable parsed as an int, or a default
// if unset or unparsable.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
