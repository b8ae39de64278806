package postgrest

import (
	"os"

	"github.com/rs/zerolog"
)

// log is the package-level structured logger. It is a pure side channel:
// nothing in this package branches on whether a log call happened, and
// no exported function performs I/O other than through this logger.
// Grounded on other_examples/wayli-app-fluxbase's query parser, which
// logs the same kind of structural decisions (limit capping, defaulting)
// with zerolog's chained Debug()....Msg() style.
var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
	With().Timestamp().Logger().Level(zerolog.WarnLevel)

// SetLogLevel lets a host raise verbosity (e.g. zerolog.DebugLevel) to
// see structural parse/generate decisions such as PUT-to-upsert
// synthesis or bulk-insert column union sizing.
func SetLogLevel(level zerolog.Level) {
	log = log.Level(level)
}
