package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Options struct {
	Service string
	Env     string
	Level   string
}

// New builds the service logger. Production-like environments get JSON on
// stdout; anything else gets the human console writer.
func New(opts Options) zerolog.Logger {
	var log zerolog.Logger
	if isProd(opts.Env) {
		log = zerolog.New(os.Stdout)
	} else {
		log = zerolog.New(zerolog.NewConsoleWriter())
	}

	log = log.Level(parseLevel(opts.Level)).
		With().
		Timestamp().
		Str("service", opts.Service).
		Str("env", opts.Env).
		Logger()

	zerolog.DefaultContextLogger = &log
	return log
}

func isProd(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "prod", "production":
		return true
	}
	return false
}

func parseLevel(lvl string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
