package log

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	Level  string `yaml:"level" env:"UNDERSCORE_LOG_LEVEL" env-default:"warn" env-description:"Log level [debug, info, warn, error]"`
	Pretty bool   `yaml:"pretty" env:"UNDERSCORE_LOG_PRETTY" env-default:"false" env-description:"Enables human readable logging. Otherwise, uses json output"`
}

// New returns a logger writing to out, usually stderr so that stdout only
// carries command results.
func New(cfg Config, out io.Writer, version string) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	if cfg.Pretty {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.StampMilli,
		}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "underscore").
		Str("version", version).
		Logger()
}
