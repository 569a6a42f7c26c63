package util

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/fadilmartias/practice-evaluator/internal/config"
)

// NewLogger writes JSON in production and a console format elsewhere.
func NewLogger(cfg *config.AppConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
		if !cfg.IsProduction() {
			level = zerolog.DebugLevel
		}
	}

	if cfg.IsProduction() {
		return zerolog.New(os.Stdout).Level(level).With().Timestamp().Str("app", cfg.Name).Logger()
	}
	writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
