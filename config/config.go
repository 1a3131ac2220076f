// Package config loads wick CLI settings from the environment.
//
// Variables:
//
//	WICK_LOG_LEVEL   debug | info | warn | error   (default warn)
//	WICK_LOG_FORMAT  text | json                   (default text)
//	WICK_WORKERS     tasks evaluated at once, ≥ 1  (default 1)
//	WICK_QUIET       print merged terms only       (default false)
//
// Command-line flags override these values.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig wraps env parsing and validation failures.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var cfgValidate = validator.New()

// Config holds CLI settings.
type Config struct {
	LogLevel  string `env:"WICK_LOG_LEVEL" envDefault:"warn" validate:"oneof=debug info warn error"`
	LogFormat string `env:"WICK_LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	Workers   int    `env:"WICK_WORKERS" envDefault:"1" validate:"gte=1"`
	Quiet     bool   `env:"WICK_QUIET"`
}

// Load parses the environment into a validated Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints, e.g. after flags override env values.
func (c Config) Validate() error {
	if err := cfgValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Level maps LogLevel to a slog level.
func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Logger builds a text or JSON slog logger writing to w.
func (c Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level()}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
