// Package config loads the server settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

type Config struct {
	Port            string        `env:"GOPORT" envDefault:"8000"`
	Lang            string        `env:"QAP_LANG" envDefault:"en"`
	LogLevel        string        `env:"QAP_LOG_LEVEL" envDefault:"info"`
	RateLimit       float64       `env:"QAP_RATE_LIMIT" envDefault:"20"`
	RateBurst       int           `env:"QAP_RATE_BURST" envDefault:"40"`
	ShutdownTimeout time.Duration `env:"QAP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	OTELEndpoint    string        `env:"QAP_OTEL_ENDPOINT"`
	// SolutionsFile is the optimizer's merged product;price;cluster output.
	SolutionsFile   string        `env:"QAP_SOLUTIONS_FILE"`
}

// Load parses and validates the environment. Lang comes back canonicalized.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	tag, err := language.Parse(cfg.Lang)
	if err != nil {
		return Config{}, fmt.Errorf("parse QAP_LANG %q: %w", cfg.Lang, err)
	}
	cfg.Lang = tag.String()

	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	if cfg.RateLimit <= 0 {
		return Config{}, fmt.Errorf("QAP_RATE_LIMIT must be positive, got %v", cfg.RateLimit)
	}
	if cfg.RateBurst < 1 {
		return Config{}, fmt.Errorf("QAP_RATE_BURST must be at least 1, got %d", cfg.RateBurst)
	}
	return cfg, nil
}

// Addr is the listen address for Port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("parse QAP_LOG_LEVEL %q: %w", s, err)
	}
	return l, nil
}

// Exitf reports a start-up failure on stderr and stops the process. Only
// main calls it, before any server is running.
func Exitf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, "qap:", strings.TrimSpace(msg))
	os.Exit(1)
}
