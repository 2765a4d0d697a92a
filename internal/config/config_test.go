package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GOPORT", "QAP_LANG", "QAP_LOG_LEVEL", "QAP_RATE_LIMIT",
		"QAP_RATE_BURST", "QAP_SHUTDOWN_TIMEOUT", "QAP_OTEL_ENDPOINT",
		"QAP_SOLUTIONS_FILE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, ":8000", cfg.Addr())
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 20.0, cfg.RateLimit)
	assert.Equal(t, 40, cfg.RateBurst)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.OTELEndpoint)
	assert.Empty(t, cfg.SolutionsFile)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOPORT", "9090")
	t.Setenv("QAP_LANG", "pt-br")
	t.Setenv("QAP_LOG_LEVEL", "debug")
	t.Setenv("QAP_RATE_LIMIT", "2.5")
	t.Setenv("QAP_RATE_BURST", "5")
	t.Setenv("QAP_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("QAP_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("QAP_SOLUTIONS_FILE", "data/solutions.csv")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "pt-BR", cfg.Lang)
	assert.Equal(t, 2.5, cfg.RateLimit)
	assert.Equal(t, 5, cfg.RateBurst)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "http://localhost:4318", cfg.OTELEndpoint)
	assert.Equal(t, "data/solutions.csv", cfg.SolutionsFile)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string][2]string{
		"language":  {"QAP_LANG", "not a language!"},
		"log level": {"QAP_LOG_LEVEL", "loud"},
		"rate":      {"QAP_RATE_LIMIT", "0"},
		"burst":     {"QAP_RATE_BURST", "0"},
		"duration":  {"QAP_SHUTDOWN_TIMEOUT", "soon"},
	}
	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
