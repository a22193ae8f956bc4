package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want zerolog.Level
		ok   bool
	}{
		{"", zerolog.InfoLevel, false},
		{"trace", zerolog.TraceLevel, true},
		{" DEBUG ", zerolog.DebugLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"off", zerolog.Disabled, true},
		{"loud", zerolog.InfoLevel, false},
	}

	for _, tt := range tests {
		lvl, ok := ParseLevel(tt.raw)
		assert.Equal(t, tt.want, lvl, tt.raw)
		assert.Equal(t, tt.ok, ok, tt.raw)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := DefaultConfig(ProfileRuntime)
	env := map[string]string{EnvLogLevel: "error", EnvLogNoColor: "true"}

	ApplyEnvOverrides(&cfg, func(k string) string { return env[k] })

	assert.Equal(t, zerolog.ErrorLevel, cfg.Level)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.Timestamp)
}

func TestNewWritesConsoleLines(t *testing.T) {
	var buf bytes.Buffer

	logger := New(Config{Level: zerolog.DebugLevel, NoColor: true, Out: &buf})
	logger.Debug().Str("model", "Customer").Msg("initialized")
	logger.Trace().Msg("hidden")

	assert.Contains(t, buf.String(), "initialized")
	assert.Contains(t, buf.String(), "model=Customer")
	assert.NotContains(t, buf.String(), "hidden")
}
