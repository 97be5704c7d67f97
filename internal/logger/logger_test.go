package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logpkg "github.com/maxviazov/pagination/internal/logger"
)

func TestNew(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	tests := []struct {
		name        string
		config      *logpkg.LoggerConfig
		expectError bool
		wantLevel   zerolog.Level
	}{
		{
			name: "valid production environment",
			config: &logpkg.LoggerConfig{
				ServiceName:    "test-service",
				ServiceVersion: "1.0.0",
				Env:            "prod",
				Level:          "info",
				TimeField:      "timestamp",
				TimeFormat:     "unix",
				Fields:         map[string]interface{}{"key": "value"},
			},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name: "invalid configuration - wrong env",
			config: &logpkg.LoggerConfig{
				ServiceName: "bad-service",
				Env:         "wrong-env",
				Level:       "debug",
			},
			expectError: true,
		},
		{
			name: "invalid log level",
			config: &logpkg.LoggerConfig{
				Env:   "prod",
				Level: "invalid-level",
			},
			expectError: true,
		},
		{
			name: "invalid format",
			config: &logpkg.LoggerConfig{
				Env:    "prod",
				Format: "xml",
			},
			expectError: true,
		},
		{
			name: "dev defaults to debug console",
			config: &logpkg.LoggerConfig{
				Env: "dev",
			},
			wantLevel: zerolog.DebugLevel,
		},
		{
			name: "valid staging environment",
			config: &logpkg.LoggerConfig{
				ServiceName:    "test-service",
				ServiceVersion: "2.0.0",
				Env:            "staging",
				Level:          "warn",
				OutputTarget:   "stdout",
				Stacktrace:     true,
			},
			wantLevel: zerolog.WarnLevel,
		},
		{
			name:      "empty config falls back to prod info",
			config:    &logpkg.LoggerConfig{},
			wantLevel: zerolog.InfoLevel,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.config.Out = &bytes.Buffer{}
			_, err := logpkg.New(test.config)
			if test.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestNew_JSONOutputCarriesServiceFields(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	l, err := logpkg.New(&logpkg.LoggerConfig{
		ServiceName:    "pagecalc",
		ServiceVersion: "9.9.9",
		Env:            "prod",
		Level:          "info",
		Fields:         map[string]interface{}{"region": "eu"},
		Out:            &buf,
	})
	require.NoError(t, err)

	l.Info().Int("page_count", 4).Msg("page built")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "pagecalc", entry["service"])
	assert.Equal(t, "9.9.9", entry["version"])
	assert.Equal(t, "prod", entry["env"])
	assert.Equal(t, "eu", entry["region"])
	assert.Equal(t, "page built", entry["message"])
	assert.EqualValues(t, 4, entry["page_count"])
	assert.Contains(t, entry, "ts")
}

func TestNew_LevelFiltersBelowThreshold(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	l, err := logpkg.New(&logpkg.LoggerConfig{Env: "prod", Level: "warn", Out: &buf})
	require.NoError(t, err)

	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}
