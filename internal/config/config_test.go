package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(KeyLogLevel, "")
	t.Setenv(KeyColor, "")
	t.Setenv(KeyTimeout, "")
	conf, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), conf)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected Config
		isError  bool
	}{
		{
			name: "Debug level",
			env:  map[string]string{KeyLogLevel: "debug"},
			expected: Config{
				LogLevel: slog.LevelDebug,
				Color:    ColorAuto,
				Timeout:  30 * time.Second,
			},
		},
		{
			name: "Level is trimmed and case insensitive",
			env:  map[string]string{KeyLogLevel: "  ERROR \n"},
			expected: Config{
				LogLevel: slog.LevelError,
				Color:    ColorAuto,
				Timeout:  30 * time.Second,
			},
		},
		{
			name:    "Unknown level",
			env:     map[string]string{KeyLogLevel: "loud"},
			isError: true,
		},
		{
			name: "Color on",
			env:  map[string]string{KeyColor: "YES"},
			expected: Config{
				LogLevel: slog.LevelWarn,
				Color:    ColorAlways,
				Timeout:  30 * time.Second,
			},
		},
		{
			name: "Color off",
			env:  map[string]string{KeyColor: "0"},
			expected: Config{
				LogLevel: slog.LevelWarn,
				Color:    ColorNever,
				Timeout:  30 * time.Second,
			},
		},
		{
			name: "Color not a boolean",
			env:  map[string]string{KeyColor: "sometimes"},
			expected: Config{
				LogLevel: slog.LevelWarn,
				Color:    ColorAuto,
				Timeout:  30 * time.Second,
			},
		},
		{
			name: "Timeout",
			env:  map[string]string{KeyTimeout: "2m"},
			expected: Config{
				LogLevel: slog.LevelWarn,
				Color:    ColorAuto,
				Timeout:  2 * time.Minute,
			},
		},
		{
			name: "Bad timeout",
			env:  map[string]string{KeyTimeout: "soon"},
			expected: Config{
				LogLevel: slog.LevelWarn,
				Color:    ColorAuto,
				Timeout:  30 * time.Second,
			},
		},
		{
			name: "Negative timeout",
			env:  map[string]string{KeyTimeout: "-1s"},
			expected: Config{
				LogLevel: slog.LevelWarn,
				Color:    ColorAuto,
				Timeout:  30 * time.Second,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, key := range []string{KeyLogLevel, KeyColor, KeyTimeout} {
				t.Setenv(key, "")
			}
			for key, value := range tc.env {
				t.Setenv(key, value)
			}
			conf, err := Load()
			if tc.isError {
				assert.ErrorIs(t, err, ErrInvalidLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, conf)
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("info")
	assert.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	level, err = ParseLevel("WARN")
	assert.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("")
	assert.ErrorIs(t, err, ErrInvalidLevel)
}
