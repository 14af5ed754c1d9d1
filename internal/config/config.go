// Package config loads settings for the assertx CLI from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

const (
	EnvPrefix = "ASSERTX_"

	KeyLogLevel = EnvPrefix + "LOG_LEVEL"
	KeyColor    = EnvPrefix + "COLOR"
	KeyTimeout  = EnvPrefix + "TIMEOUT"
)

var (
	ErrInvalidLevel = errors.New("invalid log level")

	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values considered "true" for boolean settings.
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values considered "false" for boolean settings.
)

// ColorMode decides whether pass/fail marks are colored.
type ColorMode int

const (
	ColorAuto ColorMode = iota // Color only when writing to a terminal.
	ColorAlways
	ColorNever
)

// Config holds CLI settings.
type Config struct {
	LogLevel slog.Level
	Color    ColorMode
	Timeout  time.Duration // Deadline for evaluating a rule document.
}

// Default returns the settings used when nothing is set in the environment.
func Default() Config {
	return Config{
		LogLevel: slog.LevelWarn,
		Color:    ColorAuto,
		Timeout:  30 * time.Second,
	}
}

// Load reads the environment on top of [Default].
// Unset or empty variables keep their default, and an unparseable duration or boolean is ignored.
// An unknown log level is reported as an error, since silently logging less than requested is surprising.
func Load() (Config, error) {
	conf := Default()
	if level := val(KeyLogLevel, ""); len(level) > 0 {
		parsed, err := ParseLevel(level)
		if err != nil {
			return conf, err
		}
		conf.LogLevel = parsed
	}
	if color, ok := boolVal(KeyColor); ok {
		if color {
			conf.Color = ColorAlways
		} else {
			conf.Color = ColorNever
		}
	}
	conf.Timeout = duration(KeyTimeout, conf.Timeout)
	return conf, nil
}

// ParseLevel translates a level name (debug, info, warn, or error) into a [slog.Level], ignoring case.
func ParseLevel(level string) (slog.Level, error) {
	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelWarn, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}
	return parsed, nil
}

// val gets an environment variable, returning defaultVal if it's unset or only whitespace.
func val(key string, defaultVal string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	trimmed := strings.TrimSpace(v)
	if len(trimmed) == 0 {
		return defaultVal
	}
	return trimmed
}

// boolVal interprets a variable with [DefaultTrue] and [DefaultFalse].
// The second return is false if the variable isn't set or isn't one of those values.
func boolVal(key string) (bool, bool) {
	sval := strings.ToLower(val(key, ""))
	if len(sval) == 0 {
		return false, false
	}
	for _, t := range DefaultTrue {
		if sval == t {
			return true, true
		}
	}
	for _, f := range DefaultFalse {
		if sval == f {
			return false, true
		}
	}
	return false, false
}

func duration(key string, defaultVal time.Duration) time.Duration {
	sval := val(key, "")
	if len(sval) == 0 {
		return defaultVal
	}
	dval, err := time.ParseDuration(sval)
	if err != nil || dval <= 0 {
		return defaultVal
	}
	return dval
}
