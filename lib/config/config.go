// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Environment variable names.
const (
	EnvLogLevel  = "BUREAU_CONSOLE_LOG_LEVEL"
	EnvLogFormat = "BUREAU_CONSOLE_LOG_FORMAT"
	EnvColor     = "BUREAU_CONSOLE_COLOR"
	EnvNoColor   = "NO_COLOR"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"auto", "text", "json"}
	colorModes = []string{"auto", "always", "never"}
)

// Config is the configuration of a console binary.
type Config struct {
	// LogLevel is the minimum level the command logger emits.
	LogLevel string

	// LogFormat is "auto" (text on a terminal, JSON otherwise), "text"
	// or "json".
	LogFormat string

	// Color is "auto", "always" or "never".
	Color string
}

// Default returns the configuration used when no variable is set.
func Default() *Config {
	return &Config{
		LogLevel:  "warn",
		LogFormat: "auto",
		Color:     "auto",
	}
}

// LookupFunc has the signature of [os.LookupEnv].
type LookupFunc func(key string) (string, bool)

// Load builds the configuration from the environment seen through
// lookup and validates it.
func Load(lookup LookupFunc) (*Config, error) {
	cfg := Default()

	if value, ok := lookup(EnvLogLevel); ok && value != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(value))
	}
	if value, ok := lookup(EnvLogFormat); ok && value != "" {
		cfg.LogFormat = strings.ToLower(strings.TrimSpace(value))
	}
	if value, ok := lookup(EnvColor); ok && value != "" {
		cfg.Color = strings.ToLower(strings.TrimSpace(value))
	}
	if value, ok := lookup(EnvNoColor); ok && value != "" {
		cfg.Color = "never"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field, reporting all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(logLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("%s must be one of %v, got %q", EnvLogLevel, logLevels, c.LogLevel))
	}
	if !slices.Contains(logFormats, c.LogFormat) {
		errs = append(errs, fmt.Errorf("%s must be one of %v, got %q", EnvLogFormat, logFormats, c.LogFormat))
	}
	if !slices.Contains(colorModes, c.Color) {
		errs = append(errs, fmt.Errorf("%s must be one of %v, got %q", EnvColor, colorModes, c.Color))
	}

	return errors.Join(errs...)
}

// SlogLevel returns LogLevel as a slog.Level. Call after Validate;
// unknown levels map to warn.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	}
	return slog.LevelWarn
}
