// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the numeric policy settings of the command
// line tools from a YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aclements/go-tailmath/policy"
)

// Config is the on-disk configuration.
type Config struct {
	// ErrorMode is "error" (or "raise") to report numeric
	// failures, or "nan" to replace them with NaN.
	ErrorMode string `yaml:"error_mode"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// Jobs bounds the number of concurrent evaluations.
	Jobs int `yaml:"jobs"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		ErrorMode: policy.ModeError.String(),
		LogLevel:  "info",
		Jobs:      runtime.GOMAXPROCS(0),
	}
}

// Load reads the configuration at path on top of Default. An empty
// path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid field of c.
func (c Config) Validate() error {
	var errs []error
	if _, err := policy.ParseMode(c.ErrorMode); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.Jobs < 1 {
		errs = append(errs, fmt.Errorf("jobs must be at least 1, got %d", c.Jobs))
	}
	return errors.Join(errs...)
}

// Mode returns the parsed ErrorMode.
func (c Config) Mode() (policy.Mode, error) {
	return policy.ParseMode(c.ErrorMode)
}

// Level returns the parsed LogLevel.
func (c Config) Level() (slog.Level, error) {
	return ParseLevel(c.LogLevel)
}

// Policy builds the numeric policy described by c, logging failures
// to logger and passing them to reporter if either is non-nil.
func (c Config) Policy(logger *slog.Logger, reporter policy.Reporter) (*policy.Policy, error) {
	mode, err := c.Mode()
	if err != nil {
		return nil, err
	}
	opts := []policy.Option{policy.WithMode(mode)}
	if logger != nil {
		opts = append(opts, policy.WithLogger(logger))
	}
	if reporter != nil {
		opts = append(opts, policy.WithReporter(reporter))
	}
	return policy.New(opts...), nil
}

// ParseLevel parses a slog level name, ignoring case.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}
