// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"

	gowaylog "goway/utils/log"
)

// AppName names the state directory and the log files.
const AppName = "goway"

// Config holds all application configuration. Every field is read from a
// GOWAY_ prefixed environment variable.
type Config struct {
	Env         string        `envconfig:"ENV" default:"prod"`
	LogLevel    string        `envconfig:"LOG_LEVEL"`
	StorePath   string        `envconfig:"STORE_PATH"`
	SettleDelay time.Duration `envconfig:"SETTLE_DELAY" default:"150ms"`
	Dataset     string        `envconfig:"DATASET"`
	MetricsAddr string        `envconfig:"METRICS_ADDR"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("goway", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.SettleDelay < 0 {
		return nil, fmt.Errorf("failed to load config: negative settle delay %s", cfg.SettleDelay)
	}
	return &cfg, nil
}

// ResolvedStorePath is StorePath, or pending.db in the state directory.
func (c *Config) ResolvedStorePath() string {
	if c.StorePath != "" {
		return c.StorePath
	}
	return filepath.Join(gowaylog.StateDir(AppName), "pending.db")
}

// LogOptions maps the config onto the logger.
func (c *Config) LogOptions() gowaylog.Options {
	return gowaylog.Options{Mode: c.Env, Level: c.LogLevel}
}
