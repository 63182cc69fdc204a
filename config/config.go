package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete tradebook configuration.
type Config struct {
	Journal   JournalConfig   `json:"journal" yaml:"journal"`
	Analytics AnalyticsConfig `json:"analytics" yaml:"analytics"`
	Logging   LoggingConfig   `json:"logging" yaml:"logging"`
}

// JournalConfig contains storage parameters.
type JournalConfig struct {
	DBPath     string `json:"db_path" yaml:"db_path"`
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"` // CSV export target
}

// AnalyticsConfig contains reporting parameters.
type AnalyticsConfig struct {
	// Timezone for calendar-day bucketing (daily P&L, day streaks).
	// IANA name, or "Local". Trades close in exchange time but the
	// journal is kept in the trader's day.
	Timezone string `json:"timezone" yaml:"timezone"`
}

// LoggingConfig contains CLI logging parameters.
type LoggingConfig struct {
	Level  string `json:"level" yaml:"level"`   // debug, info, warn, error
	Format string `json:"format" yaml:"format"` // console or json
}

// Location resolves the analytics timezone.
func (c *Config) Location() (*time.Location, error) {
	tz := c.Analytics.Timezone
	if tz == "" || strings.EqualFold(tz, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(tz)
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (format by extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path is required")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("unknown analytics.timezone %q", c.Analytics.Timezone)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error")
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Journal: JournalConfig{
			DBPath:     "./tradebook.sqlite",
			TradesFile: "./trades.csv",
		},
		Analytics: AnalyticsConfig{
			Timezone: "Local",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
