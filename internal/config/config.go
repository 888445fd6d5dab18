package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Item     string `yaml:"item"`
	Analyzer struct {
		HistorySize int `yaml:"history_size"`
	} `yaml:"analyzer"`
	Feed struct {
		StartPrice float64 `yaml:"start_price"`
		Volatility float64 `yaml:"volatility"`
		MinPrice   float64 `yaml:"min_price"`
	} `yaml:"feed"`
	Schedule struct {
		CheckCron string `yaml:"check_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("ITEM"); v != "" {
		cfg.Item = v
	}
	if v := os.Getenv("HISTORY_SIZE"); v != "" {
		var size int
		if _, err := fmt.Sscanf(v, "%d", &size); err == nil {
			cfg.Analyzer.HistorySize = size
		}
	}
	if v := os.Getenv("START_PRICE"); v != "" {
		var price float64
		if _, err := fmt.Sscanf(v, "%f", &price); err == nil {
			cfg.Feed.StartPrice = price
		}
	}
	if v := os.Getenv("CRON_CHECK"); v != "" {
		cfg.Schedule.CheckCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Item == "" {
		cfg.Item = "sample-item"
	}
	if cfg.Analyzer.HistorySize == 0 {
		cfg.Analyzer.HistorySize = 15
	}
	if cfg.Feed.StartPrice == 0 {
		cfg.Feed.StartPrice = 100
	}
	if cfg.Feed.Volatility == 0 {
		cfg.Feed.Volatility = 0.03
	}
	if cfg.Feed.MinPrice == 0 {
		cfg.Feed.MinPrice = 1
	}
	if cfg.Schedule.CheckCron == "" {
		cfg.Schedule.CheckCron = "0 */5 * * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/deal_sentinel.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Item == "" {
		return fmt.Errorf("item is required")
	}
	if c.Analyzer.HistorySize <= 0 {
		return fmt.Errorf("analyzer.history_size must be positive")
	}
	if c.Feed.StartPrice <= 0 {
		return fmt.Errorf("feed.start_price must be positive")
	}
	if c.Feed.Volatility <= 0 || c.Feed.Volatility >= 1 {
		return fmt.Errorf("feed.volatility must be in (0, 1)")
	}
	if c.Feed.MinPrice < 0 {
		return fmt.Errorf("feed.min_price must be non-negative")
	}
	return nil
}
