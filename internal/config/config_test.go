package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Item != "sample-item" {
		t.Errorf("expected default item, got %q", cfg.Item)
	}
	if cfg.Analyzer.HistorySize != 15 {
		t.Errorf("expected default history size 15, got %d", cfg.Analyzer.HistorySize)
	}
	if cfg.Feed.StartPrice != 100 {
		t.Errorf("expected default start price 100, got %v", cfg.Feed.StartPrice)
	}
	if cfg.Schedule.CheckCron == "" {
		t.Error("expected default check cron")
	}
	if cfg.Database.SQLitePath == "" {
		t.Error("expected default sqlite path")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `item: mech-keyboard
analyzer:
  history_size: 30
feed:
  start_price: 250
  volatility: 0.05
schedule:
  check_cron: "0 0 * * * *"
database:
  sqlite_path: /tmp/checks.db
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Item != "mech-keyboard" {
		t.Errorf("item: got %q", cfg.Item)
	}
	if cfg.Analyzer.HistorySize != 30 {
		t.Errorf("history size: got %d", cfg.Analyzer.HistorySize)
	}
	if cfg.Feed.StartPrice != 250 {
		t.Errorf("start price: got %v", cfg.Feed.StartPrice)
	}
	if cfg.Feed.Volatility != 0.05 {
		t.Errorf("volatility: got %v", cfg.Feed.Volatility)
	}
	if cfg.Schedule.CheckCron != "0 0 * * * *" {
		t.Errorf("check cron: got %q", cfg.Schedule.CheckCron)
	}
	if cfg.Database.SQLitePath != "/tmp/checks.db" {
		t.Errorf("sqlite path: got %q", cfg.Database.SQLitePath)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ITEM", "gpu")
	t.Setenv("HISTORY_SIZE", "25")
	t.Setenv("START_PRICE", "799.5")
	t.Setenv("CRON_CHECK", "0 */10 * * * *")
	t.Setenv("SQLITE_PATH", "/tmp/override.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Item != "gpu" {
		t.Errorf("item override: got %q", cfg.Item)
	}
	if cfg.Analyzer.HistorySize != 25 {
		t.Errorf("history size override: got %d", cfg.Analyzer.HistorySize)
	}
	if cfg.Feed.StartPrice != 799.5 {
		t.Errorf("start price override: got %v", cfg.Feed.StartPrice)
	}
	if cfg.Schedule.CheckCron != "0 */10 * * * *" {
		t.Errorf("cron override: got %q", cfg.Schedule.CheckCron)
	}
	if cfg.Database.SQLitePath != "/tmp/override.db" {
		t.Errorf("sqlite path override: got %q", cfg.Database.SQLitePath)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, _ := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty item", func(c *Config) { c.Item = "" }},
		{"zero history size", func(c *Config) { c.Analyzer.HistorySize = 0 }},
		{"negative history size", func(c *Config) { c.Analyzer.HistorySize = -3 }},
		{"zero start price", func(c *Config) { c.Feed.StartPrice = 0 }},
		{"volatility too high", func(c *Config) { c.Feed.Volatility = 1 }},
		{"negative min price", func(c *Config) { c.Feed.MinPrice = -1 }},
	}
	for _, tt := range tests {
		cfg := base()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}
