package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadAndValidate(t *testing.T) {
	// Create temp config file
	content := `
opap:
  api_base_url: "https://api.opap.gr/draws/v3.0/1100"
  timeout: 10s
  draw_count: 10

chart:
  output_path: "mega_lottery_analysis.png"
  panel_width: 750
  panel_height: 600
  open: false

archive:
  db_path: "./data/test.db"

telegram:
  bot_token: "test_token"
  chat_id: "test_chat_id"
  enabled: true
  max_retries: 3
  retry_delay_base: 1s

logging:
  level: "info"
  format: "json"
`
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test Load
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify values
	if cfg.OPAP.APIBaseURL != "https://api.opap.gr/draws/v3.0/1100" {
		t.Errorf("Unexpected API URL: %s", cfg.OPAP.APIBaseURL)
	}

	if cfg.OPAP.Timeout != 10*time.Second {
		t.Errorf("Unexpected timeout: %v", cfg.OPAP.Timeout)
	}

	if cfg.OPAP.DrawCount != 10 {
		t.Errorf("Unexpected draw count: %d", cfg.OPAP.DrawCount)
	}

	if cfg.Archive.DBPath != "./data/test.db" {
		t.Errorf("Unexpected archive path: %s", cfg.Archive.DBPath)
	}

	// Test Validate
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("does-not-exist.yaml")
	if err != nil {
		t.Fatalf("Load with missing file failed: %v", err)
	}

	if cfg.OPAP.APIBaseURL == "" {
		t.Error("Expected default API base URL, got empty string")
	}
	if cfg.OPAP.Timeout != 10*time.Second {
		t.Errorf("Expected default timeout 10s, got %v", cfg.OPAP.Timeout)
	}
	if cfg.Chart.OutputPath != "mega_lottery_analysis.png" {
		t.Errorf("Unexpected default output path: %s", cfg.Chart.OutputPath)
	}
	if cfg.Telegram.Enabled {
		t.Error("Telegram should be disabled by default")
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should validate: %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load("does-not-exist.yaml")
		if err != nil {
			t.Fatal(err)
		}
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty api base url", func(c *Config) { c.OPAP.APIBaseURL = "" }},
		{"timeout too short", func(c *Config) { c.OPAP.Timeout = 100 * time.Millisecond }},
		{"draw count zero", func(c *Config) { c.OPAP.DrawCount = 0 }},
		{"draw count too large", func(c *Config) { c.OPAP.DrawCount = 1000 }},
		{"empty output path", func(c *Config) { c.Chart.OutputPath = "" }},
		{"panel too small", func(c *Config) { c.Chart.PanelWidth = 10 }},
		{"telegram enabled without token", func(c *Config) {
			c.Telegram.Enabled = true
			c.Telegram.ChatID = "123"
		}},
		{"telegram enabled without chat id", func(c *Config) {
			c.Telegram.Enabled = true
			c.Telegram.BotToken = "token"
		}},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}
