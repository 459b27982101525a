// Package config loads and validates the application configuration from a
// YAML file with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	OPAP     OPAPConfig     `mapstructure:"opap"`
	Chart    ChartConfig    `mapstructure:"chart"`
	Archive  ArchiveConfig  `mapstructure:"archive"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// OPAPConfig holds draw-results API configuration
type OPAPConfig struct {
	APIBaseURL string        `mapstructure:"api_base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	DrawCount  int           `mapstructure:"draw_count"`
}

// ChartConfig holds chart rendering configuration
type ChartConfig struct {
	OutputPath  string `mapstructure:"output_path"`
	PanelWidth  int    `mapstructure:"panel_width"`
	PanelHeight int    `mapstructure:"panel_height"`
	Open        bool   `mapstructure:"open"` // open the image with the platform viewer after rendering
}

// ArchiveConfig holds run archive configuration
type ArchiveConfig struct {
	DBPath string `mapstructure:"db_path"` // empty disables archiving
}

// TelegramConfig holds Telegram delivery configuration
type TelegramConfig struct {
	BotToken       string        `mapstructure:"bot_token"`
	ChatID         string        `mapstructure:"chat_id"`
	Enabled        bool          `mapstructure:"enabled"`
	MaxRetries     int           `mapstructure:"max_retries"`
	RetryDelayBase time.Duration `mapstructure:"retry_delay_base"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables. A missing
// config file is not an error: the tool runs with defaults so that it works
// with no arguments and no setup.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Set config file
	v.SetConfigFile(path)

	// Set defaults
	setDefaults(v)

	// Enable environment variable override
	v.SetEnvPrefix("LOTTOSCOPE")
	v.AutomaticEnv()

	// Read config file, tolerating its absence
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	// OPAP defaults
	v.SetDefault("opap.api_base_url", "https://api.opap.gr/draws/v3.0/1100")
	v.SetDefault("opap.timeout", "10s")
	v.SetDefault("opap.draw_count", 10)

	// Chart defaults
	v.SetDefault("chart.output_path", "mega_lottery_analysis.png")
	v.SetDefault("chart.panel_width", 750)
	v.SetDefault("chart.panel_height", 600)
	v.SetDefault("chart.open", false)

	// Archive defaults
	v.SetDefault("archive.db_path", "./data/lottoscope.db")

	// Telegram defaults
	v.SetDefault("telegram.enabled", false)
	v.SetDefault("telegram.max_retries", 3)
	v.SetDefault("telegram.retry_delay_base", "1s")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	// Validate OPAP config
	if c.OPAP.APIBaseURL == "" {
		return fmt.Errorf("opap.api_base_url is required")
	}
	if c.OPAP.Timeout < 1*time.Second {
		return fmt.Errorf("opap.timeout must be at least 1 second")
	}
	if c.OPAP.DrawCount < 1 || c.OPAP.DrawCount > 100 {
		return fmt.Errorf("opap.draw_count must be between 1 and 100")
	}

	// Validate Chart config
	if c.Chart.OutputPath == "" {
		return fmt.Errorf("chart.output_path is required")
	}
	if c.Chart.PanelWidth < 300 {
		return fmt.Errorf("chart.panel_width must be at least 300")
	}
	if c.Chart.PanelHeight < 300 {
		return fmt.Errorf("chart.panel_height must be at least 300")
	}

	// Validate Telegram config
	if c.Telegram.Enabled {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram.bot_token is required when telegram is enabled")
		}
		if c.Telegram.ChatID == "" {
			return fmt.Errorf("telegram.chat_id is required when telegram is enabled")
		}
		if c.Telegram.MaxRetries < 1 {
			return fmt.Errorf("telegram.max_retries must be at least 1")
		}
	}

	// Validate Logging config
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}
