// internal/common/config/config.go
package config

import (
	"fmt"
	"net/url"
	"time"
)

// ClientConfig holds everything the notification client needs at construction
// time. It is read-only after Load/defaults are applied.
type ClientConfig struct {
	// BaseURL is the notification service endpoint, e.g.
	// "https://api.example.com".
	BaseURL string `mapstructure:"base_url"`

	// APIKey is attached to every request as X-API-Key when set.
	APIKey string `mapstructure:"api_key"`

	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`

	MaxRetries    int           `mapstructure:"max_retries"`
	RetryDelay    time.Duration `mapstructure:"retry_delay"`
	MaxRetryDelay time.Duration `mapstructure:"max_retry_delay"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig controls request/response logging.
type LoggingConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Level   string `mapstructure:"level"`
	Format  string `mapstructure:"format"`
}

// Defaults returns a ClientConfig with every documented default applied and
// no endpoint set.
func Defaults() ClientConfig {
	return ClientConfig{
		ConnectTimeout: 5 * time.Second,
		ReadTimeout:    30 * time.Second,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
		MaxRetryDelay:  10 * time.Second,
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			Format:  "json",
		},
	}
}

func applyDefaults(cfg *ClientConfig) {
	def := Defaults()
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = def.ConnectTimeout
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = def.ReadTimeout
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = def.MaxRetries
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = def.RetryDelay
	}
	if cfg.MaxRetryDelay <= 0 {
		cfg.MaxRetryDelay = def.MaxRetryDelay
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = def.Logging.Format
	}
}

// Validate checks the configuration for construction-time errors.
func (c *ClientConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	parsed, err := url.Parse(c.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("base_url %q is not a valid URL", c.BaseURL)
	}
	if c.MaxRetryDelay < c.RetryDelay {
		return fmt.Errorf("max_retry_delay must not be smaller than retry_delay")
	}
	return nil
}
