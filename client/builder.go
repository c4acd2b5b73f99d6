// client/builder.go
package client

import (
	"fmt"
	"time"

	"notification-client/internal/common/config"
	"notification-client/internal/common/logger"
	"notification-client/internal/common/transport"
)

// Builder assembles a Client. Every setting has a documented default; only
// the base URL is required.
type Builder struct {
	cfg config.ClientConfig
	log logger.Logger
}

// NewBuilder starts a builder with the documented defaults: connect timeout
// 5s, read timeout 30s, 3 attempts, 1s initial backoff capped at 10s,
// logging off.
func NewBuilder() *Builder {
	return &Builder{cfg: config.Defaults()}
}

func (b *Builder) BaseURL(baseURL string) *Builder {
	b.cfg.BaseURL = baseURL
	return b
}

func (b *Builder) APIKey(apiKey string) *Builder {
	b.cfg.APIKey = apiKey
	return b
}

func (b *Builder) ConnectTimeout(d time.Duration) *Builder {
	b.cfg.ConnectTimeout = d
	return b
}

func (b *Builder) ReadTimeout(d time.Duration) *Builder {
	b.cfg.ReadTimeout = d
	return b
}

// MaxRetries bounds the total number of attempts per write operation,
// first try included.
func (b *Builder) MaxRetries(n int) *Builder {
	b.cfg.MaxRetries = n
	return b
}

func (b *Builder) RetryDelay(d time.Duration) *Builder {
	b.cfg.RetryDelay = d
	return b
}

func (b *Builder) MaxRetryDelay(d time.Duration) *Builder {
	b.cfg.MaxRetryDelay = d
	return b
}

// EnableLogging turns on request/response logging.
func (b *Builder) EnableLogging(enabled bool) *Builder {
	b.cfg.Logging.Enabled = enabled
	return b
}

// Logger supplies a custom logger; without one the client logs through zap
// when logging is enabled and discards output otherwise.
func (b *Builder) Logger(log logger.Logger) *Builder {
	b.log = log
	return b
}

// Build validates the configuration and constructs the Client.
func (b *Builder) Build() (*Client, error) {
	return New(&b.cfg, b.log)
}

// New constructs a Client from an explicit configuration, typically one
// produced by config.Load. A nil log selects the configured default.
func New(cfg *config.ClientConfig, log logger.Logger) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if log == nil {
		if cfg.Logging.Enabled {
			log = logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
		} else {
			log = logger.NewNoOpLogger()
		}
	}

	tr, err := transport.New(transport.Config{
		BaseURL:        cfg.BaseURL,
		APIKey:         cfg.APIKey,
		ConnectTimeout: cfg.ConnectTimeout,
		ReadTimeout:    cfg.ReadTimeout,
		Log:            log,
		LogRequests:    cfg.Logging.Enabled,
	})
	if err != nil {
		return nil, err
	}

	c := &Client{
		transport: tr,
		log:       log,
		retry: RetryPolicy{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   cfg.RetryDelay,
			MaxDelay:    cfg.MaxRetryDelay,
		},
	}

	log.Info("notification client initialized", map[string]interface{}{
		"baseUrl": cfg.BaseURL,
	})

	return c, nil
}
