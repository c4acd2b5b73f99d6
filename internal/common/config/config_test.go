// internal/common/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, 5*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, time.Second, cfg.RetryDelay)
	assert.Equal(t, 10*time.Second, cfg.MaxRetryDelay)
	assert.False(t, cfg.Logging.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Empty(t, cfg.BaseURL)
}

func TestApplyDefaults_FillsZeroValues(t *testing.T) {
	cfg := ClientConfig{
		BaseURL:     "https://api.example.com",
		ReadTimeout: time.Minute,
	}
	applyDefaults(&cfg)

	assert.Equal(t, 5*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, time.Minute, cfg.ReadTimeout) // explicit value kept
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(cfg *ClientConfig) {},
		},
		{
			name:    "missing base URL",
			mutate:  func(cfg *ClientConfig) { cfg.BaseURL = "" },
			wantErr: "base_url is required",
		},
		{
			name:    "base URL without scheme",
			mutate:  func(cfg *ClientConfig) { cfg.BaseURL = "api.example.com" },
			wantErr: "not a valid URL",
		},
		{
			name: "delay cap below initial delay",
			mutate: func(cfg *ClientConfig) {
				cfg.RetryDelay = 5 * time.Second
				cfg.MaxRetryDelay = time.Second
			},
			wantErr: "max_retry_delay",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			cfg.BaseURL = "https://api.example.com"
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
