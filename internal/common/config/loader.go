// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads the client configuration from config.yaml (searched in ./configs
// and the working directory) with environment-variable override. Variables use
// the NOTIFY_ prefix, e.g. NOTIFY_BASE_URL or NOTIFY_LOGGING_ENABLED. A .env
// file, when present, is loaded first.
func Load() (*ClientConfig, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvPrefix("NOTIFY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// No config file is fine; environment variables may carry everything.
	}

	// AutomaticEnv alone does not surface unset keys to Unmarshal, so bind
	// the ones callers are expected to override.
	for _, key := range []string{
		"base_url", "api_key",
		"connect_timeout", "read_timeout",
		"max_retries", "retry_delay", "max_retry_delay",
		"logging.enabled", "logging.level", "logging.format",
	} {
		_ = v.BindEnv(key)
	}

	var cfg ClientConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	for _, path := range []string{".env", "../.env"} {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}
