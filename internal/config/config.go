// Package config loads the service configuration into an explicit struct so
// components can be constructed in isolation, with no process-wide ambient
// state.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every setting the service needs at startup.
type Config struct {
	ListenAddr  string
	DatabaseDSN string
	JWTSecret   string
	TokenTTL    time.Duration
	Provider    ProviderConfig
	Chat        ChatConfig
	Storage     StorageConfig
}

// ProviderConfig configures the identity provider code exchange.
type ProviderConfig struct {
	AppID     string
	AppSecret string
	BaseURL   string
}

// ChatConfig configures the LLM provider proxy.
type ChatConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// StorageConfig configures the attachment object storage. MountPath is the
// local route prefix the server serves Dir from; BaseURL is the public
// prefix prepended to stored object keys and may be an absolute URL when a
// CDN or reverse proxy fronts the files.
type StorageConfig struct {
	Dir       string
	MountPath string
	BaseURL   string
}

// Load reads configuration from an optional config.yaml in the working
// directory and from HEALTHSYNC_-prefixed environment variables
// (e.g. HEALTHSYNC_DATABASE_DSN, HEALTHSYNC_PROVIDER_APP_ID).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("HEALTHSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("token_ttl", "72h")
	v.SetDefault("provider.base_url", "https://api.weixin.qq.com")
	v.SetDefault("chat.base_url", "https://api.openai.com/v1")
	v.SetDefault("chat.model", "gpt-3.5-turbo")
	v.SetDefault("storage.dir", "media")
	v.SetDefault("storage.mount_path", "/media")
	v.SetDefault("storage.base_url", "/media")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{
		ListenAddr:  v.GetString("listen_addr"),
		DatabaseDSN: v.GetString("database_dsn"),
		JWTSecret:   v.GetString("jwt_secret"),
		TokenTTL:    v.GetDuration("token_ttl"),
		Provider: ProviderConfig{
			AppID:     v.GetString("provider.app_id"),
			AppSecret: v.GetString("provider.app_secret"),
			BaseURL:   v.GetString("provider.base_url"),
		},
		Chat: ChatConfig{
			APIKey:  v.GetString("chat.api_key"),
			BaseURL: v.GetString("chat.base_url"),
			Model:   v.GetString("chat.model"),
		},
		Storage: StorageConfig{
			Dir:       v.GetString("storage.dir"),
			MountPath: v.GetString("storage.mount_path"),
			BaseURL:   v.GetString("storage.base_url"),
		},
	}

	if cfg.DatabaseDSN == "" {
		return nil, errors.New("database_dsn is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt_secret is required")
	}
	return cfg, nil
}
