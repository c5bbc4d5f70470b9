package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/xxxsen/common/logger"
)

type Config struct {
	Port      int              `json:"port"`
	Supabase  SupabaseConfig   `json:"supabase"`
	Auth      AuthConfig       `json:"auth"`
	Cache     CacheConfig      `json:"cache"`
	KeepAlive KeepAliveConfig  `json:"keep_alive"`
	LogConfig logger.LogConfig `json:"log_config"`
}

type SupabaseConfig struct {
	URL            string `json:"url"`
	APIKey         string `json:"api_key"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

type AuthConfig struct {
	JWTSecret       string `json:"jwt_secret"`
	TokenTTLDays    int    `json:"token_ttl_days"`
	CookieName      string `json:"cookie_name"`
	CookieMaxAgeSec int    `json:"cookie_max_age_seconds"`
	CookieSecure    bool   `json:"cookie_secure"`
}

type CacheConfig struct {
	TTLSeconds int `json:"ttl_seconds"`
	MaxEntries int `json:"max_entries"`
}

type KeepAliveConfig struct {
	Enabled bool   `json:"enabled"`
	Spec    string `json:"spec"`
}

// envOverrides mirrors the dotenv variables the original deployment used;
// when present they win over the config file.
type envOverrides struct {
	SupabaseURL string `env:"SUPABASE_URL"`
	SupabaseKey string `env:"SUPABASE_ANON_KEY"`
	JWTSecret   string `env:"MBLOG_JWT_SECRET"`
	Port        int    `env:"PORT"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if overrides.SupabaseURL != "" {
		cfg.Supabase.URL = overrides.SupabaseURL
	}
	if overrides.SupabaseKey != "" {
		cfg.Supabase.APIKey = overrides.SupabaseKey
	}
	if overrides.JWTSecret != "" {
		cfg.Auth.JWTSecret = overrides.JWTSecret
	}
	if overrides.Port != 0 {
		cfg.Port = overrides.Port
	}

	if cfg.Supabase.URL == "" {
		return nil, fmt.Errorf("supabase.url is required")
	}
	if cfg.Supabase.APIKey == "" {
		return nil, fmt.Errorf("supabase.api_key is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required")
	}
	if cfg.Port == 0 {
		cfg.Port = 5000
	}
	if cfg.Supabase.TimeoutSeconds == 0 {
		cfg.Supabase.TimeoutSeconds = 10
	}
	if cfg.Auth.TokenTTLDays == 0 {
		cfg.Auth.TokenTTLDays = 7
	}
	if cfg.Auth.CookieName == "" {
		cfg.Auth.CookieName = "token"
	}
	if cfg.Auth.CookieMaxAgeSec == 0 {
		cfg.Auth.CookieMaxAgeSec = 1800
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 900
	}
	if cfg.Cache.MaxEntries == 0 {
		cfg.Cache.MaxEntries = 1024
	}
	if cfg.KeepAlive.Spec == "" {
		cfg.KeepAlive.Spec = "*/10 * * * *"
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	return &cfg, nil
}
