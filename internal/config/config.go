package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresUser   string `toml:"postgres_user"`
	PostgresDBName string `toml:"postgres_db_name"`
	EnsureSchema   bool   `toml:"ensure_schema"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// auth
	AuthIssuer   string        `toml:"auth_issuer"`
	AuthAudience string        `toml:"auth_audience"`
	AuthCacheTTL time.Duration `toml:"auth_cache_ttl"`

	// http
	CORSAllowedOrigins []string `toml:"cors_allowed_origins"`
	RateLimitPerMinute int      `toml:"rate_limit_per_minute"`
	UsersCacheSizeMB   int      `toml:"users_cache_size_mb"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load decodes the TOML file at path and returns the section for env,
// with defaults applied to unset values.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return t.finish(env)
}

// Parse is Load for in-memory TOML.
func Parse(env, data string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return t.finish(env)
}

func (t *Toml) finish(env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 8000
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.AuthCacheTTL == 0 {
		c.AuthCacheTTL = 5 * time.Minute
	}
	if c.RateLimitPerMinute == 0 {
		c.RateLimitPerMinute = 120
	}
	if c.UsersCacheSizeMB == 0 {
		c.UsersCacheSizeMB = 10
	}
	if len(c.CORSAllowedOrigins) == 0 {
		c.CORSAllowedOrigins = []string{"http://localhost:8000"}
	}
}

func (c *Config) validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.PostgresHost == "" || c.PostgresDBName == "" {
		return fmt.Errorf("postgres host and db name must be set")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("invalid rate limit: %d", c.RateLimitPerMinute)
	}
	return nil
}
