// Package config provides Viper-based configuration for artview.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Sternrassler/museum-client/pkg/artic"
	"github.com/Sternrassler/museum-client/pkg/logging"
	"github.com/Sternrassler/museum-client/pkg/met"
	"github.com/Sternrassler/museum-client/pkg/pagination"
	"github.com/spf13/viper"
)

// Config is the complete artview configuration.
type Config struct {
	HTTP       HTTPConfig       `mapstructure:"http"`
	Pagination PaginationConfig `mapstructure:"pagination"`
	Met        MetConfig        `mapstructure:"met"`
	Artic      ArticConfig      `mapstructure:"artic"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Output     OutputConfig     `mapstructure:"output"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// HTTPConfig configures the shared museum HTTP client.
type HTTPConfig struct {
	UserAgent         string        `mapstructure:"user_agent"`
	Timeout           time.Duration `mapstructure:"timeout"`
	MaxRetries        int           `mapstructure:"max_retries"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
}

// PaginationConfig configures page size and hydration fan-out.
type PaginationConfig struct {
	PageSize       int           `mapstructure:"page_size"`
	MaxConcurrency int           `mapstructure:"max_concurrency"`
	HydrateTimeout time.Duration `mapstructure:"hydrate_timeout"`
}

// MetConfig configures the Met backend.
type MetConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	Department string `mapstructure:"department"`
}

// ArticConfig configures the AIC backend.
type ArticConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	IIIFBase string `mapstructure:"iiif_base"`
}

// CacheConfig selects the id-list store.
type CacheConfig struct {
	// Store is "memory" or "redis".
	Store         string        `mapstructure:"store"`
	MemoryEntries int           `mapstructure:"memory_entries"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	TTL           time.Duration `mapstructure:"ttl"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	Colors bool `mapstructure:"colors"`
	JSON   bool `mapstructure:"json"`
}

// MetricsConfig optionally exposes Prometheus metrics while a command runs.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// Load reads configuration from the config file, ARTVIEW_* environment
// variables and defaults, in that order of precedence. v may be nil; the CLI
// passes its own instance so bound flags take effect.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".artview")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/artview")
	}

	v.SetEnvPrefix("ARTVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// SetDefaults registers a default for every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("http.user_agent", "artview/1.0 (+https://github.com/Sternrassler/museum-client)")
	v.SetDefault("http.timeout", 30*time.Second)
	v.SetDefault("http.max_retries", 0)
	v.SetDefault("http.requests_per_second", 80.0)
	v.SetDefault("http.burst", 10)

	pageDefaults := pagination.DefaultConfig()
	v.SetDefault("pagination.page_size", pageDefaults.PageSize)
	v.SetDefault("pagination.max_concurrency", pageDefaults.MaxConcurrency)
	v.SetDefault("pagination.hydrate_timeout", pageDefaults.HydrateTimeout)

	v.SetDefault("met.base_url", met.DefaultBaseURL)
	v.SetDefault("met.department", met.DefaultDepartment)

	v.SetDefault("artic.base_url", artic.DefaultBaseURL)
	v.SetDefault("artic.iiif_base", artic.DefaultIIIFBase)

	v.SetDefault("cache.store", "memory")
	v.SetDefault("cache.memory_entries", 64)
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.redis_db", 0)
	v.SetDefault("cache.ttl", 10*time.Minute)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")

	v.SetDefault("output.colors", true)
	v.SetDefault("output.json", false)

	v.SetDefault("metrics.addr", "")
}

// Validate checks cfg for values the clients would reject.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.HTTP.UserAgent) == "" {
		return errors.New("http.user_agent is required")
	}
	if cfg.HTTP.Timeout < 0 {
		return fmt.Errorf("http.timeout must be >= 0 (got %s)", cfg.HTTP.Timeout)
	}
	if cfg.HTTP.MaxRetries < 0 {
		return fmt.Errorf("http.max_retries must be >= 0 (got %d)", cfg.HTTP.MaxRetries)
	}
	if cfg.Pagination.PageSize < 1 {
		return fmt.Errorf("pagination.page_size must be >= 1 (got %d)", cfg.Pagination.PageSize)
	}
	if cfg.Pagination.MaxConcurrency < 1 {
		return fmt.Errorf("pagination.max_concurrency must be >= 1 (got %d)", cfg.Pagination.MaxConcurrency)
	}

	switch cfg.Cache.Store {
	case "memory":
		if cfg.Cache.MemoryEntries < 1 {
			return fmt.Errorf("cache.memory_entries must be >= 1 (got %d)", cfg.Cache.MemoryEntries)
		}
	case "redis":
		if cfg.Cache.RedisAddr == "" {
			return errors.New("cache.redis_addr is required for the redis store")
		}
	default:
		return fmt.Errorf("invalid cache.store %q: must be memory or redis", cfg.Cache.Store)
	}

	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch cfg.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logging.format %q: must be text or json", cfg.Logging.Format)
	}

	return nil
}

// PageConfig converts the pagination section.
func (c *Config) PageConfig() pagination.Config {
	return pagination.Config{
		PageSize:       c.Pagination.PageSize,
		MaxConcurrency: c.Pagination.MaxConcurrency,
		HydrateTimeout: c.Pagination.HydrateTimeout,
	}
}

// MetClientConfig converts the met section.
func (c *Config) MetClientConfig() met.Config {
	return met.Config{BaseURL: c.Met.BaseURL, HasImages: true}
}

// ArticClientConfig converts the artic section.
func (c *Config) ArticClientConfig() artic.Config {
	return artic.Config{BaseURL: c.Artic.BaseURL, IIIFBase: c.Artic.IIIFBase}
}
