package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Store      StoreConfig      `mapstructure:"store"`
	Processors ProcessorsConfig `mapstructure:"processors"`
	Dispatch   DispatchConfig   `mapstructure:"dispatch"`
	Breaker    BreakerConfig    `mapstructure:"breaker"`
	Health     HealthConfig     `mapstructure:"health"`
	Async      AsyncConfig      `mapstructure:"async"`
	Throttle   ThrottleConfig   `mapstructure:"throttle"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug, release, test
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	DrainTimeout    time.Duration `mapstructure:"drain_timeout"`
}

// StoreConfig configures the shared coordination store.
type StoreConfig struct {
	URL         string        `mapstructure:"url"` // redis:// URL or plain host:port
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
	OpTimeout   time.Duration `mapstructure:"op_timeout"` // read/write timeout per command
}

// ProcessorsConfig configures the two upstream payment processors.
type ProcessorsConfig struct {
	DefaultURL     string        `mapstructure:"default_url"`
	FallbackURL    string        `mapstructure:"fallback_url"`
	PaymentTimeout time.Duration `mapstructure:"payment_timeout"`
	HealthTimeout  time.Duration `mapstructure:"health_timeout"`
	PaymentPool    int           `mapstructure:"payment_pool"` // idle conns per processor host
	HealthPool     int           `mapstructure:"health_pool"`
}

// URL returns the base URL for the given processor name.
func (p ProcessorsConfig) URL(name string) string {
	if name == "fallback" {
		return p.FallbackURL
	}
	return p.DefaultURL
}

// DispatchConfig tunes the retry loop of the payment dispatcher.
type DispatchConfig struct {
	MaxAttempts int             `mapstructure:"max_attempts"`
	Backoff     []time.Duration `mapstructure:"backoff"` // sleep before attempt i+1
}

// BreakerConfig tunes the shared circuit breakers.
type BreakerConfig struct {
	FailureThreshold int           `mapstructure:"failure_threshold"`
	SuccessThreshold int           `mapstructure:"success_threshold"`
	Cooldown         time.Duration `mapstructure:"cooldown"`
	RecordTTL        time.Duration `mapstructure:"record_ttl"`
}

// HealthConfig tunes the cached health view.
type HealthConfig struct {
	CacheTTL           time.Duration `mapstructure:"cache_ttl"`
	LatencyThresholdMs int           `mapstructure:"latency_threshold_ms"`
}

// AsyncConfig bounds the background write pool.
type AsyncConfig struct {
	Workers int `mapstructure:"workers"`
}

// ThrottleConfig caps inbound request rate. Zero RPS disables the throttle.
type ThrottleConfig struct {
	RPS   int `mapstructure:"rps"`
	Burst int `mapstructure:"burst"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: RINHA.
// Nested keys use underscore: RINHA_SERVER_PORT, RINHA_BREAKER_COOLDOWN, etc.
// The deployment-contract variables PROCESSOR_DEFAULT_URL,
// PROCESSOR_FALLBACK_URL and STORE_CONNECTION_STRING are honored without the
// prefix.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 9999)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.drain_timeout", "5s")
	v.SetDefault("store.url", "localhost:6379")
	v.SetDefault("store.dial_timeout", "2s")
	v.SetDefault("store.op_timeout", "1s")
	v.SetDefault("processors.default_url", "")
	v.SetDefault("processors.fallback_url", "")
	v.SetDefault("processors.payment_timeout", "1s")
	v.SetDefault("processors.health_timeout", "500ms")
	v.SetDefault("processors.payment_pool", 200)
	v.SetDefault("processors.health_pool", 50)
	v.SetDefault("dispatch.max_attempts", 2)
	v.SetDefault("dispatch.backoff", []string{"25ms", "100ms"})
	v.SetDefault("breaker.failure_threshold", 5)
	v.SetDefault("breaker.success_threshold", 3)
	v.SetDefault("breaker.cooldown", "5s")
	v.SetDefault("breaker.record_ttl", "10m")
	v.SetDefault("health.cache_ttl", "5s")
	v.SetDefault("health.latency_threshold_ms", 500)
	v.SetDefault("async.workers", 64)
	v.SetDefault("throttle.rps", 0)
	v.SetDefault("throttle.burst", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: RINHA_STORE_URL -> store.url
	v.SetEnvPrefix("RINHA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Deployment-contract aliases without the prefix.
	_ = v.BindEnv("processors.default_url", "RINHA_PROCESSORS_DEFAULT_URL", "PROCESSOR_DEFAULT_URL")
	_ = v.BindEnv("processors.fallback_url", "RINHA_PROCESSORS_FALLBACK_URL", "PROCESSOR_FALLBACK_URL")
	_ = v.BindEnv("store.url", "RINHA_STORE_URL", "STORE_CONNECTION_STRING", "REDIS_URL")

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration can actually run a gateway.
func (c *Config) Validate() error {
	if c.Processors.DefaultURL == "" {
		return fmt.Errorf("processors.default_url is required (PROCESSOR_DEFAULT_URL)")
	}
	if c.Processors.FallbackURL == "" {
		return fmt.Errorf("processors.fallback_url is required (PROCESSOR_FALLBACK_URL)")
	}
	if c.Store.URL == "" {
		return fmt.Errorf("store.url is required (STORE_CONNECTION_STRING)")
	}
	if c.Dispatch.MaxAttempts < 1 {
		return fmt.Errorf("dispatch.max_attempts must be at least 1")
	}
	if c.Dispatch.MaxAttempts > 1 && len(c.Dispatch.Backoff) == 0 {
		return fmt.Errorf("dispatch.backoff must name at least one interval when retrying")
	}
	if c.Breaker.FailureThreshold < 1 || c.Breaker.SuccessThreshold < 1 {
		return fmt.Errorf("breaker thresholds must be at least 1")
	}
	return nil
}
