package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the demo server.
//
// ProjectName and Domain are substituted by the nsm generator at
// scaffold time; here they are ordinary start-time configuration.
type Config struct {
	ProjectName string `env:"PROJECT_NAME" envDefault:"nsm-demo"`
	Domain      string `env:"PROJECT_DOMAIN" envDefault:"demo.localhost"`
	Version     string `env:"PROJECT_VERSION" envDefault:"1.0.0"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// NSM integration
	NSMEnabledValue string `env:"NSM_ENABLED" envDefault:"false"`
	PortsFile       string `env:"NSM_PORTS_FILE" envDefault:".nsm-ports.json"`

	// Static file serving
	StaticDir string `env:"STATIC_DIR" envDefault:"./static"`

	// Message history
	Store StoreConfig

	// Redis configuration (used when STORE_BACKEND is "redis")
	Redis RedisConfig

	// Timeouts
	ShutdownTimeout time.Duration `env:"TIMEOUT_SHUTDOWN" envDefault:"10s"`
}

// StoreConfig holds message history configuration
type StoreConfig struct {
	Backend     string        `env:"STORE_BACKEND" envDefault:"memory"`
	HistorySize int           `env:"STORE_HISTORY_SIZE" envDefault:"100"`
	TTL         time.Duration `env:"STORE_TTL" envDefault:"24h"`
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASS"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`

	// Connection pool settings
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	MaxRetries   int           `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// NSMEnabled reports whether nsm integration is active. Only the
// literal string "true" enables it; any other value is false.
func (c *Config) NSMEnabled() bool {
	return c.NSMEnabledValue == "true"
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	switch c.Store.Backend {
	case "memory":
	case "redis":
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis address is required for the redis store backend")
		}
	default:
		return fmt.Errorf("unsupported store backend: %s (must be memory or redis)", c.Store.Backend)
	}

	if c.Store.HistorySize < 1 {
		return fmt.Errorf("history size must be at least 1")
	}

	return nil
}

// Ports holds the listen address configuration written by nsm
type Ports struct {
	HTTP  int    `json:"http"`
	HTTPS int    `json:"https"`
	Host  string `json:"host"`
}

// DefaultPorts returns the hardcoded listen defaults
func DefaultPorts() Ports {
	return Ports{
		HTTP:  8080,
		HTTPS: 8443,
		Host:  "127.0.0.1",
	}
}

// LoadPorts overlays the nsm ports file onto the defaults. Keys present
// in the file replace defaults; absent keys keep them. A missing file
// is not an error. On a read or parse failure the defaults are
// returned together with the error so the caller can log and continue.
func LoadPorts(path string) (Ports, error) {
	ports := DefaultPorts()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ports, nil
		}
		return ports, fmt.Errorf("failed to read ports file: %w", err)
	}

	if err := json.Unmarshal(data, &ports); err != nil {
		return DefaultPorts(), fmt.Errorf("failed to parse ports file: %w", err)
	}

	return ports, nil
}

// Addr returns the plain HTTP listen address. Only the plain port is
// bound; the https port is carried for the nsm proxy.
func (p Ports) Addr() string {
	return fmt.Sprintf("%s:%d", p.Host, p.HTTP)
}
