package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// devSessionSecret is the fallback signing secret used by LoadWithDefaults.
// It is the fixed literal the original deployment shipped with; anyone who
// knows it can forge session cookies. Load() refuses to run without a real
// secret.
const devSessionSecret = "outside-secret-key"

// Config holds all application configuration.
type Config struct {
	HTTP    HTTPConfig
	Store   StoreConfig
	Session SessionConfig
}

// HTTPConfig contains HTTP server settings.
type HTTPConfig struct {
	Address     string   // listen address (e.g., ":3000")
	CORSOrigins []string // origins allowed to call the API with credentials
}

// StoreConfig contains data directory settings.
type StoreConfig struct {
	DataDir string // directory holding the JSON collection files
}

// SessionConfig contains session cookie settings.
type SessionConfig struct {
	Secret string        // cookie token signing secret
	TTL    time.Duration // session lifetime; 0 means no expiry
}

// Load loads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg, err := loadCommon()
	if err != nil {
		return nil, err
	}
	cfg.Session.Secret = getEnv("SESSION_SECRET", "")
	if cfg.Session.Secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is not set; required for production")
	}
	return cfg, nil
}

// LoadWithDefaults is like Load but falls back to the development session
// secret. WARNING: Only use in development! Use Load() in production.
func LoadWithDefaults() (*Config, error) {
	cfg, err := loadCommon()
	if err != nil {
		return nil, err
	}
	cfg.Session.Secret = getEnv("SESSION_SECRET", devSessionSecret)
	return cfg, nil
}

func loadCommon() (*Config, error) {
	ttl, err := getEnvDuration("SESSION_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	return &Config{
		HTTP: HTTPConfig{
			Address:     getEnv("HTTP_ADDRESS", ":3000"),
			CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		},
		Store: StoreConfig{
			DataDir: getEnv("DATA_DIR", "data"),
		},
		Session: SessionConfig{
			TTL: ttl,
		},
	}, nil
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

// getEnvDuration retrieves an environment variable as a Go duration with a
// default fallback.
func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a string representation of the config (sensitive values are
// masked).
func (c *Config) String() string {
	return fmt.Sprintf("Config{HTTP: %s, Data: %s, Session: *** (masked) ***, TTL: %s}",
		c.HTTP.Address, c.Store.DataDir, c.Session.TTL)
}
