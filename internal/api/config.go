package api

import (
	"os"
	"strconv"
)

// Config holds transport configuration for the activity service client.
type Config struct {
	Endpoint  string
	TimeoutMs int
	Debug     bool
}

// DefaultConfig returns a Config with sensible defaults for a local gateway.
func DefaultConfig() Config {
	return Config{
		Endpoint:  "http://localhost:8080",
		TimeoutMs: 10000,
		Debug:     false,
	}
}

// LoadConfig reads client configuration from environment variables, falling
// back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("FITCTL_API_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("FITCTL_API_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("FITCTL_DEBUG"); v != "" {
		cfg.Debug, _ = strconv.ParseBool(v)
	}

	return cfg
}
