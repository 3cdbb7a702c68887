package coach

import (
	"os"
	"strconv"
)

// Config holds transport configuration for the AI coaching service client.
type Config struct {
	Endpoint   string
	TimeoutMs  int
	MaxRetries int
}

// DefaultConfig returns defaults for a locally running AI service. Advice
// generation calls a language model upstream, hence the long timeout.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "http://localhost:8083",
		TimeoutMs:  30000,
		MaxRetries: 1,
	}
}

// LoadConfig reads coach client configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("FITCTL_COACH_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("FITCTL_COACH_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("FITCTL_COACH_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}
