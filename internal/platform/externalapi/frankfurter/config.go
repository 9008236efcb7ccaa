// Package frankfurter provides a client for the Frankfurter
// foreign-exchange rate API.
package frankfurter

import (
	"os"
	"time"
)

// Config holds configuration for the Frankfurter API client.
type Config struct {
	BaseURL string        // Base URL for the API (e.g., "https://api.frankfurter.app")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Frankfurter configuration from environment variables,
// falling back to the public production endpoint.
func LoadConfig() Config {
	base := os.Getenv("FRANKFURTER_BASE_URL")
	if base == "" {
		base = "https://api.frankfurter.app"
	}
	return Config{
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
