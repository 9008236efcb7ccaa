// Package coingecko provides a client for the CoinGecko simple-price API.
package coingecko

import (
	"os"
	"time"
)

// Config holds configuration for the CoinGecko API client.
type Config struct {
	BaseURL       string        // Base URL for the API (e.g., "https://api.coingecko.com")
	Timeout       time.Duration // HTTP request timeout
	RatePerMinute int           // Client-side request cap; the public tier throttles hard
}

// LoadConfig loads CoinGecko configuration from environment variables,
// falling back to the public production endpoint.
func LoadConfig() Config {
	base := os.Getenv("COINGECKO_BASE_URL")
	if base == "" {
		base = "https://api.coingecko.com"
	}
	return Config{
		BaseURL:       base,
		Timeout:       10 * time.Second,
		RatePerMinute: 25,
	}
}
