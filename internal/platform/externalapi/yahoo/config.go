// Package yahoo provides a session-authenticated client for the Yahoo
// Finance public API (quotes, charts, symbol search, company profiles).
package yahoo

import (
	"os"
	"time"
)

// Config holds configuration for the Yahoo Finance client.
type Config struct {
	SessionURL string        // Handshake endpoint that issues the session cookie
	CrumbURL   string        // Endpoint that issues the crumb token
	Query1URL  string        // Base URL for quote/chart endpoints
	Query2URL  string        // Base URL for search/quoteSummary endpoints
	Timeout    time.Duration // HTTP request timeout
	SessionTTL time.Duration // Lifetime of an acquired credential
}

// LoadConfig loads Yahoo client configuration from environment variables,
// falling back to the public production endpoints.
func LoadConfig() Config {
	return Config{
		SessionURL: envOr("YAHOO_SESSION_URL", "https://fc.yahoo.com"),
		CrumbURL:   envOr("YAHOO_CRUMB_URL", "https://query1.finance.yahoo.com/v1/test/getcrumb"),
		Query1URL:  envOr("YAHOO_QUERY1_URL", "https://query1.finance.yahoo.com"),
		Query2URL:  envOr("YAHOO_QUERY2_URL", "https://query2.finance.yahoo.com"),
		Timeout:    10 * time.Second,
		SessionTTL: 20 * time.Minute,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
