// Package di provides dependency injection factories for creating application components.
package di

import (
	"finboard/internal/platform/externalapi/coingecko"
	"finboard/internal/platform/externalapi/frankfurter"
	"finboard/internal/platform/externalapi/yahoo"
	infrahttp "finboard/internal/platform/http"
)

// NewYahooClient creates a fully configured Yahoo Finance client with HTTP client.
func NewYahooClient() *yahoo.Client {
	cfg := yahoo.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return yahoo.NewClient(cfg, httpClient)
}

// NewForexClient creates a Frankfurter client for exchange rate lookups.
func NewForexClient() *frankfurter.Client {
	cfg := frankfurter.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return frankfurter.NewClient(cfg, httpClient)
}

// NewCryptoClient creates a CoinGecko client for spot price lookups.
func NewCryptoClient() *coingecko.Client {
	cfg := coingecko.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return coingecko.NewClient(cfg, httpClient)
}
