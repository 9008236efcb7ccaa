package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"finboard/internal/feature/crypto/domain/entity"
	"finboard/internal/shared/ratelimiter"
)

// Client is a thin client for the CoinGecko simple-price endpoint.
type Client struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// NewClient creates a new Client with the given configuration and HTTP client.
// Requests are throttled client-side to stay under the public API quota.
func NewClient(cfg Config, client *http.Client) *Client {
	perMinute := cfg.RatePerMinute
	if perMinute <= 0 {
		perMinute = 25
	}
	return &Client{
		cfg:     cfg,
		client:  client,
		limiter: ratelimiter.NewRateLimiter(perMinute, time.Minute),
	}
}

// SimplePrice fetches the current price of a coin in the given fiat currency
// together with its 24h change percent. Missing fields decode to 0.
func (c *Client) SimplePrice(ctx context.Context, coin, vs string) (entity.CryptoQuote, error) {
	q := url.Values{}
	q.Set("ids", coin)
	q.Set("vs_currencies", vs)
	q.Set("include_24hr_change", "true")

	c.limiter.WaitIfNeeded()

	u := c.cfg.BaseURL + "/api/v3/simple/price?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return entity.CryptoQuote{}, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return entity.CryptoQuote{}, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return entity.CryptoQuote{}, fmt.Errorf("coingecko http %d", res.StatusCode)
	}

	// {"bitcoin":{"usd":12345.6,"usd_24h_change":-1.2}}
	var body map[string]map[string]float64
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return entity.CryptoQuote{}, err
	}

	fields := body[coin]
	return entity.CryptoQuote{
		Price:         fields[vs],
		ChangePercent: fields[vs+"_24h_change"],
	}, nil
}
