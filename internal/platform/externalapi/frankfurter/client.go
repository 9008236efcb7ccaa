package frankfurter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// dateLayout is the calendar-day format used by the Frankfurter API.
const dateLayout = "2006-01-02"

// Client is a thin client for the Frankfurter FX API.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a new Client with the given configuration and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// ratesResponse is the wire shape of both the /latest and /{date} endpoints.
type ratesResponse struct {
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// Latest fetches the most recent rate for the given currency pair. The
// returned time is the provider's publication day for that rate, which the
// lookback scan uses as its anchor.
func (c *Client) Latest(ctx context.Context, from, to string) (float64, time.Time, error) {
	body, err := c.fetch(ctx, "/latest", from, to)
	if err != nil {
		return 0, time.Time{}, err
	}

	day, err := time.Parse(dateLayout, body.Date)
	if err != nil {
		// Undated responses still carry a usable rate; anchor on today.
		day = time.Now().UTC()
	}
	return body.Rates[to], day, nil
}

// On fetches the rate for the given currency pair on a specific calendar day.
// A day with no published rate yields 0, not an error.
func (c *Client) On(ctx context.Context, day time.Time, from, to string) (float64, error) {
	body, err := c.fetch(ctx, "/"+day.Format(dateLayout), from, to)
	if err != nil {
		return 0, err
	}
	return body.Rates[to], nil
}

func (c *Client) fetch(ctx context.Context, path, from, to string) (*ratesResponse, error) {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("frankfurter http %d", res.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	return &body, nil
}
