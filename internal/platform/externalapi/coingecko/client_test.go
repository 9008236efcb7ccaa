package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_SimplePrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/simple/price" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("include_24hr_change") != "true" {
			t.Error("expected include_24hr_change=true")
		}
		_, _ = w.Write([]byte(`{"bitcoin":{"usd":64123.5,"usd_24h_change":-2.31}}`))
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL, Timeout: 5 * time.Second}, server.Client())
	quote, err := c.SimplePrice(context.Background(), "bitcoin", "usd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Price != 64123.5 {
		t.Errorf("expected price 64123.5, got %v", quote.Price)
	}
	if quote.ChangePercent != -2.31 {
		t.Errorf("expected change -2.31, got %v", quote.ChangePercent)
	}
}

func TestClient_SimplePrice_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL, Timeout: 5 * time.Second}, server.Client())
	if _, err := c.SimplePrice(context.Background(), "bitcoin", "usd"); err == nil {
		t.Fatal("expected error on 429")
	}
}
