package frankfurter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{BaseURL: server.URL, Timeout: 5 * time.Second}, server.Client())
}

func TestClient_Latest(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/latest" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("from") != "USD" || r.URL.Query().Get("to") != "KRW" {
			t.Errorf("unexpected pair: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"date":"2026-08-28","rates":{"KRW":1338.5}}`))
	})

	rate, day, err := c.Latest(context.Background(), "USD", "KRW")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != 1338.5 {
		t.Errorf("expected rate 1338.5, got %v", rate)
	}
	want := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	if !day.Equal(want) {
		t.Errorf("expected anchor day %v, got %v", want, day)
	}
}

func TestClient_On(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2026-08-21" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"date":"2026-08-21","rates":{"KRW":1330.0}}`))
	})

	rate, err := c.On(context.Background(), time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC), "USD", "KRW")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != 1330.0 {
		t.Errorf("expected rate 1330.0, got %v", rate)
	}
}

func TestClient_On_MissingRate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"date":"2026-08-22","rates":{}}`))
	})

	rate, err := c.On(context.Background(), time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC), "USD", "KRW")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != 0 {
		t.Errorf("expected 0 for a day without a published rate, got %v", rate)
	}
}

func TestClient_HTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	if _, _, err := c.Latest(context.Background(), "USD", "KRW"); err == nil {
		t.Fatal("expected error on 503")
	}
}
