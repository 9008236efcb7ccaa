package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newDataClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	session, crumb := newSessionServer(t, nil, nil)
	data := httptest.NewServer(handler)
	t.Cleanup(data.Close)
	return newTestClient(session.URL, crumb.URL, data.URL)
}

// TestClient_Quote_PriceFallbackOrder はpreMarketPriceと前日終値のみが
// 設定されたクオートでpreMarketPriceが優先されることを検証します。
func TestClient_Quote_PriceFallbackOrder(t *testing.T) {
	c := newDataClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"quoteResponse":{"result":[{
			"symbol":"AAPL",
			"shortName":"Apple Inc.",
			"preMarketPrice":101.5,
			"regularMarketPreviousClose":99.0
		}]}}`))
	})

	quote, err := c.Quote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Price == nil || *quote.Price != 101.5 {
		t.Fatalf("expected preMarketPrice 101.5, got %v", quote.Price)
	}
}

func TestClient_Quote_DisplayNameFallback(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "short name wins",
			body: `{"quoteResponse":{"result":[{"symbol":"AAPL","shortName":"Apple Inc.","longName":"Apple Inc. (Cupertino)"}]}}`,
			want: "Apple Inc.",
		},
		{
			name: "long name when short missing",
			body: `{"quoteResponse":{"result":[{"symbol":"AAPL","longName":"Apple Inc. (Cupertino)"}]}}`,
			want: "Apple Inc. (Cupertino)",
		},
		{
			name: "raw symbol when both missing",
			body: `{"quoteResponse":{"result":[{"symbol":"AAPL"}]}}`,
			want: "AAPL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newDataClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})
			quote, err := c.Quote(context.Background(), "AAPL")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if quote.DisplayName != tt.want {
				t.Errorf("expected display name %q, got %q", tt.want, quote.DisplayName)
			}
		})
	}
}

// TestClient_Quote_NoResult はresultが空のとき(nil, nil)が返ることを
// 検証します。404への変換は呼び出し元の責務です。
func TestClient_Quote_NoResult(t *testing.T) {
	c := newDataClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"quoteResponse":{"result":[]}}`))
	})

	quote, err := c.Quote(context.Background(), "NOPE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote != nil {
		t.Fatalf("expected nil quote, got %+v", quote)
	}
}

// TestClient_Series_DropsNullCloses はcloseがnullのインデックスが
// 系列から破棄されることを検証します。
func TestClient_Series_DropsNullCloses(t *testing.T) {
	c := newDataClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("range"); got != "1mo" {
			t.Errorf("expected range=1mo, got %q", got)
		}
		if got := r.URL.Query().Get("interval"); got != "1d" {
			t.Errorf("expected interval=1d, got %q", got)
		}
		_, _ = w.Write([]byte(`{"chart":{"result":[{
			"timestamp":[1700000000,1700086400,1700172800],
			"indicators":{"quote":[{
				"close":[1.0,null,3.0],
				"open":[0.9,null,2.9],
				"high":[1.1,null,3.1],
				"low":[0.8,null,2.8]
			}]}
		}]}}`))
	})

	points, err := c.Series(context.Background(), "AAPL", "1mo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Close != 1.0 || points[1].Close != 3.0 {
		t.Errorf("unexpected closes: %v, %v", points[0].Close, points[1].Close)
	}
	// 秒→ミリ秒変換
	if points[0].TimestampMillis != 1700000000000 {
		t.Errorf("expected millis 1700000000000, got %d", points[0].TimestampMillis)
	}
	if points[1].TimestampMillis != 1700172800000 {
		t.Errorf("expected millis 1700172800000, got %d", points[1].TimestampMillis)
	}
}

func TestClient_Series_EmptyResult(t *testing.T) {
	c := newDataClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"chart":{"result":[]}}`))
	})

	points, err := c.Series(context.Background(), "AAPL", "1mo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 0 {
		t.Fatalf("expected empty series, got %d points", len(points))
	}
}

// TestClient_Industry_Optional は業種取得の失敗・構造不一致がnilに
// 丸められることを検証します。
func TestClient_Industry_Optional(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   *string
	}{
		{
			name:   "present",
			status: http.StatusOK,
			body:   `{"quoteSummary":{"result":[{"assetProfile":{"industry":"Consumer Electronics"}}]}}`,
			want:   ptr("Consumer Electronics"),
		},
		{
			name:   "missing module",
			status: http.StatusOK,
			body:   `{"quoteSummary":{"result":[{}]}}`,
			want:   nil,
		},
		{
			name:   "empty result",
			status: http.StatusOK,
			body:   `{"quoteSummary":{"result":[]}}`,
			want:   nil,
		},
		{
			name:   "upstream failure",
			status: http.StatusNotFound,
			body:   `{}`,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newDataClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			got := c.Industry(context.Background(), "AAPL")
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("expected %q, got %q", *tt.want, *got)
			}
		})
	}
}

func TestClient_Search(t *testing.T) {
	c := newDataClient(t, func(w http.ResponseWriter, r *http.Request) {
		// 検索はcrumbなしのプレーンなリクエスト
		if got := r.URL.Query().Get("crumb"); got != "" {
			t.Errorf("search must not carry a crumb, got %q", got)
		}
		_, _ = w.Write([]byte(`{"quotes":[
			{"symbol":"AAPL","shortname":"Apple Inc.","longname":"Apple Inc.","exchange":"NMS","currency":"USD"},
			{"symbol":"APLE","longname":"Apple Hospitality REIT","exchange":"NYQ","currency":"USD"},
			{"symbol":"AAPL.MX","name":"Apple","exchange":"MEX","currency":"MXN"}
		]}`))
	})

	results, err := c.Search(context.Background(), "apple", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected limit of 2 results, got %d", len(results))
	}
	if results[1].ShortName != "Apple Hospitality REIT" {
		t.Errorf("expected longname fallback, got %q", results[1].ShortName)
	}
}

func ptr(s string) *string { return &s }
