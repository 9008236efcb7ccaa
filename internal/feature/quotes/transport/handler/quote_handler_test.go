package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"finboard/internal/feature/quotes/domain/entity"
	"finboard/internal/feature/quotes/usecase"
)

// mockQuotesUsecase はQuotesUsecaseインターフェースのモック実装です。
type mockQuotesUsecase struct {
	GetQuoteFunc func(ctx context.Context, symbol string) (*entity.QuoteDetail, error)
	SearchFunc   func(ctx context.Context, query string, limit int) ([]entity.SearchResult, error)
}

func (m *mockQuotesUsecase) GetQuote(ctx context.Context, symbol string) (*entity.QuoteDetail, error) {
	if m.GetQuoteFunc != nil {
		return m.GetQuoteFunc(ctx, symbol)
	}
	return nil, nil
}

func (m *mockQuotesUsecase) Search(ctx context.Context, query string, limit int) ([]entity.SearchResult, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, limit)
	}
	return nil, nil
}

func ptr[T any](v T) *T { return &v }

// TestQuoteHandler_GetQuote はGetQuoteハンドラーの各種シナリオをテーブル駆動テストで検証します。
func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		url            string
		mockGetQuote   func(ctx context.Context, symbol string) (*entity.QuoteDetail, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns quote with industry",
			url:  "/quote?symbol=AAPL",
			mockGetQuote: func(ctx context.Context, symbol string) (*entity.QuoteDetail, error) {
				return &entity.QuoteDetail{
					Quote: entity.Quote{
						Symbol:        "AAPL",
						DisplayName:   "Apple Inc.",
						Price:         ptr(187.5),
						ChangePercent: ptr(1.2),
						Currency:      "USD",
						Exchange:      "NMS",
					},
					Industry: ptr("Consumer Electronics"),
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"symbol":"AAPL","displayName":"Apple Inc.","price":187.5,"changePercent":1.2,"currency":"USD","exchange":"NMS","industry":"Consumer Electronics"}`,
		},
		{
			name: "success: null price outside trading hours",
			url:  "/quote?symbol=AAPL",
			mockGetQuote: func(ctx context.Context, symbol string) (*entity.QuoteDetail, error) {
				return &entity.QuoteDetail{
					Quote: entity.Quote{Symbol: "AAPL", DisplayName: "Apple Inc.", Currency: "USD", Exchange: "NMS"},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"symbol":"AAPL","displayName":"Apple Inc.","price":null,"changePercent":null,"currency":"USD","exchange":"NMS","industry":null}`,
		},
		{
			name:           "failure: missing symbol",
			url:            "/quote",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"symbol required"}`,
		},
		{
			name: "failure: symbol not found",
			url:  "/quote?symbol=NOPE",
			mockGetQuote: func(ctx context.Context, symbol string) (*entity.QuoteDetail, error) {
				return nil, usecase.ErrSymbolNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"symbol not found"}`,
		},
		{
			name: "failure: upstream error",
			url:  "/quote?symbol=AAPL",
			mockGetQuote: func(ctx context.Context, symbol string) (*entity.QuoteDetail, error) {
				return nil, errors.New("upstream unavailable")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to fetch quote"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockQuotesUsecase{GetQuoteFunc: tt.mockGetQuote}
			h := NewQuoteHandler(mockUC)

			router := gin.New()
			router.GET("/quote", h.GetQuote)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestQuoteHandler_Search はSearchハンドラーの各種シナリオをテーブル駆動テストで検証します。
// 検索はUIのサジェスト用途なので、失敗時もエラーではなく空配列を返します。
func TestQuoteHandler_Search(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		url            string
		mockSearch     func(ctx context.Context, query string, limit int) ([]entity.SearchResult, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns matches",
			url:  "/search?q=apple&limit=2",
			mockSearch: func(ctx context.Context, query string, limit int) ([]entity.SearchResult, error) {
				assert.Equal(t, "apple", query)
				assert.Equal(t, 2, limit)
				return []entity.SearchResult{
					{Symbol: "AAPL", ShortName: "Apple Inc.", LongName: "Apple Inc.", Exchange: "NMS", Currency: "USD"},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"symbol":"AAPL","shortName":"Apple Inc.","longName":"Apple Inc.","exchange":"NMS","currency":"USD"}]`,
		},
		{
			name:           "success: empty query returns empty array",
			url:            "/search",
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "success: provider error returns empty array",
			url:  "/search?q=apple",
			mockSearch: func(ctx context.Context, query string, limit int) ([]entity.SearchResult, error) {
				return nil, errors.New("upstream unavailable")
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockQuotesUsecase{SearchFunc: tt.mockSearch}
			h := NewQuoteHandler(mockUC)

			router := gin.New()
			router.GET("/search", h.Search)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
