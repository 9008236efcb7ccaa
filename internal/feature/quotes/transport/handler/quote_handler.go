// Package handler はquotesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"finboard/internal/api"
	"finboard/internal/feature/quotes/domain/entity"
	"finboard/internal/feature/quotes/usecase"
)

// QuotesUsecase はクオート操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type QuotesUsecase interface {
	GetQuote(ctx context.Context, symbol string) (*entity.QuoteDetail, error)
	Search(ctx context.Context, query string, limit int) ([]entity.SearchResult, error)
}

// QuoteHandler はクオート・検索のHTTPリクエストを処理します。
type QuoteHandler struct {
	uc QuotesUsecase
}

// NewQuoteHandler は指定されたusecaseでQuoteHandlerの新しいインスタンスを生成します。
func NewQuoteHandler(uc QuotesUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// GetQuote は銘柄のクオートをJSONで返します。
//
// エンドポイント例:
// GET /quote?symbol=AAPL
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "symbol required"})
		return
	}

	detail, err := h.uc.GetQuote(c.Request.Context(), symbol)
	if err != nil {
		if errors.Is(err, usecase.ErrSymbolNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "symbol not found"})
			return
		}
		slog.Error("quote fetch failed", "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch quote"})
		return
	}

	c.JSON(http.StatusOK, api.QuoteResponse{
		Symbol:        detail.Symbol,
		DisplayName:   detail.DisplayName,
		Price:         detail.Price,
		ChangePercent: detail.ChangePercent,
		Currency:      detail.Currency,
		Exchange:      detail.Exchange,
		Industry:      detail.Industry,
	})
}

// Search は銘柄検索の結果をJSON配列で返します。クエリ欠落や取得失敗は
// エラーではなく空配列を返します。
//
// エンドポイント例:
// GET /search?q=apple&limit=6
func (h *QuoteHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusOK, []api.SearchItemResponse{})
		return
	}
	// 不正な値はusecase側でデフォルトに丸められる
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))

	results, err := h.uc.Search(c.Request.Context(), query, limit)
	if err != nil {
		slog.Warn("symbol search failed", "query", query, "error", err)
		c.JSON(http.StatusOK, []api.SearchItemResponse{})
		return
	}

	out := make([]api.SearchItemResponse, 0, len(results))
	for _, r := range results {
		out = append(out, api.SearchItemResponse{
			Symbol:    r.Symbol,
			ShortName: r.ShortName,
			LongName:  r.LongName,
			Exchange:  r.Exchange,
			Currency:  r.Currency,
		})
	}
	c.JSON(http.StatusOK, out)
}
