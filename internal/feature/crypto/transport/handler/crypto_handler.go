// Package handler はcryptoフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"finboard/internal/api"
	"finboard/internal/feature/crypto/domain/entity"
)

// CryptoUsecase は暗号資産価格取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CryptoUsecase interface {
	GetBitcoin(ctx context.Context) (entity.CryptoQuote, error)
}

// CryptoHandler は暗号資産価格のHTTPリクエストを処理します。
type CryptoHandler struct {
	uc CryptoUsecase
}

// NewCryptoHandler は指定されたusecaseでCryptoHandlerの新しいインスタンスを生成します。
func NewCryptoHandler(uc CryptoUsecase) *CryptoHandler {
	return &CryptoHandler{uc: uc}
}

// GetBitcoin はBitcoinのUSD価格と24時間変化率をJSONで返します。
// provider障害時はゼロ埋めのペイロードで500を返します。
//
// エンドポイント: GET /crypto
func (h *CryptoHandler) GetBitcoin(c *gin.Context) {
	quote, err := h.uc.GetBitcoin(c.Request.Context())
	if err != nil {
		slog.Error("crypto fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.CryptoResponse{Price: 0, ChangePercent: 0})
		return
	}

	c.JSON(http.StatusOK, api.CryptoResponse{
		Price:         quote.Price,
		ChangePercent: quote.ChangePercent,
	})
}
