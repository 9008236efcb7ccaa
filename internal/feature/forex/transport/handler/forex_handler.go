// Package handler はforexフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"finboard/internal/api"
	"finboard/internal/feature/forex/domain/entity"
)

// ForexUsecase は為替レート取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ForexUsecase interface {
	GetSnapshot(ctx context.Context) (entity.RateSnapshot, error)
}

// ForexHandler は為替レートのHTTPリクエストを処理します。
type ForexHandler struct {
	uc ForexUsecase
}

// NewForexHandler は指定されたusecaseでForexHandlerの新しいインスタンスを生成します。
func NewForexHandler(uc ForexUsecase) *ForexHandler {
	return &ForexHandler{uc: uc}
}

// GetRates はUSD→KRWの最新レートと前日レートをJSONで返します。
// provider障害時はゼロ埋めのペイロードで500を返します。
//
// エンドポイント: GET /forex
func (h *ForexHandler) GetRates(c *gin.Context) {
	snapshot, err := h.uc.GetSnapshot(c.Request.Context())
	if err != nil {
		slog.Error("forex fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ForexResponse{Rate: 0, PreviousRate: 0})
		return
	}

	c.JSON(http.StatusOK, api.ForexResponse{
		Rate:         snapshot.Rate,
		PreviousRate: snapshot.PreviousRate,
	})
}
