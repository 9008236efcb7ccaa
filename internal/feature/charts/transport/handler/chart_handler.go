// Package handler はchartsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"finboard/internal/api"
	"finboard/internal/feature/charts/domain/entity"
	"finboard/internal/feature/charts/usecase"
)

// ChartsUsecase はチャート系列取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ChartsUsecase interface {
	GetSeries(ctx context.Context, symbol, rng string) ([]entity.ChartPoint, error)
}

// ChartHandler はチャート系列のHTTPリクエストを処理します。
type ChartHandler struct {
	uc ChartsUsecase
}

// NewChartHandler は指定されたusecaseでChartHandlerの新しいインスタンスを生成します。
func NewChartHandler(uc ChartsUsecase) *ChartHandler {
	return &ChartHandler{uc: uc}
}

// GetChart は銘柄の日足チャート系列をJSONで返します。
//
// エンドポイント例:
// GET /chart?symbol=AAPL&range=30d
func (h *ChartHandler) GetChart(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "symbol required"})
		return
	}
	rng := c.DefaultQuery("range", usecase.DefaultRange)

	points, err := h.uc.GetSeries(c.Request.Context(), symbol, rng)
	if err != nil {
		slog.Error("chart fetch failed", "symbol", symbol, "range", rng, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch chart"})
		return
	}

	out := make([]api.ChartPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, api.ChartPointResponse{
			T:     p.TimestampMillis,
			Close: p.Close,
			Open:  p.Open,
			High:  p.High,
			Low:   p.Low,
		})
	}
	c.JSON(http.StatusOK, api.ChartResponse{Symbol: symbol, Points: out})
}
