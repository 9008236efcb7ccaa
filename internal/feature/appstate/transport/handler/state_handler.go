// Package handler はappstateフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"finboard/internal/api"
	"finboard/internal/feature/appstate/usecase"
)

// StateUsecase はキー/バリューストア操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type StateUsecase interface {
	GetValue(ctx context.Context, key string) (*float64, error)
	SetValue(ctx context.Context, key string, value float64) error
}

// StateHandler はキー/バリューストアのHTTPリクエストを処理します。
type StateHandler struct {
	uc StateUsecase
}

// NewStateHandler は指定されたusecaseでStateHandlerの新しいインスタンスを生成します。
func NewStateHandler(uc StateUsecase) *StateHandler {
	return &StateHandler{uc: uc}
}

// GetValue はキーの現在値をJSONで返します。未登録キーとストア未構成は
// value:nullの200、読み取り失敗はvalue:nullの500です。
//
// エンドポイント例:
// GET /state?key=krw_rate_today
func (h *StateHandler) GetValue(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "key required"})
		return
	}

	value, err := h.uc.GetValue(c.Request.Context(), key)
	if err != nil {
		slog.Error("state read failed", "key", key, "error", err)
		c.JSON(http.StatusInternalServerError, api.StateValueResponse{Value: nil})
		return
	}

	c.JSON(http.StatusOK, api.StateValueResponse{Value: value})
}

// SetValue はキーに値を書き込みます。冪等なupsertで、同一キーへの
// 連続書き込みは最後の値が残ります。
//
// エンドポイント: POST /state
// Content-Type: application/json
func (h *StateHandler) SetValue(c *gin.Context) {
	var req api.StateWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.StateWriteResponse{OK: false})
		return
	}

	if err := h.uc.SetValue(c.Request.Context(), req.Key, *req.Value); err != nil {
		if errors.Is(err, usecase.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, api.StateWriteResponse{OK: false})
			return
		}
		slog.Error("state write failed", "key", req.Key, "error", err)
		c.JSON(http.StatusInternalServerError, api.StateWriteResponse{OK: false})
		return
	}

	c.JSON(http.StatusOK, api.StateWriteResponse{OK: true})
}
