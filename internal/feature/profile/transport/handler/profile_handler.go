// Package handler はprofileフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"finboard/internal/api"
	"finboard/internal/feature/profile/domain/entity"
	"finboard/internal/feature/profile/usecase"
)

// ProfileUsecase は企業プロフィール生成のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ProfileUsecase interface {
	GetProfile(ctx context.Context, symbol string) (*entity.CompanyProfile, error)
}

// ProfileHandler は企業プロフィールのHTTPリクエストを処理します。
type ProfileHandler struct {
	uc ProfileUsecase
}

// NewProfileHandler は指定されたusecaseでProfileHandlerの新しいインスタンスを生成します。
func NewProfileHandler(uc ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// GetProfile は企業プロフィール（市場・業種・3行サマリー）をJSONで返します。
//
// エンドポイント例:
// GET /profile?symbol=005930.KS
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "symbol required"})
		return
	}

	profile, err := h.uc.GetProfile(c.Request.Context(), symbol)
	if err != nil {
		if errors.Is(err, usecase.ErrSymbolNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "symbol not found"})
			return
		}
		slog.Error("profile build failed", "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to build company profile"})
		return
	}

	c.JSON(http.StatusOK, api.ProfileResponse{
		Symbol:      profile.Symbol,
		CompanyName: profile.CompanyName,
		Market:      profile.Market,
		Industry:    profile.Industry,
		Bullets:     profile.Bullets,
		Source:      profile.Source,
	})
}
