// Package handler はtrialフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stockoracle_backend/internal/api"
	"stockoracle_backend/internal/feature/trial/domain/entity"
	"stockoracle_backend/internal/feature/trial/transport/http/dto"
	"stockoracle_backend/internal/feature/trial/usecase"
	jwtmw "stockoracle_backend/internal/platform/jwt"
)

// TrialUsecase はハンドラーが必要とするトライアル操作を定義します。
type TrialUsecase interface {
	Status(ctx context.Context, userID uint) (*entity.Trial, error)
}

// TrialHandler はトライアル残高のHTTPハンドラーです。
type TrialHandler struct {
	trials TrialUsecase
	now    func() time.Time
}

// NewTrialHandler はTrialHandlerの新しいインスタンスを生成します。
func NewTrialHandler(trials TrialUsecase) *TrialHandler {
	return &TrialHandler{trials: trials, now: time.Now}
}

// Status はGET /trialに対応し、認証済みユーザーの残高を返します。
// 記録が無い場合（プレミアムユーザーなど）は404を返します。
func (h *TrialHandler) Status(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	trial, err := h.trials.Status(c.Request.Context(), userID)
	if errors.Is(err, usecase.ErrTrialNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "trial not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load trial"})
		return
	}

	c.JSON(http.StatusOK, dto.TrialRes{
		SecondsRemaining: trial.SecondsRemaining,
		ExpiresAt:        trial.ExpiresAt,
		Expired:          trial.Expired(h.now()),
	})
}
