// Package handler はpredictionフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockoracle_backend/internal/api"
	marketentity "stockoracle_backend/internal/feature/marketdata/domain/entity"
	"stockoracle_backend/internal/feature/prediction/domain/entity"
	"stockoracle_backend/internal/feature/prediction/transport/http/dto"
	"stockoracle_backend/internal/feature/prediction/usecase"
)

// PredictionUsecase は予測生成のユースケースインターフェースを定義します。
type PredictionUsecase interface {
	Predict(ctx context.Context, symbol string, origin marketentity.MarketOrigin, horizon entity.Horizon) (*entity.Prediction, error)
}

// MarketLookup は銘柄コードから市場名を解決します。
type MarketLookup interface {
	MarketOf(ctx context.Context, code string) (string, error)
}

// PredictionHandler は銘柄予測のHTTPリクエストを処理します。
type PredictionHandler struct {
	uc      PredictionUsecase
	markets MarketLookup
}

// NewPredictionHandler は新しい PredictionHandler を作成します。
func NewPredictionHandler(uc PredictionUsecase, markets MarketLookup) *PredictionHandler {
	return &PredictionHandler{uc: uc, markets: markets}
}

// Get は銘柄コードとホライゾンを受け取り、予測をJSONで返します。
//
// エンドポイント例:
// GET /predictions/:symbol?horizon=1W&origin=US
func (h *PredictionHandler) Get(c *gin.Context) {
	symbol := c.Param("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "symbol is required"})
		return
	}

	horizon := parseHorizon(c.DefaultQuery("horizon", string(entity.Horizon1W)))
	origin := h.resolveOrigin(c.Request.Context(), symbol, c.Query("origin"))

	p, err := h.uc.Predict(c.Request.Context(), symbol, origin, horizon)
	if errors.Is(err, usecase.ErrNoSeries) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "no data for symbol"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to generate prediction"})
		return
	}

	c.JSON(http.StatusOK, dto.PredictionRes{
		Symbol:         p.Symbol,
		CurrentPrice:   p.CurrentPrice,
		PredictedPrice: p.PredictedPrice,
		Confidence:     p.Confidence,
		Direction:      string(p.Direction),
		Horizon:        string(p.Horizon),
		GeneratedAt:    p.GeneratedAt,
	})
}

// parseHorizon は未知の値を1週間にフォールバックします。
func parseHorizon(param string) entity.Horizon {
	switch entity.Horizon(param) {
	case entity.Horizon1D, entity.Horizon1W, entity.Horizon1M:
		return entity.Horizon(param)
	}
	return entity.Horizon1W
}

// resolveOrigin はクエリパラメータ → 銘柄マスタ → USの順で市場を決定します。
func (h *PredictionHandler) resolveOrigin(ctx context.Context, symbol, param string) marketentity.MarketOrigin {
	switch marketentity.MarketOrigin(param) {
	case marketentity.OriginUS, marketentity.OriginIndia, marketentity.OriginOther:
		return marketentity.MarketOrigin(param)
	}

	if h.markets != nil {
		market, err := h.markets.MarketOf(ctx, symbol)
		if err == nil {
			switch market {
			case "India":
				return marketentity.OriginIndia
			case "US":
				return marketentity.OriginUS
			}
		} else {
			slog.Debug("market lookup failed, defaulting origin", "symbol", symbol, "error", err)
		}
	}

	return marketentity.OriginUS
}
