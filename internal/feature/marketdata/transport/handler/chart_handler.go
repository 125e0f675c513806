// Package handler はmarketdataフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockoracle_backend/internal/api"
	"stockoracle_backend/internal/feature/marketdata/domain/entity"
	"stockoracle_backend/internal/feature/marketdata/transport/http/dto"
)

// ChartGenerator はチャート系列生成のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ChartGenerator interface {
	Generate(ctx context.Context, req entity.ChartRequest) entity.Series
}

// MarketLookup は銘柄コードから市場名を解決します。
// originクエリパラメータが省略された場合のフォールバックに使用します。
type MarketLookup interface {
	MarketOf(ctx context.Context, code string) (string, error)
}

// ChartHandler はチャートデータのHTTPリクエストを処理します。
type ChartHandler struct {
	gen     ChartGenerator
	markets MarketLookup
}

// NewChartHandler は指定されたジェネレーターと銘柄ルックアップでChartHandlerを生成します。
func NewChartHandler(gen ChartGenerator, markets MarketLookup) *ChartHandler {
	return &ChartHandler{gen: gen, markets: markets}
}

// GetChartHandler は銘柄コードとタイムフレームを受け取り、生成した系列をJSONで返します。
//
// エンドポイント例:
// GET /charts/:symbol?timeframe=1M&origin=US
func (h *ChartHandler) GetChartHandler(c *gin.Context) {
	symbol := c.Param("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "symbol is required"})
		return
	}

	// 未指定の場合はデフォルト値を使用
	timeframe := entity.Timeframe(c.DefaultQuery("timeframe", string(entity.Timeframe1M)))
	origin := h.resolveOrigin(c.Request.Context(), symbol, c.Query("origin"))

	series := h.gen.Generate(c.Request.Context(), entity.ChartRequest{
		Timeframe: timeframe,
		Symbol:    symbol,
		Origin:    origin,
	})

	c.JSON(http.StatusOK, toResponse(series, origin))
}

// resolveOrigin はクエリパラメータ → 銘柄マスタ → USの順で市場を決定します。
func (h *ChartHandler) resolveOrigin(ctx context.Context, symbol, param string) entity.MarketOrigin {
	switch entity.MarketOrigin(param) {
	case entity.OriginUS, entity.OriginIndia, entity.OriginOther:
		return entity.MarketOrigin(param)
	}

	if h.markets != nil {
		market, err := h.markets.MarketOf(ctx, symbol)
		if err == nil {
			switch market {
			case "India":
				return entity.OriginIndia
			case "US":
				return entity.OriginUS
			}
		} else {
			slog.Debug("market lookup failed, defaulting origin", "symbol", symbol, "error", err)
		}
	}

	return entity.OriginUS
}

// toResponse はドメインの系列をレスポンスDTOに変換します。
func toResponse(s entity.Series, origin entity.MarketOrigin) dto.ChartResponse {
	out := dto.ChartResponse{
		Symbol:    s.Symbol,
		Timeframe: string(s.Timeframe),
		Origin:    string(origin),
		Mode:      string(s.Mode),
	}

	switch s.Mode {
	case entity.ModeIntraday:
		out.Intraday = make([]dto.IntradayPoint, 0, len(s.Intraday))
		for _, p := range s.Intraday {
			out.Intraday = append(out.Intraday, dto.IntradayPoint{Time: p.Time, Price: p.Price, Volume: p.Volume})
		}
	default:
		out.Daily = make([]dto.DailyPoint, 0, len(s.Daily))
		for _, p := range s.Daily {
			out.Daily = append(out.Daily, dto.DailyPoint{Date: p.Date, Price: p.Price, Volume: p.Volume})
		}
	}

	return out
}
