// Package usecase implements the business logic for the prediction feature.
package usecase

import (
	"context"
	"errors"
	"math"
	"time"

	marketentity "stockoracle_backend/internal/feature/marketdata/domain/entity"
	"stockoracle_backend/internal/feature/prediction/domain/entity"
)

// ErrNoSeries is returned when no price series could be generated for a symbol.
var ErrNoSeries = errors.New("no price series for symbol")

// ChartGenerator はベースとなる価格シリーズの生成元を抽象化します。
type ChartGenerator interface {
	Generate(ctx context.Context, req marketentity.ChartRequest) marketentity.Series
}

// predictionUsecase は直近1ヶ月の合成シリーズから予測値を導出します。
// 銘柄ごとのバイアスをドリフトとして将来価格に外挿するだけの決定的な計算で、
// 同じ銘柄・同じホライゾンなら常に同じ方向を向きます。
type predictionUsecase struct {
	charts ChartGenerator
	now    func() time.Time
}

// NewPredictionUsecase はpredictionUsecaseの新しいインスタンスを生成します。
func NewPredictionUsecase(charts ChartGenerator) *predictionUsecase {
	return &predictionUsecase{charts: charts, now: time.Now}
}

// Predict は銘柄の予測を生成します。
func (u *predictionUsecase) Predict(ctx context.Context, symbol string, origin marketentity.MarketOrigin, horizon entity.Horizon) (*entity.Prediction, error) {
	series := u.charts.Generate(ctx, marketentity.ChartRequest{
		Timeframe: marketentity.Timeframe1M,
		Symbol:    symbol,
		Origin:    origin,
	})
	if len(series.Daily) == 0 {
		return nil, ErrNoSeries
	}

	current := series.Daily[len(series.Daily)-1].Price

	// 銘柄固有のバイアスを1日あたりのドリフトに変換して外挿する
	checksum := symbolChecksum(symbol)
	drift := float64(checksum%10)/100 - 0.045
	predicted := current * (1 + drift*float64(horizon.Days()))
	predicted = math.Max(0.1, math.Round(predicted*100)/100)

	direction := entity.DirectionFlat
	switch {
	case predicted > current:
		direction = entity.DirectionUp
	case predicted < current:
		direction = entity.DirectionDown
	}

	// 銘柄で決まる基礎信頼度から、ホライゾンが長いほど割り引く
	confidence := 60 + checksum%30 - horizon.Days()
	if confidence < 50 {
		confidence = 50
	}
	if confidence > 95 {
		confidence = 95
	}

	return &entity.Prediction{
		Symbol:         symbol,
		CurrentPrice:   current,
		PredictedPrice: predicted,
		Confidence:     confidence,
		Direction:      direction,
		Horizon:        horizon,
		GeneratedAt:    u.now(),
	}, nil
}

// symbolChecksum は銘柄コードの文字コード合計を返します。
func symbolChecksum(symbol string) int {
	sum := 0
	for _, r := range symbol {
		sum += int(r)
	}
	return sum
}
