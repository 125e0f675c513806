package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	marketentity "stockoracle_backend/internal/feature/marketdata/domain/entity"
	"stockoracle_backend/internal/feature/prediction/domain/entity"
)

type mockChartGenerator struct {
	series marketentity.Series
	last   marketentity.ChartRequest
}

func (m *mockChartGenerator) Generate(ctx context.Context, req marketentity.ChartRequest) marketentity.Series {
	m.last = req
	return m.series
}

func monthSeries(lastPrice float64) marketentity.Series {
	return marketentity.Series{
		Symbol:    "AAPL",
		Timeframe: marketentity.Timeframe1M,
		Mode:      marketentity.ModeDaily,
		Daily: []marketentity.PricePoint{
			{Date: "2025-09-03", Price: 148.00, Volume: 4_000_000},
			{Date: "2025-09-04", Price: 149.50, Volume: 4_100_000},
			{Date: "2025-09-05", Price: lastPrice, Volume: 4_200_000},
		},
	}
}

func TestPredictionUsecase_Predict(t *testing.T) {
	t.Parallel()

	gen := &mockChartGenerator{series: monthSeries(150.00)}
	uc := NewPredictionUsecase(gen)
	uc.now = func() time.Time { return time.Date(2025, 9, 5, 12, 0, 0, 0, time.UTC) }

	p, err := uc.Predict(context.Background(), "AAPL", marketentity.OriginUS, entity.Horizon1W)
	require.NoError(t, err)

	// 直近1ヶ月の日足からベース価格を取る
	assert.Equal(t, marketentity.Timeframe1M, gen.last.Timeframe)
	assert.Equal(t, 150.00, p.CurrentPrice)

	// AAPLのチェックサムは286: drift = 6/100 - 0.045 = 0.015/日
	// 7日分で 150 * (1 + 0.105) = 165.75
	assert.Equal(t, 165.75, p.PredictedPrice)
	assert.Equal(t, entity.DirectionUp, p.Direction)

	// 信頼度 = 60 + 286%30 - 7 = 69
	assert.Equal(t, 69, p.Confidence)
	assert.Equal(t, entity.Horizon1W, p.Horizon)
}

func TestPredictionUsecase_Predict_Deterministic(t *testing.T) {
	t.Parallel()

	gen := &mockChartGenerator{series: monthSeries(150.00)}
	uc := NewPredictionUsecase(gen)

	p1, err := uc.Predict(context.Background(), "AAPL", marketentity.OriginUS, entity.Horizon1M)
	require.NoError(t, err)
	p2, err := uc.Predict(context.Background(), "AAPL", marketentity.OriginUS, entity.Horizon1M)
	require.NoError(t, err)

	assert.Equal(t, p1.PredictedPrice, p2.PredictedPrice)
	assert.Equal(t, p1.Direction, p2.Direction)
	assert.Equal(t, p1.Confidence, p2.Confidence)
}

func TestPredictionUsecase_Predict_ConfidenceBounds(t *testing.T) {
	t.Parallel()

	gen := &mockChartGenerator{series: monthSeries(150.00)}
	uc := NewPredictionUsecase(gen)

	for _, horizon := range []entity.Horizon{entity.Horizon1D, entity.Horizon1W, entity.Horizon1M} {
		p, err := uc.Predict(context.Background(), "TSLA", marketentity.OriginUS, horizon)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p.Confidence, 50)
		assert.LessOrEqual(t, p.Confidence, 95)
		assert.GreaterOrEqual(t, p.PredictedPrice, 0.1)
	}
}

func TestPredictionUsecase_Predict_EmptySeries(t *testing.T) {
	t.Parallel()

	gen := &mockChartGenerator{series: marketentity.Series{Mode: marketentity.ModeDaily}}
	uc := NewPredictionUsecase(gen)

	_, err := uc.Predict(context.Background(), "AAPL", marketentity.OriginUS, entity.Horizon1W)
	assert.ErrorIs(t, err, ErrNoSeries)
}
