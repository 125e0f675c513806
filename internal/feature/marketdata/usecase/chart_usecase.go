// Package usecase は合成チャートデータ生成のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"stockoracle_backend/internal/feature/marketdata/domain/entity"
)

const (
	// BasePriceUS はUS/その他市場の基準価格です。
	BasePriceUS = 150.0
	// BasePriceIndia はインド市場の基準価格です（ルピー建て想定）。
	BasePriceIndia = 1500.0

	// PriceFloor は生成価格の下限です。0以下の価格が変化率表示に流れ込むのを防ぎます。
	PriceFloor = 0.1

	// DefaultDays / DefaultVolatility は未知のタイムフレームに対するフォールバック設定です。
	DefaultDays       = 30
	DefaultVolatility = 2.0

	dailyVolumeMin  = 1_000_000
	dailyVolumeSpan = 10_000_000

	intradayVolumeMin  = 100_000
	intradayVolumeSpan = 1_000_000
)

// walkParams は日足ウォークの期間とボラティリティの組です。
type walkParams struct {
	days       int
	volatility float64
}

// timeframeParams はタイムフレームごとの固定ルックアップです。
var timeframeParams = map[entity.Timeframe]walkParams{
	entity.Timeframe1W: {days: 7, volatility: 1},
	entity.Timeframe1M: {days: 30, volatility: 2},
	entity.Timeframe3M: {days: 90, volatility: 3},
	entity.Timeframe1Y: {days: 365, volatility: 5},
	entity.Timeframe5Y: {days: 1825, volatility: 10},
}

// chartUsecase は外部データソースなしで表示用の価格・出来高系列を生成します。
// 正常な入力に対してエラーを返すことはありません（全域関数）。
type chartUsecase struct {
	now func() time.Time
}

// NewChartUsecase はchartUsecaseの新しいインスタンスを生成します。
func NewChartUsecase() *chartUsecase {
	return &chartUsecase{now: time.Now}
}

// Generate は指定されたリクエストに対応する系列を生成します。
// タイムフレームが"1D"の場合は15分足、それ以外は日足を返します。
// 未知のタイムフレームは30日・ボラティリティ2の日足設定にフォールバックします。
func (u *chartUsecase) Generate(ctx context.Context, req entity.ChartRequest) entity.Series {
	base := basePrice(req.Origin)

	if req.Timeframe == entity.Timeframe1D {
		return entity.Series{
			Symbol:    req.Symbol,
			Timeframe: req.Timeframe,
			Mode:      entity.ModeIntraday,
			Intraday:  u.generateIntraday(base),
		}
	}

	p, ok := timeframeParams[req.Timeframe]
	if !ok {
		p = walkParams{days: DefaultDays, volatility: DefaultVolatility}
	}

	return entity.Series{
		Symbol:    req.Symbol,
		Timeframe: req.Timeframe,
		Mode:      entity.ModeDaily,
		Daily:     u.generateDaily(p.days, base, p.volatility, req.Symbol),
	}
}

// generateDaily は日足の有界ランダムウォークを生成します。
// 銘柄コードの文字コード和から導出したバイアスでドリフトを決めるため、
// 同じ銘柄は毎回似た形の曲線になります（ノイズ自体はランダム）。
func (u *chartUsecase) generateDaily(days int, base, volatility float64, symbol string) []entity.PricePoint {
	points := make([]entity.PricePoint, 0, days)

	// days日前を起点に1日ずつ進める。土日はスキップ。
	day := u.now().AddDate(0, 0, -days)
	price := base
	bias := float64(symbolChecksum(symbol)%10) / 100

	for i := 0; i < days; i++ {
		day = day.AddDate(0, 0, 1)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		change := (rand.Float64() - 0.48 + bias) * volatility
		price = math.Max(price+change, PriceFloor)

		points = append(points, entity.PricePoint{
			Date:   day.Format("2006-01-02"),
			Price:  round2(price),
			Volume: dailyVolumeMin + rand.Int63n(dailyVolumeSpan),
		})
	}

	return points
}

// generateIntraday は当日の立会時間（09:30〜16:00）の15分足を生成します。
// 現在時刻を超えるティックは含めないため、場中は途中までの系列になります。
func (u *chartUsecase) generateIntraday(base float64) []entity.IntradayPoint {
	points := make([]entity.IntradayPoint, 0, 27)

	now := u.now()
	price := base

	for hour := 9; hour <= 16; hour++ {
		for minute := 0; minute < 60; minute += 15 {
			// 寄り付き前（09:30より前）はスキップ
			if hour == 9 && minute < 30 {
				continue
			}
			// 大引け（16:00）より後のティックは存在しない
			if hour == 16 && minute > 0 {
				break
			}

			tick := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
			if tick.After(now) {
				return points
			}

			change := (rand.Float64() - 0.5) * 0.5
			price = math.Max(price+change, PriceFloor)

			points = append(points, entity.IntradayPoint{
				Time:   fmt.Sprintf("%02d:%02d", hour, minute),
				Price:  round2(price),
				Volume: intradayVolumeMin + rand.Int63n(intradayVolumeSpan),
			})
		}
	}

	return points
}

// basePrice は市場ごとの基準価格を返します。
func basePrice(origin entity.MarketOrigin) float64 {
	if origin == entity.OriginIndia {
		return BasePriceIndia
	}
	return BasePriceUS
}

// symbolChecksum は銘柄コードの文字コード和を返します。
// 金融モデルではなく、銘柄ごとに見た目の異なる曲線を作るための視覚的ヒューリスティックです。
func symbolChecksum(symbol string) int {
	sum := 0
	for _, c := range symbol {
		sum += int(c)
	}
	return sum
}

// round2 は小数点以下2桁に丸めます。
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
