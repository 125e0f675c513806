// Package entity はpredictionフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// Direction は予測の方向です。
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

// Horizon は予測の対象期間です。
type Horizon string

const (
	Horizon1D Horizon = "1D"
	Horizon1W Horizon = "1W"
	Horizon1M Horizon = "1M"
)

// Days はホライゾンの日数を返します。未知の値は1週間扱いです。
func (h Horizon) Days() int {
	switch h {
	case Horizon1D:
		return 1
	case Horizon1M:
		return 30
	default:
		return 7
	}
}

// Prediction は1銘柄の価格予測です。
// 合成シリーズから導出されるデモ用の値で、実際の市場予測ではありません。
type Prediction struct {
	Symbol         string
	CurrentPrice   float64
	PredictedPrice float64
	Confidence     int // 0〜100
	Direction      Direction
	Horizon        Horizon
	GeneratedAt    time.Time
}
