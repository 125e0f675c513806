// Package dto はpredictionフィーチャーのAPIレスポンス型を定義します。
package dto

import "time"

// PredictionRes は銘柄予測のレスポンスです。
type PredictionRes struct {
	Symbol         string    `json:"symbol"`
	CurrentPrice   float64   `json:"current_price"`
	PredictedPrice float64   `json:"predicted_price"`
	Confidence     int       `json:"confidence"`
	Direction      string    `json:"direction"`
	Horizon        string    `json:"horizon"`
	GeneratedAt    time.Time `json:"generated_at"`
}
