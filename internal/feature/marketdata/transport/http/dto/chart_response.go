// Package dto はmarketdataフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// DailyPoint は日足1点のレスポンスDTOです。
type DailyPoint struct {
	Date   string  `json:"date"`   // 日付
	Price  float64 `json:"price"`  // 価格
	Volume int64   `json:"volume"` // 出来高
}

// IntradayPoint は15分足1点のレスポンスDTOです。
type IntradayPoint struct {
	Time   string  `json:"time"`   // 時刻
	Price  float64 `json:"price"`  // 価格
	Volume int64   `json:"volume"` // 出来高
}

// ChartResponse はチャート系列のレスポンスDTOです。
// modeで判別し、daily / intraday のどちらか一方のみが設定されます。
type ChartResponse struct {
	Symbol    string          `json:"symbol"`
	Timeframe string          `json:"timeframe"`
	Origin    string          `json:"origin"`
	Mode      string          `json:"mode"`
	Daily     []DailyPoint    `json:"daily,omitempty"`
	Intraday  []IntradayPoint `json:"intraday,omitempty"`
}
