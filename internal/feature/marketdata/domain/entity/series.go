// Package entity defines the domain models for the marketdata feature.
package entity

// Timeframe is one of the six chart windows supported by the generator.
type Timeframe string

const (
	Timeframe1D Timeframe = "1D"
	Timeframe1W Timeframe = "1W"
	Timeframe1M Timeframe = "1M"
	Timeframe3M Timeframe = "3M"
	Timeframe1Y Timeframe = "1Y"
	Timeframe5Y Timeframe = "5Y"
)

// MarketOrigin is the synthetic market a symbol is presumed to belong to.
// It only affects the base price scale of the generated walk.
type MarketOrigin string

const (
	OriginUS    MarketOrigin = "US"
	OriginIndia MarketOrigin = "India"
	OriginOther MarketOrigin = "Other"
)

// SeriesMode discriminates the two shapes a generated series can take.
type SeriesMode string

const (
	ModeDaily    SeriesMode = "daily"
	ModeIntraday SeriesMode = "intraday"
)

// PricePoint は日足の1データ点です。週末はスキップされます。
type PricePoint struct {
	Date   string  // 日付 ("2006-01-02")
	Price  float64 // 終値（小数点以下2桁）
	Volume int64   // 出来高
}

// IntradayPoint は15分足の1データ点です。
type IntradayPoint struct {
	Time   string  // 時刻 ("HH:MM"、09:30〜16:00)
	Price  float64 // 価格（小数点以下2桁）
	Volume int64   // 出来高
}

// ChartRequest is the pure input for one generation: no persisted identity.
type ChartRequest struct {
	Timeframe Timeframe
	Symbol    string
	Origin    MarketOrigin
}

// Series is a tagged union of a daily or intraday price series.
// Exactly one of Daily / Intraday is populated, discriminated by Mode.
type Series struct {
	Symbol    string
	Timeframe Timeframe
	Mode      SeriesMode
	Daily     []PricePoint
	Intraday  []IntradayPoint
}

// Len returns the number of points in whichever branch is populated.
func (s Series) Len() int {
	if s.Mode == ModeIntraday {
		return len(s.Intraday)
	}
	return len(s.Daily)
}
