// Package dto はnewsフィーチャーのAPIレスポンス型を定義します。
package dto

import "time"

// NewsItem はニュース記事のレスポンスです。
type NewsItem struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Source         string    `json:"source"`
	Summary        string    `json:"summary"`
	PublishedAt    time.Time `json:"published_at"`
	ImageURL       string    `json:"image_url"`
	URL            string    `json:"url"`
	Sentiment      string    `json:"sentiment"`
	RelatedSymbols []string  `json:"related_symbols"`
}
