// Package entity はnewsフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// Sentiment は記事の論調です。
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// NewsItem は市場ニュースの1記事です。
type NewsItem struct {
	ID             string
	Title          string
	Source         string
	Summary        string
	PublishedAt    time.Time
	ImageURL       string
	URL            string
	Sentiment      Sentiment
	RelatedSymbols []string
}
