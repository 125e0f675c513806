// Package adapters はnewsフィーチャーの記事ソース実装を提供します。
package adapters

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"stockoracle_backend/internal/feature/news/domain/entity"
	"stockoracle_backend/internal/feature/news/usecase"
)

// story は配信する記事の雛形です。公開時刻は取得時点からの相対値で持ちます。
type story struct {
	title          string
	source         string
	summary        string
	ageHours       int
	imageURL       string
	url            string
	sentiment      entity.Sentiment
	relatedSymbols []string
}

var stories = []story{
	{
		title:          "Apple Reports Record Q4 Earnings, Exceeds Expectations",
		source:         "Financial Times",
		summary:        "Apple Inc. reported record fourth-quarter earnings on Thursday, exceeding Wall Street expectations with strong iPhone and services sales, despite challenges in the Chinese market.",
		ageHours:       2,
		imageURL:       "https://images.unsplash.com/photo-1588702547919-26089e690ecc?q=80&w=2070&auto=format&fit=crop",
		url:            "https://example.com/news/1",
		sentiment:      entity.SentimentPositive,
		relatedSymbols: []string{"AAPL", "MSFT", "GOOGL"},
	},
	{
		title:          "Tesla Announces Plans for New Gigafactory in Mexico",
		source:         "Reuters",
		summary:        "Tesla Inc. has announced plans to build a new Gigafactory in Mexico, in a move that could significantly expand the electric car maker's production capacity.",
		ageHours:       4,
		imageURL:       "https://images.unsplash.com/photo-1560958089-b8a1929cea89?q=80&w=2071&auto=format&fit=crop",
		url:            "https://example.com/news/2",
		sentiment:      entity.SentimentPositive,
		relatedSymbols: []string{"TSLA", "F", "GM"},
	},
	{
		title:          "Federal Reserve Signals Potential Interest Rate Hike",
		source:         "Bloomberg",
		summary:        "The Federal Reserve has signaled a potential interest rate hike in the coming months, as inflation concerns persist despite signs of economic cooling.",
		ageHours:       8,
		imageURL:       "https://images.unsplash.com/photo-1582281171984-45e11d8efee9?q=80&w=2070&auto=format&fit=crop",
		url:            "https://example.com/news/3",
		sentiment:      entity.SentimentNegative,
		relatedSymbols: []string{"JPM", "GS", "BAC"},
	},
	{
		title:          "Nvidia Stock Surges on AI Demand Forecasts",
		source:         "CNBC",
		summary:        "Nvidia shares jumped 8% today after the company released updated forecasts showing stronger-than-expected demand for its AI chips from data centers and cloud providers.",
		ageHours:       3,
		imageURL:       "https://images.unsplash.com/photo-1543286386-2e659306cd6c?q=80&w=2070&auto=format&fit=crop",
		url:            "https://example.com/news/4",
		sentiment:      entity.SentimentPositive,
		relatedSymbols: []string{"NVDA", "AMD", "INTC"},
	},
	{
		title:          "Oil Prices Fall After OPEC+ Meeting Delay",
		source:         "Wall Street Journal",
		summary:        "Global oil prices dropped sharply following the delay of a key OPEC+ meeting where production cuts were expected to be discussed, raising concerns about oversupply in the market.",
		ageHours:       5,
		imageURL:       "https://images.unsplash.com/photo-1615767797820-5088a2536f90?q=80&w=2070&auto=format&fit=crop",
		url:            "https://example.com/news/5",
		sentiment:      entity.SentimentNegative,
		relatedSymbols: []string{"XOM", "CVX", "BP"},
	},
}

// newsFixture は固定の記事セットを配信するNewsRepositoryの実装です。
// 実ニュースフィードの接続は行わず、公開時刻だけを取得時点から逆算します。
type newsFixture struct {
	ids []string
	now func() time.Time
}

var _ usecase.NewsRepository = (*newsFixture)(nil)

// NewNewsFixture はnewsFixtureの新しいインスタンスを生成します。
// 記事IDはプロセス起動時に一度だけ発行され、以降は安定します。
func NewNewsFixture() *newsFixture {
	ids := make([]string, len(stories))
	for i := range stories {
		ids[i] = uuid.NewString()
	}
	return &newsFixture{ids: ids, now: time.Now}
}

// Latest は新しい順に記事を返します。
func (f *newsFixture) Latest(ctx context.Context) ([]entity.NewsItem, error) {
	now := f.now()

	items := make([]entity.NewsItem, len(stories))
	for i, s := range stories {
		items[i] = entity.NewsItem{
			ID:             f.ids[i],
			Title:          s.title,
			Source:         s.source,
			Summary:        s.summary,
			PublishedAt:    now.Add(-time.Duration(s.ageHours) * time.Hour),
			ImageURL:       s.imageURL,
			URL:            s.url,
			Sentiment:      s.sentiment,
			RelatedSymbols: s.relatedSymbols,
		}
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
	return items, nil
}
