// Package cache はリポジトリとジェネレーターのキャッシュ実装を提供します。
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"stockoracle_backend/internal/feature/marketdata/domain/entity"
)

// ChartGenerator は装飾対象のチャートジェネレーターです。
type ChartGenerator interface {
	Generate(ctx context.Context, req entity.ChartRequest) entity.Series
}

// CachingChartGenerator はChartGeneratorをRedisキャッシュで装飾します。
// シリーズの軸は日付が変わるか15分境界を越えるまで安定なため、
// 同一リクエストの再生成をキャッシュで省きます。
type CachingChartGenerator struct {
	inner     ChartGenerator
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
	now       func() time.Time
}

// NewCachingChartGenerator はCachingChartGeneratorの新しいインスタンスを生成します。
// ttlが0以下の場合は5分、namespaceが空の場合は"charts"を使用します。
func NewCachingChartGenerator(rdb *redis.Client, ttl time.Duration, inner ChartGenerator, namespace string) *CachingChartGenerator {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "charts"
	}
	return &CachingChartGenerator{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
		now:       time.Now,
	}
}

// Generate はキャッシュを確認し、ミス時は内部ジェネレーターにフォールバックします。
func (c *CachingChartGenerator) Generate(ctx context.Context, req entity.ChartRequest) entity.Series {
	// Redis未設定ならキャッシュをバイパス
	if c.rdb == nil {
		return c.inner.Generate(ctx, req)
	}

	key := c.cacheKey(req)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Series
		if err := json.Unmarshal(b, &out); err == nil {
			return out
		}
		// 壊れたキャッシュは破棄
		_ = c.rdb.Del(ctx, key).Err()
	}

	out := c.inner.Generate(ctx, req)

	// ベストエフォートで保存
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttlFor(req.Timeframe)).Err()
	}

	return out
}

// ttlFor はタイムフレームに応じたTTLを返します。
// 日中足は15分ごとに軸が伸びるため、次の15分境界までとします。
func (c *CachingChartGenerator) ttlFor(tf entity.Timeframe) time.Duration {
	if tf == entity.Timeframe1D {
		return timeUntilNextQuarterHour(c.now())
	}
	return c.ttl
}

func (c *CachingChartGenerator) cacheKey(req entity.ChartRequest) string {
	return fmt.Sprintf("%s:%s:%s:%s",
		c.namespace,
		safe(req.Symbol),
		safe(string(req.Timeframe)),
		safe(string(req.Origin)),
	)
}

// safe はRedisキーに使えない文字をエスケープします。
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
