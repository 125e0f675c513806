package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	trialadapters "stockoracle_backend/internal/feature/trial/adapters"
	"stockoracle_backend/internal/feature/trial/usecase"
	"stockoracle_backend/internal/platform/trialstore"
)

// NewTrialRepository creates a TrialRepository implementation.
// 毎秒の減算書き込みを捌くため、Redisがあれば優先します。
func NewTrialRepository(rdb *redis.Client, db *gorm.DB) usecase.TrialRepository {
	if rdb != nil {
		return trialstore.NewTrialRedis(rdb, "trial")
	}
	return trialadapters.NewTrialPostgres(db)
}
