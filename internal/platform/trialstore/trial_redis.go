// Package trialstore はRedisベースのトライアル残高ストアを提供します。
package trialstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"stockoracle_backend/internal/feature/trial/domain/entity"
	"stockoracle_backend/internal/feature/trial/usecase"
)

// TrialRedis はRedisを使ったusecase.TrialRepositoryの実装です。
// 残高はユーザーごとのJSON値、カウントダウン対象の一覧はSetで管理します。
// 残高はTTLなしで保持されます（ログアウト後も再開できる必要があるため）。
type TrialRedis struct {
	client *redis.Client
	prefix string
}

var _ usecase.TrialRepository = (*TrialRedis)(nil)

// NewTrialRedis はTrialRedisの新しいインスタンスを生成します。
// prefixが空の場合は"trial"を使用します。
func NewTrialRedis(client *redis.Client, prefix string) *TrialRedis {
	if prefix == "" {
		prefix = "trial"
	}
	return &TrialRedis{client: client, prefix: prefix}
}

func (r *TrialRedis) trialKey(userID uint) string {
	return fmt.Sprintf("%s:%d", r.prefix, userID)
}

func (r *TrialRedis) activeKey() string {
	return r.prefix + ":active"
}

// Get はユーザーのトライアル残高を取得します。
// 値が壊れている場合はキーを破棄してErrTrialNotFoundを返します。
func (r *TrialRedis) Get(ctx context.Context, userID uint) (*entity.Trial, error) {
	data, err := r.client.Get(ctx, r.trialKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, usecase.ErrTrialNotFound
	}
	if err != nil {
		return nil, err
	}

	var trial entity.Trial
	if err := json.Unmarshal(data, &trial); err != nil {
		_ = r.client.Del(ctx, r.trialKey(userID)).Err()
		return nil, usecase.ErrTrialNotFound
	}
	return &trial, nil
}

// Save はトライアル残高を保存します。
func (r *TrialRedis) Save(ctx context.Context, trial *entity.Trial) error {
	data, err := json.Marshal(trial)
	if err != nil {
		return fmt.Errorf("failed to marshal trial: %w", err)
	}
	return r.client.Set(ctx, r.trialKey(trial.UserID), data, 0).Err()
}

// Delete はトライアル記録を削除します。
func (r *TrialRedis) Delete(ctx context.Context, userID uint) error {
	deleted, err := r.client.Del(ctx, r.trialKey(userID)).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return usecase.ErrTrialNotFound
	}
	return nil
}

// SetActive はカウントダウン対象Setへの登録/解除を行います。
func (r *TrialRedis) SetActive(ctx context.Context, userID uint, active bool) error {
	member := strconv.FormatUint(uint64(userID), 10)
	if active {
		return r.client.SAdd(ctx, r.activeKey(), member).Err()
	}
	return r.client.SRem(ctx, r.activeKey(), member).Err()
}

// ListActive はカウントダウン対象のユーザーIDを返します。
// 解釈できないメンバーはSetから掃除します。
func (r *TrialRedis) ListActive(ctx context.Context) ([]uint, error) {
	members, err := r.client.SMembers(ctx, r.activeKey()).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseUint(m, 10, 64)
		if err != nil {
			r.client.SRem(ctx, r.activeKey(), m)
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
