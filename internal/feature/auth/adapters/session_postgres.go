package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"stockoracle_backend/internal/feature/auth/domain/entity"
	"stockoracle_backend/internal/feature/auth/usecase"
)

// sessionPostgres はSessionRepositoryインターフェースのGORM実装です。
// Redisが使えない環境向けのフォールバックストアで、期限切れ行は
// 定期メンテナンスジョブのDeleteExpiredで回収します。
type sessionPostgres struct {
	db *gorm.DB
}

var _ usecase.SessionRepository = (*sessionPostgres)(nil)

// NewSessionPostgres は指定されたgorm.DB接続でsessionPostgresの新しいインスタンスを生成します。
func NewSessionPostgres(db *gorm.DB) *sessionPostgres {
	return &sessionPostgres{db: db}
}

// Create は新しいセッションを保存します。
func (r *sessionPostgres) Create(ctx context.Context, session *entity.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// FindByID はセッションIDで1件取得します。
func (r *sessionPostgres) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	var s entity.Session
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindByUserID はユーザーの有効なセッションを作成順で返します。
func (r *sessionPostgres) FindByUserID(ctx context.Context, userID uint) ([]*entity.Session, error) {
	var sessions []*entity.Session
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND revoked_at IS NULL AND expires_at > ?", userID, time.Now()).
		Order("created_at ASC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// Revoke はセッションを失効済みにします。
func (r *sessionPostgres) Revoke(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Session{}).
		Where("id = ?", id).
		Update("revoked_at", time.Now())

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrSessionNotFound
	}
	return nil
}

// RevokeAllByUserID はユーザーの全セッションを失効させます。
func (r *sessionPostgres) RevokeAllByUserID(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Model(&entity.Session{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", time.Now()).Error
}

// CountByUserID はユーザーの有効なセッション数を返します。
func (r *sessionPostgres) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Session{}).
		Where("user_id = ? AND revoked_at IS NULL AND expires_at > ?", userID, time.Now()).
		Count(&count).Error
	return count, err
}

// DeleteOldestByUserID はユーザーの最も古い有効セッションを1件削除します。
func (r *sessionPostgres) DeleteOldestByUserID(ctx context.Context, userID uint) error {
	var oldest entity.Session
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND revoked_at IS NULL AND expires_at > ?", userID, time.Now()).
		Order("created_at ASC").
		First(&oldest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	return r.db.WithContext(ctx).Delete(&entity.Session{}, "id = ?", oldest.ID).Error
}

// DeleteExpired は期限切れセッションを削除し、削除件数を返します。
func (r *sessionPostgres) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&entity.Session{})
	return result.RowsAffected, result.Error
}
