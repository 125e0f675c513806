// Package adapters はtrialフィーチャーの永続化実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"stockoracle_backend/internal/feature/trial/domain/entity"
	"stockoracle_backend/internal/feature/trial/usecase"
)

// TrialModel はtrialsテーブルのGORMモデルです。
// Activeはカウントダウン対象かどうかを表し、ログアウトやプレミアム移行でfalseになります。
type TrialModel struct {
	UserID           uint `gorm:"primaryKey"`
	SecondsRemaining int  `gorm:"not null"`
	ExpiresAt        *time.Time
	Active           bool `gorm:"not null;default:false;index"`
	UpdatedAt        time.Time
}

// TableName はGORMが使用するテーブル名を指定します。
func (TrialModel) TableName() string {
	return "trials"
}

// trialPostgres はGORMを使ったTrialRepositoryの実装です。
type trialPostgres struct {
	db *gorm.DB
}

// インターフェースを満たしているかコンパイル時にチェック
var _ usecase.TrialRepository = (*trialPostgres)(nil)

// NewTrialPostgres はtrialPostgresの新しいインスタンスを生成します。
func NewTrialPostgres(db *gorm.DB) *trialPostgres {
	return &trialPostgres{db: db}
}

// Get はユーザーのトライアル残高を取得します。
func (r *trialPostgres) Get(ctx context.Context, userID uint) (*entity.Trial, error) {
	var model TrialModel
	err := r.db.WithContext(ctx).First(&model, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, usecase.ErrTrialNotFound
	}
	if err != nil {
		return nil, err
	}
	return toEntity(&model), nil
}

// Save はトライアル残高を保存します。Activeフラグは変更しません。
func (r *trialPostgres) Save(ctx context.Context, trial *entity.Trial) error {
	model := TrialModel{
		UserID:           trial.UserID,
		SecondsRemaining: trial.SecondsRemaining,
		ExpiresAt:        trial.ExpiresAt,
		UpdatedAt:        trial.UpdatedAt,
	}
	return r.db.WithContext(ctx).
		Model(&TrialModel{}).
		Where("user_id = ?", model.UserID).
		Assign(map[string]interface{}{
			"seconds_remaining": model.SecondsRemaining,
			"expires_at":        model.ExpiresAt,
			"updated_at":        model.UpdatedAt,
		}).
		FirstOrCreate(&model).Error
}

// Delete はトライアル記録を削除します。
func (r *trialPostgres) Delete(ctx context.Context, userID uint) error {
	result := r.db.WithContext(ctx).Delete(&TrialModel{}, "user_id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrTrialNotFound
	}
	return nil
}

// SetActive はカウントダウン対象フラグを切り替えます。
// 記録が無いユーザーのfalse指定は何もしません。
func (r *trialPostgres) SetActive(ctx context.Context, userID uint, active bool) error {
	return r.db.WithContext(ctx).
		Model(&TrialModel{}).
		Where("user_id = ?", userID).
		Update("active", active).Error
}

// ListActive はカウントダウン対象のユーザーIDを返します。
func (r *trialPostgres) ListActive(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&TrialModel{}).
		Where("active = ?", true).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func toEntity(model *TrialModel) *entity.Trial {
	return &entity.Trial{
		UserID:           model.UserID,
		SecondsRemaining: model.SecondsRemaining,
		ExpiresAt:        model.ExpiresAt,
		UpdatedAt:        model.UpdatedAt,
	}
}
