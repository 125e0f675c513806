// Package adapters はsymbollistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stockoracle_backend/internal/feature/symbollist/domain/entity"
	"stockoracle_backend/internal/feature/symbollist/usecase"
)

// symbolPostgres はSymbolRepositoryインターフェースのPostgreSQL実装です。
type symbolPostgres struct {
	db *gorm.DB
}

var _ usecase.SymbolRepository = (*symbolPostgres)(nil)

// NewSymbolRepository は指定されたDB接続でsymbolPostgresリポジトリの新しいインスタンスを生成します。
func NewSymbolRepository(db *gorm.DB) *symbolPostgres {
	return &symbolPostgres{db: db}
}

// ListActive はsort_key順にすべてのアクティブな銘柄を返します。
func (r *symbolPostgres) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	var symbols []entity.Symbol
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Find(&symbols).Error; err != nil {
		return nil, err
	}
	return symbols, nil
}

// FindByCode は銘柄をコードで取得します。
func (r *symbolPostgres) FindByCode(ctx context.Context, code string) (*entity.Symbol, error) {
	var symbol entity.Symbol
	err := r.db.WithContext(ctx).First(&symbol, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, usecase.ErrSymbolNotFound
	}
	if err != nil {
		return nil, err
	}
	return &symbol, nil
}
