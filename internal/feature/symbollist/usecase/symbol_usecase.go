// Package usecase implements the business logic for symbol-related operations.
package usecase

import (
	"context"
	"errors"

	"stockoracle_backend/internal/feature/symbollist/domain/entity"
)

// ErrSymbolNotFound is returned when a symbol code is not in the master list.
var ErrSymbolNotFound = errors.New("symbol not found")

// SymbolRepository abstracts the persistence layer for symbol (stock ticker) data.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	ListActive(ctx context.Context) ([]entity.Symbol, error)
	FindByCode(ctx context.Context, code string) (*entity.Symbol, error)
}

// SymbolUsecase provides business logic for symbol operations.
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListActiveSymbols returns all active symbols from the repository.
func (u *SymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListActive(ctx)
}

// MarketOf は銘柄コードの所属市場（"US"/"India"）を返します。
// マスターに無いコードはErrSymbolNotFoundを返します。
func (u *SymbolUsecase) MarketOf(ctx context.Context, code string) (string, error) {
	symbol, err := u.repo.FindByCode(ctx, code)
	if err != nil {
		return "", err
	}
	return symbol.Market, nil
}
