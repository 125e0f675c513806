package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"stockoracle_backend/internal/feature/symbollist/domain/entity"
	"stockoracle_backend/internal/feature/symbollist/usecase"
)

// mockSymbolRepository はSymbolRepositoryインターフェースのモック実装です。
type mockSymbolRepository struct {
	ListActiveFunc func(ctx context.Context) ([]entity.Symbol, error)
	FindByCodeFunc func(ctx context.Context, code string) (*entity.Symbol, error)
}

func (m *mockSymbolRepository) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockSymbolRepository) FindByCode(ctx context.Context, code string) (*entity.Symbol, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, usecase.ErrSymbolNotFound
}

// TestSymbolUsecase_ListActiveSymbols はListActiveSymbolsメソッドの各種シナリオを検証します。
func TestSymbolUsecase_ListActiveSymbols(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		mockListActive  func(ctx context.Context) ([]entity.Symbol, error)
		expectedSymbols []entity.Symbol
		wantErr         bool
	}{
		{
			name: "success: returns list of active symbols",
			mockListActive: func(ctx context.Context) ([]entity.Symbol, error) {
				return []entity.Symbol{
					{ID: 1, Code: "AAPL", Name: "Apple Inc.", Market: "US", IsActive: true, SortKey: 1},
					{ID: 2, Code: "RELIANCE", Name: "Reliance Industries", Market: "India", IsActive: true, SortKey: 31},
				}, nil
			},
			expectedSymbols: []entity.Symbol{
				{ID: 1, Code: "AAPL", Name: "Apple Inc.", Market: "US", IsActive: true, SortKey: 1},
				{ID: 2, Code: "RELIANCE", Name: "Reliance Industries", Market: "India", IsActive: true, SortKey: 31},
			},
		},
		{
			name: "success: returns empty list when no active symbols",
			mockListActive: func(ctx context.Context) ([]entity.Symbol, error) {
				return []entity.Symbol{}, nil
			},
			expectedSymbols: []entity.Symbol{},
		},
		{
			name: "failure: repository returns error",
			mockListActive: func(ctx context.Context) ([]entity.Symbol, error) {
				return nil, errors.New("database connection failed")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := usecase.NewSymbolUsecase(&mockSymbolRepository{ListActiveFunc: tt.mockListActive})

			symbols, err := uc.ListActiveSymbols(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, symbols)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedSymbols, symbols)
			}
		})
	}
}

// TestSymbolUsecase_MarketOf は銘柄コードから所属市場が解決されることを検証します。
func TestSymbolUsecase_MarketOf(t *testing.T) {
	t.Parallel()

	uc := usecase.NewSymbolUsecase(&mockSymbolRepository{
		FindByCodeFunc: func(ctx context.Context, code string) (*entity.Symbol, error) {
			switch code {
			case "AAPL":
				return &entity.Symbol{Code: "AAPL", Market: "US"}, nil
			case "TCS":
				return &entity.Symbol{Code: "TCS", Market: "India"}, nil
			default:
				return nil, usecase.ErrSymbolNotFound
			}
		},
	})

	market, err := uc.MarketOf(context.Background(), "AAPL")
	assert.NoError(t, err)
	assert.Equal(t, "US", market)

	market, err = uc.MarketOf(context.Background(), "TCS")
	assert.NoError(t, err)
	assert.Equal(t, "India", market)

	_, err = uc.MarketOf(context.Background(), "UNKNOWN")
	assert.ErrorIs(t, err, usecase.ErrSymbolNotFound)
}
