package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockoracle_backend/internal/feature/news/domain/entity"
)

type mockNewsUsecase struct {
	LatestNewsFunc func(ctx context.Context) ([]entity.NewsItem, error)
}

func (m *mockNewsUsecase) LatestNews(ctx context.Context) ([]entity.NewsItem, error) {
	if m.LatestNewsFunc != nil {
		return m.LatestNewsFunc(ctx)
	}
	return nil, nil
}

func TestNewsHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns articles", func(t *testing.T) {
		published := time.Date(2025, 9, 5, 10, 0, 0, 0, time.UTC)
		h := NewNewsHandler(&mockNewsUsecase{
			LatestNewsFunc: func(ctx context.Context) ([]entity.NewsItem, error) {
				return []entity.NewsItem{
					{
						ID:             "id-1",
						Title:          "Nvidia Stock Surges on AI Demand Forecasts",
						Source:         "CNBC",
						Summary:        "Nvidia shares jumped 8% today.",
						PublishedAt:    published,
						Sentiment:      entity.SentimentPositive,
						RelatedSymbols: []string{"NVDA", "AMD"},
					},
				}, nil
			},
		})

		router := gin.New()
		router.GET("/news", h.List)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/news", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res []gin.H
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Len(t, res, 1)
		assert.Equal(t, "id-1", res[0]["id"])
		assert.Equal(t, "positive", res[0]["sentiment"])
		assert.Equal(t, []interface{}{"NVDA", "AMD"}, res[0]["related_symbols"])
	})

	t.Run("empty feed returns empty array", func(t *testing.T) {
		h := NewNewsHandler(&mockNewsUsecase{})

		router := gin.New()
		router.GET("/news", h.List)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/news", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("usecase error returns 500", func(t *testing.T) {
		h := NewNewsHandler(&mockNewsUsecase{
			LatestNewsFunc: func(ctx context.Context) ([]entity.NewsItem, error) {
				return nil, errors.New("feed unavailable")
			},
		})

		router := gin.New()
		router.GET("/news", h.List)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/news", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
