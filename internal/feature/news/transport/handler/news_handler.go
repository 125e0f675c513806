// Package handler はnewsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockoracle_backend/internal/api"
	"stockoracle_backend/internal/feature/news/domain/entity"
	"stockoracle_backend/internal/feature/news/transport/http/dto"
)

// NewsUsecase はニュース記事に関するユースケースのインターフェースです。
type NewsUsecase interface {
	LatestNews(ctx context.Context) ([]entity.NewsItem, error)
}

// NewsHandler は市場ニュースのHTTPリクエストを処理します。
type NewsHandler struct {
	uc NewsUsecase
}

// NewNewsHandler は新しい NewsHandler を作成します。
func NewNewsHandler(uc NewsUsecase) *NewsHandler {
	return &NewsHandler{uc: uc}
}

// List はGET /newsに対応し、最新のニュース記事を返します。
func (h *NewsHandler) List(c *gin.Context) {
	items, err := h.uc.LatestNews(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load news"})
		return
	}

	out := make([]dto.NewsItem, 0, len(items))
	for _, item := range items {
		out = append(out, dto.NewsItem{
			ID:             item.ID,
			Title:          item.Title,
			Source:         item.Source,
			Summary:        item.Summary,
			PublishedAt:    item.PublishedAt,
			ImageURL:       item.ImageURL,
			URL:            item.URL,
			Sentiment:      string(item.Sentiment),
			RelatedSymbols: item.RelatedSymbols,
		})
	}
	c.JSON(http.StatusOK, out)
}
