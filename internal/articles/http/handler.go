package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/articles/domain"
	authdomain "github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/backend"
)

type Service interface {
	ListArticles(ctx context.Context) backend.Result[[]domain.Article]
	GetArticleByID(ctx context.Context, id string) backend.Result[domain.Article]
	CreateArticle(ctx context.Context, who *authdomain.Identity, in backend.ArticleInput) backend.Result[domain.Article]
}

type Handler struct {
	svc Service
}

func New(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.POST("", h.create)
}
