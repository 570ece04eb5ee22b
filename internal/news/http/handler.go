package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/backend"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/news"
)

type Service interface {
	NewsFeed(ctx context.Context) backend.Result[[]news.Headline]
}

type Handler struct {
	svc Service
}

func New(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/feed", h.feed)
}

func (h *Handler) feed(c *gin.Context) {
	res := h.svc.NewsFeed(c.Request.Context())
	c.JSON(res.HTTPStatus(), res)
}
