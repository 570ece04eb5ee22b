package http

import (
	"context"

	"github.com/gin-gonic/gin"

	authdomain "github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/backend"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/media/domain"
)

type Service interface {
	ListMedia(ctx context.Context) backend.Result[[]domain.Asset]
	UploadMedia(ctx context.Context, who *authdomain.Identity, in backend.UploadInput, onProgress func(int)) backend.Result[domain.Asset]
	MaxUploadBytes() int64
}

type Handler struct {
	svc Service
}

func New(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("", h.upload)
}
