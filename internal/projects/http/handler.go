package http

import (
	"context"

	"github.com/gin-gonic/gin"

	authdomain "github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/backend"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/projects/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/subscription"
)

type Service interface {
	ListProjects(ctx context.Context) backend.Result[[]domain.Project]
	SubmitProject(ctx context.Context, who *authdomain.Identity, in backend.ProjectInput) backend.Result[domain.Project]
	WatchProjects(ctx context.Context) *subscription.Subscription[[]domain.Project]
	ProjectStreamError(ctx context.Context, err error) backend.Result[struct{}]
}

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc Service
}

func New(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Register attaches project routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("", h.create)
	rg.GET("/stream", h.Stream)
}
