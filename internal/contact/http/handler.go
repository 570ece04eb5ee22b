package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/backend"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/failure"
)

type Service interface {
	SendContactMessage(ctx context.Context, in backend.ContactInput) backend.Result[struct{}]
}

type Handler struct {
	svc Service
}

func New(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.send)
}

func (h *Handler) send(c *gin.Context) {
	var in backend.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   failure.KindValidation.Message(),
			"code":    failure.KindValidation.String(),
		})
		return
	}

	res := h.svc.SendContactMessage(c.Request.Context(), in)
	status := res.HTTPStatus()
	if res.Success {
		status = http.StatusCreated
	}
	c.JSON(status, res)
}
