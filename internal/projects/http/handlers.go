package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/auth"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/backend"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/failure"
)

func (h *Handler) list(c *gin.Context) {
	res := h.svc.ListProjects(c.Request.Context())
	c.JSON(res.HTTPStatus(), res)
}

func (h *Handler) create(c *gin.Context) {
	var in backend.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   failure.KindValidation.Message(),
			"code":    failure.KindValidation.String(),
		})
		return
	}

	res := h.svc.SubmitProject(c.Request.Context(), auth.CurrentIdentity(c), in)
	status := res.HTTPStatus()
	if res.Success {
		status = http.StatusCreated
	}
	c.JSON(status, res)
}
