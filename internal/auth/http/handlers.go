package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/auth"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/backend"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/failure"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/session"
)

func badBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   failure.KindValidation.Message(),
		"code":    failure.KindValidation.String(),
	})
}

func (h *Handler) register(c *gin.Context) {
	var in backend.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c)
		return
	}
	res := h.svc.Register(c.Request.Context(), session.ID(c), in)
	c.JSON(res.HTTPStatus(), res)
}

func (h *Handler) login(c *gin.Context) {
	var in backend.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c)
		return
	}
	res := h.svc.Login(c.Request.Context(), session.ID(c), in)
	c.JSON(res.HTTPStatus(), res)
}

func (h *Handler) anonymous(c *gin.Context) {
	res := h.svc.SignInAnonymously(c.Request.Context(), session.ID(c))
	c.JSON(res.HTTPStatus(), res)
}

func (h *Handler) logout(c *gin.Context) {
	res := h.svc.Logout(c.Request.Context(), session.ID(c))
	c.JSON(res.HTTPStatus(), res)
}

func (h *Handler) resetPassword(c *gin.Context) {
	var in struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c)
		return
	}
	res := h.svc.ResetPassword(c.Request.Context(), in.Email)
	c.JSON(res.HTTPStatus(), res)
}

// currentSession reports the resolved session state. A verified bearer
// token counts as authenticated.
func (h *Handler) currentSession(c *gin.Context) {
	snap := session.FromContext(c).Snapshot()
	if id := auth.CurrentIdentity(c); id != nil {
		snap.State = session.StateAuthenticated
		snap.Identity = id
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": snap})
}

func (h *Handler) updateProfile(c *gin.Context) {
	var in backend.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c)
		return
	}
	res := h.svc.UpdateProfile(c.Request.Context(), session.ID(c), in)
	c.JSON(res.HTTPStatus(), res)
}
