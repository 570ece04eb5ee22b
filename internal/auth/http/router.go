package http

import "github.com/gin-gonic/gin"

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/register", h.register)
	rg.POST("/login", h.login)
	rg.POST("/anonymous", h.anonymous)
	rg.POST("/logout", h.logout)
	rg.POST("/reset-password", h.resetPassword)
	rg.GET("/session", h.currentSession)
	rg.PUT("/profile", h.updateProfile)
}
