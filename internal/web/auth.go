package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/backend"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/failure"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/session"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/web/content"
)

const (
	minPasswordLen = 6

	modeSignIn   = "signin"
	modeRegister = "register"

	msgEnterName      = "Please enter your name"
	msgEnterEmail     = "Please enter your email address"
	msgResetEmailSent = "Password reset email sent. Please check your inbox."
)

// authData drives the single auth form in either mode.
type authData struct {
	Mode       string
	Next       string
	Membership string
	Name       string
	Email      string
}

func (d authData) Registering() bool {
	return d.Mode == modeRegister
}

func (h *Handler) loginForm(c *gin.Context) {
	h.renderAuth(c, http.StatusOK, authData{Mode: modeSignIn, Next: c.Query("next")}, "", "")
}

func (h *Handler) registerForm(c *gin.Context) {
	h.renderAuth(c, http.StatusOK, authData{
		Mode:       modeRegister,
		Next:       c.Query("next"),
		Membership: c.Query("membership"),
	}, "", "")
}

func (h *Handler) login(c *gin.Context) {
	data := authData{Mode: modeSignIn, Next: c.PostForm("next"), Email: c.PostForm("email")}
	password := c.PostForm("password")

	if len(password) < minPasswordLen {
		h.renderAuth(c, http.StatusBadRequest, data, failure.KindWeakPassword.Message(), "")
		return
	}

	res := h.svc.Login(c.Request.Context(), session.ID(c), backend.LoginInput{Email: data.Email, Password: password})
	if !res.Success {
		h.renderAuth(c, res.HTTPStatus(), data, res.Error, "")
		return
	}
	c.Redirect(http.StatusSeeOther, safeNext(data.Next))
}

func (h *Handler) register(c *gin.Context) {
	data := authData{
		Mode:       modeRegister,
		Next:       c.PostForm("next"),
		Membership: c.PostForm("membership"),
		Name:       strings.TrimSpace(c.PostForm("name")),
		Email:      c.PostForm("email"),
	}
	password := c.PostForm("password")

	switch {
	case data.Name == "":
		h.renderAuth(c, http.StatusBadRequest, data, msgEnterName, "")
		return
	case len(password) < minPasswordLen:
		h.renderAuth(c, http.StatusBadRequest, data, failure.KindWeakPassword.Message(), "")
		return
	}

	res := h.svc.Register(c.Request.Context(), session.ID(c), backend.RegisterInput{
		Name:     data.Name,
		Email:    data.Email,
		Password: password,
	})
	if !res.Success {
		h.renderAuth(c, res.HTTPStatus(), data, res.Error, "")
		return
	}
	c.Redirect(http.StatusSeeOther, safeNext(data.Next))
}

func (h *Handler) resetPassword(c *gin.Context) {
	data := authData{Mode: modeSignIn, Next: c.PostForm("next"), Email: strings.TrimSpace(c.PostForm("email"))}
	if data.Email == "" {
		h.renderAuth(c, http.StatusBadRequest, data, msgEnterEmail, "")
		return
	}

	res := h.svc.ResetPassword(c.Request.Context(), data.Email)
	if !res.Success {
		h.renderAuth(c, res.HTTPStatus(), data, res.Error, "")
		return
	}
	h.renderAuth(c, http.StatusOK, data, "", msgResetEmailSent)
}

// logout lands on the home page. A failed sign-out renders home in place
// with the error, and the session keeps its state.
func (h *Handler) logout(c *gin.Context) {
	res := h.svc.Logout(c.Request.Context(), session.ID(c))
	if !res.Success {
		p := newPage(c, "Welcome to Cyberhouse", content.Highlights)
		p.Error = res.Error
		c.HTML(res.HTTPStatus(), "home", p)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) renderAuth(c *gin.Context, status int, data authData, errMsg, notice string) {
	title := "Sign In"
	if data.Registering() {
		title = "Create Account"
	}
	p := newPage(c, title, data)
	p.Error = errMsg
	p.Notice = notice
	c.HTML(status, "login", p)
}

// safeNext only allows same-site relative redirects.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
