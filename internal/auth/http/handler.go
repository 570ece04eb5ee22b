package http

import (
	"context"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/backend"
)

// Service is the slice of the backend adapter the auth endpoints use.
type Service interface {
	Register(ctx context.Context, sid string, in backend.RegisterInput) backend.Result[domain.Identity]
	Login(ctx context.Context, sid string, in backend.LoginInput) backend.Result[domain.Identity]
	SignInAnonymously(ctx context.Context, sid string) backend.Result[domain.Identity]
	Logout(ctx context.Context, sid string) backend.Result[struct{}]
	ResetPassword(ctx context.Context, email string) backend.Result[struct{}]
	UpdateProfile(ctx context.Context, sid string, in backend.ProfileInput) backend.Result[domain.Identity]
}

type Handler struct {
	svc Service
}

func New(svc Service) *Handler {
	return &Handler{svc: svc}
}
