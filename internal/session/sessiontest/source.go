// Package sessiontest provides auth-state sources for handler tests.
package sessiontest

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/logging"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/session"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/subscription"
)

// Source pushes one fixed auth event to every subscriber.
type Source struct {
	Event domain.AuthEvent
}

func (s Source) Subscribe(ctx context.Context, sid string) (*subscription.Subscription[domain.AuthEvent], error) {
	return subscription.Start(ctx, func(ctx context.Context, emit subscription.Emit[domain.AuthEvent]) error {
		emit(s.Event)
		<-ctx.Done()
		return nil
	}), nil
}

func SignedOut() Source {
	return Source{}
}

func SignedIn(id domain.Identity) Source {
	return Source{Event: domain.AuthEvent{Identity: &id}}
}

// Middleware is session.Middleware over src with a fixed cookie name.
func Middleware(src session.Subscriber) gin.HandlerFunc {
	return session.Middleware(src, session.MiddlewareConfig{
		CookieName:     "sid",
		MaxAge:         time.Hour,
		ResolveTimeout: time.Second,
	}, logging.Nop())
}

// WithSession adds a session cookie so the middleware reuses sid.
func WithSession(req *http.Request, sid string) *http.Request {
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	return req
}
