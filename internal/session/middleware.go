package session

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/failure"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/logging"
)

const (
	ctxStoreKey     = "session_store"
	ctxSessionIDKey = "session_id"
)

var sidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

type MiddlewareConfig struct {
	CookieName     string
	MaxAge         time.Duration
	ResolveTimeout time.Duration
	Secure         bool
}

// Middleware scopes a Store to each request. It resolves the browser
// session cookie (creating one when absent), subscribes the store, waits
// up to ResolveTimeout for the first push and closes the store when the
// request ends.
func Middleware(src Subscriber, cfg MiddlewareConfig, log *logging.Logger) gin.HandlerFunc {
	if cfg.CookieName == "" {
		cfg.CookieName = "cyberhouse_sid"
	}
	if cfg.ResolveTimeout <= 0 {
		cfg.ResolveTimeout = 2 * time.Second
	}
	log = log.Component("session")

	return func(c *gin.Context) {
		sid, err := c.Cookie(cfg.CookieName)
		if err != nil || !sidPattern.MatchString(sid) {
			sid = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cfg.CookieName, sid, int(cfg.MaxAge.Seconds()), "/", "", cfg.Secure, true)
		}

		ctx := c.Request.Context()
		store := NewStore()
		defer store.Close()

		if err := store.Start(ctx, src, sid); err != nil {
			log.FromContext(ctx).LogWarn("session_subscribe", err)
		}

		waitCtx, cancel := context.WithTimeout(ctx, cfg.ResolveTimeout)
		if _, err := store.Wait(waitCtx); err != nil {
			log.FromContext(ctx).LogWarnf("session_resolve", "session %s still unresolved: %v", sid, err)
		}
		cancel()

		c.Set(ctxStoreKey, store)
		c.Set(ctxSessionIDKey, sid)
		c.Next()
	}
}

// FromContext returns the request's Store. Without the middleware it
// returns a store that never resolves.
func FromContext(c *gin.Context) *Store {
	if v, ok := c.Get(ctxStoreKey); ok {
		if store, ok := v.(*Store); ok {
			return store
		}
	}
	return NewStore()
}

// ID returns the browser session id resolved by the middleware.
func ID(c *gin.Context) string {
	return c.GetString(ctxSessionIDKey)
}

// RequireAuthenticated gates a route on an Authenticated session. Views are
// redirected to loginPath; API calls get 401.
func RequireAuthenticated(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if FromContext(c).Snapshot().Authenticated() {
			c.Next()
			return
		}

		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   failure.KindUnauthenticated.Message(),
				"code":    failure.KindUnauthenticated.String(),
			})
			return
		}

		target := loginPath + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
		c.Redirect(http.StatusSeeOther, target)
		c.Abort()
	}
}
