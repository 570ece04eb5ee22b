package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/auth"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/backend"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/failure"
)

type fakeVerifier struct {
	tokens map[string]domain.Identity
	seen   []string
}

func (f *fakeVerifier) CurrentIdentity(ctx context.Context, idToken string) backend.Result[domain.Identity] {
	f.seen = append(f.seen, idToken)
	id, ok := f.tokens[idToken]
	if !ok {
		return backend.Failed[domain.Identity](failure.New(failure.KindUnauthenticated, nil))
	}
	return backend.Result[domain.Identity]{Success: true, Data: id}
}

func setupRouter(v TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(FirebaseAuthMiddleware(v))
	r.GET("/me", func(c *gin.Context) {
		uid := ""
		if id := auth.CurrentIdentity(c); id != nil {
			uid = id.UID
		}
		c.JSON(http.StatusOK, gin.H{"uid": uid})
	})
	return r
}

func TestFirebaseAuthMiddleware(t *testing.T) {
	v := &fakeVerifier{tokens: map[string]domain.Identity{
		"good": {UID: "u-1", Email: "ama@example.com"},
		"anon": {UID: "u-2", Anonymous: true},
	}}
	r := setupRouter(v)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "no token passes through", wantStatus: http.StatusOK, wantBody: `"uid":""`},
		{name: "valid token", header: "Bearer good", wantStatus: http.StatusOK, wantBody: `"uid":"u-1"`},
		{name: "anonymous token is not a signed-in user", header: "Bearer anon", wantStatus: http.StatusOK, wantBody: `"uid":""`},
		{name: "invalid token", header: "Bearer forged", wantStatus: http.StatusUnauthorized, wantBody: `"code":"unauthenticated"`},
		{name: "non bearer scheme ignored", header: "Basic abc", wantStatus: http.StatusOK, wantBody: `"uid":""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
	assert.Equal(t, []string{"good", "anon", "forged"}, v.seen)
}
