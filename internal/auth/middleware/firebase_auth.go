package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/auth"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/backend"
)

// TokenVerifier turns a Firebase ID token into an identity.
type TokenVerifier interface {
	CurrentIdentity(ctx context.Context, idToken string) backend.Result[domain.Identity]
}

// FirebaseAuthMiddleware accepts a Bearer ID token as an alternative to the
// session cookie. Requests without a token pass through untouched; an
// invalid token is rejected.
func FirebaseAuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		res := verifier.CurrentIdentity(c.Request.Context(), token)
		if !res.Success {
			c.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		auth.SetIdentity(c, res.Data)
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return strings.TrimSpace(bearerToken[7:])
	}
	return ""
}
