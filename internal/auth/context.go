package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/session"
)

const CtxIdentity = "identity"

// SetIdentity records a verified bearer-token identity on the request.
func SetIdentity(c *gin.Context, id domain.Identity) {
	c.Set(CtxIdentity, &id)
}

// CurrentIdentity returns the signed-in user for this request: the bearer
// identity set by FirebaseAuthMiddleware when present, otherwise the
// session identity. Anonymous identities are never returned.
func CurrentIdentity(c *gin.Context) *domain.Identity {
	if v, ok := c.Get(CtxIdentity); ok {
		if id, ok := v.(*domain.Identity); ok && id != nil && !id.Anonymous {
			return id
		}
	}

	snap := session.FromContext(c).Snapshot()
	if snap.Authenticated() {
		return snap.Identity
	}
	return nil
}
