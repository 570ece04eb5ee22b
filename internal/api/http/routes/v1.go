package routes

import (
	"github.com/gin-gonic/gin"

	articleshttp "github.com/cyberhouse-gh/cyberhouse-portal/internal/articles/http"
	authhttp "github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/http"
	authmw "github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/middleware"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/backend"
	contacthttp "github.com/cyberhouse-gh/cyberhouse-portal/internal/contact/http"
	mediahttp "github.com/cyberhouse-gh/cyberhouse-portal/internal/media/http"
	newshttp "github.com/cyberhouse-gh/cyberhouse-portal/internal/news/http"
	projectshttp "github.com/cyberhouse-gh/cyberhouse-portal/internal/projects/http"
)

type V1Deps struct {
	Adapter *backend.Adapter
}

// RegisterV1 mounts the JSON API. The session middleware must already be
// installed on r; bearer ID tokens are accepted on top of it.
func RegisterV1(r gin.IRouter, dep V1Deps) {
	api := r.Group("/api/v1")
	api.Use(authmw.FirebaseAuthMiddleware(dep.Adapter))

	authhttp.New(dep.Adapter).Register(api.Group("/auth"))
	articleshttp.New(dep.Adapter).Register(api.Group("/articles"))
	projectshttp.New(dep.Adapter).Register(api.Group("/projects"))
	mediahttp.New(dep.Adapter).Register(api.Group("/media"))
	contacthttp.New(dep.Adapter).Register(api.Group("/contact"))
	newshttp.New(dep.Adapter).Register(api.Group("/news"))
}
