package bootstrap

import (
	"fmt"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/cyberhouse-gh/cyberhouse-portal/internal/api/http"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/api/http/middleware"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/api/http/routes"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/backend"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/logging"
	projectshttp "github.com/cyberhouse-gh/cyberhouse-portal/internal/projects/http"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/session"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/web"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	Adapter     *backend.Adapter
	Sessions    session.Subscriber
	Session     session.MiddlewareConfig
	Redis       httpapi.Pinger
	Log         *logging.Logger
}

// BuildRouter wires health checks, the pages and the JSON API. Everything
// except the health checks runs behind the session middleware.
func BuildRouter(dep RouterDeps) (*gin.Engine, error) {
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	r := gin.New()
	r.HTMLRender = renderer
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Log))
	r.Use(cors.New(corsConfig(dep.CORSOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version).WithRedis(dep.Redis)
	healthHandler.RegisterRoutes(r)

	sessionMW := session.Middleware(dep.Sessions, dep.Session, dep.Log)
	site := r.Group("/", sessionMW)

	pages := web.New(dep.Adapter)
	pages.Register(site)
	site.GET("/projects/stream", projectshttp.New(dep.Adapter).Stream)

	routes.RegisterV1(site, routes.V1Deps{Adapter: dep.Adapter})

	r.NoRoute(sessionMW, pages.NotFound)

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-Id"},
		ExposeHeaders:    []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
