// Package web serves the portal's pages: static program content, the news
// board, the project showcase, the gallery and the auth forms.
package web

import (
	"context"

	"github.com/gin-gonic/gin"

	articles "github.com/cyberhouse-gh/cyberhouse-portal/internal/articles/domain"
	authdomain "github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/backend"
	media "github.com/cyberhouse-gh/cyberhouse-portal/internal/media/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/news"
	projects "github.com/cyberhouse-gh/cyberhouse-portal/internal/projects/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/session"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/web/content"
)

// Service is the part of the backend adapter the pages call.
type Service interface {
	Register(ctx context.Context, sid string, in backend.RegisterInput) backend.Result[authdomain.Identity]
	Login(ctx context.Context, sid string, in backend.LoginInput) backend.Result[authdomain.Identity]
	Logout(ctx context.Context, sid string) backend.Result[struct{}]
	ResetPassword(ctx context.Context, email string) backend.Result[struct{}]

	ListArticles(ctx context.Context) backend.Result[[]articles.Article]
	GetArticleByID(ctx context.Context, id string) backend.Result[articles.Article]
	CreateArticle(ctx context.Context, who *authdomain.Identity, in backend.ArticleInput) backend.Result[articles.Article]
	NewsFeed(ctx context.Context) backend.Result[[]news.Headline]

	ListProjects(ctx context.Context) backend.Result[[]projects.Project]
	SubmitProject(ctx context.Context, who *authdomain.Identity, in backend.ProjectInput) backend.Result[projects.Project]

	ListMedia(ctx context.Context) backend.Result[[]media.Asset]
	MaxUploadBytes() int64
	SendContactMessage(ctx context.Context, in backend.ContactInput) backend.Result[struct{}]
}

const loginPath = "/login"

type Handler struct {
	svc Service
}

func New(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Register attaches every page route and form target. The engine must use
// a Renderer as its HTMLRender and run session.Middleware first.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.home)
	r.GET("/about", h.about)
	r.GET("/training", h.training)
	r.GET("/mentors", h.mentors)
	for _, slug := range content.ProgramSlugs {
		r.GET("/"+slug, h.program(slug))
	}
	r.GET("/security-tools", session.RequireAuthenticated(loginPath), h.securityTools)

	r.GET("/news", h.newsBoard)
	r.POST("/news", h.submitArticle)
	r.GET("/news/:id", h.article)

	r.GET("/projects", h.projectBoard)
	r.POST("/projects", h.submitProject)

	r.GET("/gallery", h.gallery)

	r.GET("/contact", h.contactForm)
	r.POST("/contact", h.sendContact)

	r.GET("/join", h.join)
	r.POST("/join", h.chooseTier)

	r.GET(loginPath, h.loginForm)
	r.POST(loginPath, h.login)
	r.GET("/register", h.registerForm)
	r.POST("/register", h.register)
	r.POST("/reset-password", h.resetPassword)
	r.GET("/logout", h.logout)
	r.POST("/logout", h.logout)
}

// NotFound renders the not-found page for unmatched routes.
func (h *Handler) NotFound(c *gin.Context) {
	h.notFound(c, "")
}
