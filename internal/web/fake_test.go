package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	articles "github.com/cyberhouse-gh/cyberhouse-portal/internal/articles/domain"
	authdomain "github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/backend"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/failure"
	media "github.com/cyberhouse-gh/cyberhouse-portal/internal/media/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/news"
	projects "github.com/cyberhouse-gh/cyberhouse-portal/internal/projects/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/session"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/session/sessiontest"
)

type fakeService struct {
	mu sync.Mutex

	articles  []articles.Article
	listErr   error
	headlines []news.Headline
	feedErr   error
	projects  []projects.Project
	assets    []media.Asset
	loginErr  error
	logoutErr error
	maxUpload int64

	listed    int
	created   []backend.ArticleInput
	submitted []backend.ProjectInput
	logins    []backend.LoginInput
	registers []backend.RegisterInput
	resets    []string
	logouts   []string
	contacts  []backend.ContactInput
}

func (f *fakeService) Register(ctx context.Context, sid string, in backend.RegisterInput) backend.Result[authdomain.Identity] {
	f.registers = append(f.registers, in)
	return backend.Result[authdomain.Identity]{Success: true, Data: authdomain.Identity{UID: "u-new", Email: in.Email}}
}

func (f *fakeService) Login(ctx context.Context, sid string, in backend.LoginInput) backend.Result[authdomain.Identity] {
	f.logins = append(f.logins, in)
	if f.loginErr != nil {
		return backend.Failed[authdomain.Identity](f.loginErr)
	}
	return backend.Result[authdomain.Identity]{Success: true, Data: authdomain.Identity{UID: "u-1", Email: in.Email}}
}

func (f *fakeService) Logout(ctx context.Context, sid string) backend.Result[struct{}] {
	f.logouts = append(f.logouts, sid)
	if f.logoutErr != nil {
		return backend.Failed[struct{}](f.logoutErr)
	}
	return backend.Result[struct{}]{Success: true}
}

func (f *fakeService) ResetPassword(ctx context.Context, email string) backend.Result[struct{}] {
	f.resets = append(f.resets, email)
	return backend.Result[struct{}]{Success: true}
}

func (f *fakeService) ListArticles(ctx context.Context) backend.Result[[]articles.Article] {
	f.mu.Lock()
	f.listed++
	f.mu.Unlock()
	if f.listErr != nil {
		res := backend.Failed[[]articles.Article](f.listErr)
		res.Error = "Failed to fetch articles. Please try again later."
		return res
	}
	return backend.Result[[]articles.Article]{Success: true, Data: f.articles}
}

func (f *fakeService) GetArticleByID(ctx context.Context, id string) backend.Result[articles.Article] {
	for _, a := range f.articles {
		if a.ID == id {
			return backend.Result[articles.Article]{Success: true, Data: a}
		}
	}
	return backend.Failed[articles.Article](failure.NotFound("Article " + id + " not found"))
}

func (f *fakeService) CreateArticle(ctx context.Context, who *authdomain.Identity, in backend.ArticleInput) backend.Result[articles.Article] {
	f.created = append(f.created, in)
	if strings.TrimSpace(in.Title) == "" {
		return backend.Failed[articles.Article](failure.Validation("Please enter an article title"))
	}
	return backend.Result[articles.Article]{Success: true, Data: articles.Article{ID: "new", Title: in.Title, Content: in.Content, Author: who.Email, Category: in.Category}}
}

func (f *fakeService) NewsFeed(ctx context.Context) backend.Result[[]news.Headline] {
	if f.feedErr != nil {
		res := backend.Failed[[]news.Headline](f.feedErr)
		res.Error = "Live cybersecurity news is unavailable right now."
		return res
	}
	return backend.Result[[]news.Headline]{Success: true, Data: f.headlines}
}

func (f *fakeService) ListProjects(ctx context.Context) backend.Result[[]projects.Project] {
	return backend.Result[[]projects.Project]{Success: true, Data: f.projects}
}

func (f *fakeService) SubmitProject(ctx context.Context, who *authdomain.Identity, in backend.ProjectInput) backend.Result[projects.Project] {
	f.submitted = append(f.submitted, in)
	if strings.TrimSpace(in.Title) == "" {
		return backend.Failed[projects.Project](failure.Validation("Please enter a project title"))
	}
	return backend.Result[projects.Project]{Success: true, Data: projects.Project{Title: in.Title}}
}

func (f *fakeService) ListMedia(ctx context.Context) backend.Result[[]media.Asset] {
	return backend.Result[[]media.Asset]{Success: true, Data: f.assets}
}

func (f *fakeService) MaxUploadBytes() int64 {
	if f.maxUpload == 0 {
		return media.DefaultMaxBytes
	}
	return f.maxUpload
}

func (f *fakeService) SendContactMessage(ctx context.Context, in backend.ContactInput) backend.Result[struct{}] {
	f.contacts = append(f.contacts, in)
	if in.Message == "" {
		return backend.Failed[struct{}](failure.Validation("Please fill in all required fields"))
	}
	return backend.Result[struct{}]{Success: true}
}

var member = authdomain.Identity{UID: "u-1", Email: "ama@example.com", DisplayName: "Ama Mensah"}

const testSID = "6f1d2c3b-4a5e-4f60-8a7b-9c0d1e2f3a4b"

func setupRouter(t *testing.T, svc Service, src session.Subscriber) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rnd, err := NewRenderer()
	require.NoError(t, err)

	r := gin.New()
	r.HTMLRender = rnd
	r.Use(sessiontest.Middleware(src))

	h := New(svc)
	h.Register(r)
	r.NoRoute(h.NotFound)
	return r
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, sessiontest.WithSession(httptest.NewRequest(http.MethodGet, target, nil), testSID))
	return w
}

func postForm(r http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, sessiontest.WithSession(req, testSID))
	return w
}
