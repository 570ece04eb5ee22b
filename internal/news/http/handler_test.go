package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/backend"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/failure"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/news"
)

type fakeService struct {
	res backend.Result[[]news.Headline]
}

func (f fakeService) NewsFeed(ctx context.Context) backend.Result[[]news.Headline] {
	return f.res
}

func serve(svc Service) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(svc).Register(r.Group("/api/v1/news"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/news/feed", nil))
	return w
}

func TestFeed(t *testing.T) {
	w := serve(fakeService{res: backend.Result[[]news.Headline]{Success: true, Data: []news.Headline{{Title: "Patch Tuesday"}}}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Patch Tuesday")

	w = serve(fakeService{res: backend.Failed[[]news.Headline](failure.New(failure.KindUnavailable, news.ErrNotConfigured))})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}
