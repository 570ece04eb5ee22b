package backend

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/news"
)

func TestNewsFeed(t *testing.T) {
	ctx := context.Background()

	t.Run("no source", func(t *testing.T) {
		res := New(Deps{}).NewsFeed(ctx)
		assert.Equal(t, http.StatusServiceUnavailable, res.HTTPStatus())
		assert.Equal(t, newsUnavailable, res.Error)
	})

	t.Run("not configured", func(t *testing.T) {
		res := New(Deps{News: &fakeNews{err: news.ErrNotConfigured}}).NewsFeed(ctx)
		assert.Equal(t, newsUnavailable, res.Error)
	})

	t.Run("upstream failure", func(t *testing.T) {
		res := New(Deps{News: &fakeNews{err: errors.New("news api rateLimited: slow down")}}).NewsFeed(ctx)
		assert.False(t, res.Success)
		assert.Equal(t, newsUnavailable, res.Error)
	})

	t.Run("headlines", func(t *testing.T) {
		src := &fakeNews{headlines: []news.Headline{{Title: "Patch Tuesday"}}}
		res := New(Deps{News: src}).NewsFeed(ctx)
		require.True(t, res.Success)
		assert.Equal(t, "Patch Tuesday", res.Data[0].Title)
	})
}
