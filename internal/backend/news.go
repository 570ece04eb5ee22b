package backend

import (
	"context"
	"errors"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/failure"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/news"
)

const newsUnavailable = "Live cybersecurity news is unavailable right now."

// NewsFeed returns the latest external headlines. Callers show the error
// inline; a missing API key is reported the same way as an outage.
func (a *Adapter) NewsFeed(ctx context.Context) Result[[]news.Headline] {
	const op = "news_feed"
	if a.news == nil {
		return fail[[]news.Headline](a, ctx, op, &failure.Error{Kind: failure.KindUnavailable, Message: newsUnavailable, Err: news.ErrNotConfigured}, "")
	}

	list, err := a.news.Feed(ctx)
	if err != nil {
		if errors.Is(err, news.ErrNotConfigured) {
			return fail[[]news.Headline](a, ctx, op, &failure.Error{Kind: failure.KindUnavailable, Message: newsUnavailable, Err: err}, "")
		}
		return fail[[]news.Headline](a, ctx, op, err, newsUnavailable)
	}
	if list == nil {
		list = []news.Headline{}
	}
	return ok(list)
}
