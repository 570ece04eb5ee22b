package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	articles "github.com/cyberhouse-gh/cyberhouse-portal/internal/articles/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/auth"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/backend"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/failure"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/news"
)

const (
	msgLoginToSubmitArticle = "Please log in to submit an article"
	msgArticleSubmitted     = "Article submitted successfully!"
)

type newsData struct {
	Articles   []articles.Article
	Categories []string
	Category   string
	Headlines  []news.Headline
	FeedNotice string
	CanSubmit  bool
	Form       backend.ArticleInput
}

func (d newsData) Selected(category string) bool {
	if d.Category == "" {
		return category == "All"
	}
	return d.Category == category
}

// loadBoard runs the article read and the live feed request together.
func (h *Handler) loadBoard(c *gin.Context) (backend.Result[[]articles.Article], newsData) {
	var (
		list backend.Result[[]articles.Article]
		feed backend.Result[[]news.Headline]
		g    errgroup.Group
	)
	ctx := c.Request.Context()
	g.Go(func() error {
		list = h.svc.ListArticles(ctx)
		return nil
	})
	g.Go(func() error {
		feed = h.svc.NewsFeed(ctx)
		return nil
	})
	_ = g.Wait()

	data := newsData{
		Categories: append([]string{"All"}, articles.Categories...),
		Category:   c.Query("category"),
		CanSubmit:  auth.CurrentIdentity(c) != nil,
		Headlines:  feed.Data,
	}
	if !feed.Success {
		data.FeedNotice = feed.Error
	}
	return list, data
}

func (h *Handler) newsBoard(c *gin.Context) {
	list, data := h.loadBoard(c)
	data.Articles = articles.FilterByCategory(list.Data, data.Category)

	p := newPage(c, "Cybersecurity News", data)
	if !list.Success {
		p.Error = list.Error
	}
	c.HTML(http.StatusOK, "news", p)
}

// submitArticle creates the article and prepends it to the list fetched
// for this render instead of querying again.
func (h *Handler) submitArticle(c *gin.Context) {
	in := backend.ArticleInput{
		Title:    c.PostForm("title"),
		Content:  c.PostForm("content"),
		Category: c.PostForm("category"),
		Image:    c.PostForm("image"),
	}

	list, data := h.loadBoard(c)
	p := newPage(c, "Cybersecurity News", nil)
	if !list.Success {
		p.Error = list.Error
	}

	status := http.StatusOK
	who := auth.CurrentIdentity(c)
	if who == nil {
		status = http.StatusUnauthorized
		p.Error = msgLoginToSubmitArticle
		data.Form = in
	} else if res := h.svc.CreateArticle(c.Request.Context(), who, in); res.Success {
		list.Data = append([]articles.Article{res.Data}, list.Data...)
		p.Notice = msgArticleSubmitted
	} else {
		status = res.HTTPStatus()
		p.Error = res.Error
		data.Form = in
	}

	data.Articles = articles.FilterByCategory(list.Data, data.Category)
	p.Data = data
	c.HTML(status, "news", p)
}

func (h *Handler) article(c *gin.Context) {
	res := h.svc.GetArticleByID(c.Request.Context(), c.Param("id"))
	if res.Kind() == failure.KindNotFound {
		h.notFound(c, res.Error)
		return
	}

	if !res.Success {
		p := newPage(c, "Article", nil)
		p.Error = res.Error
		c.HTML(res.HTTPStatus(), "article", p)
		return
	}
	c.HTML(http.StatusOK, "article", newPage(c, res.Data.Title, res.Data))
}
