package web

import (
	"github.com/gin-gonic/gin"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/session"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/web/content"
)

// Page is the data every template receives. Data holds the page-specific
// view model.
type Page struct {
	Title   string
	Path    string
	Nav     []content.NavItem
	Session session.Snapshot
	Notice  string
	Error   string
	Data    any
}

func (p Page) Active(path string) bool {
	return p.Path == path
}

func newPage(c *gin.Context, title string, data any) Page {
	snap := session.FromContext(c).Snapshot()
	return Page{
		Title:   title,
		Path:    c.Request.URL.Path,
		Nav:     content.NavFor(snap.Authenticated()),
		Session: snap,
		Data:    data,
	}
}
