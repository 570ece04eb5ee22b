package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates
var templateFS embed.FS

const (
	layoutFile  = "templates/layout.html"
	pagesGlob   = "templates/pages/*.html"
	notFoundKey = "not_found"
)

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("January 2, 2006")
	},
	"initial": func(s string) string {
		s = strings.TrimSpace(s)
		if s == "" {
			return "?"
		}
		return strings.ToUpper(string([]rune(s)[0]))
	},
}

// Renderer is a gin HTMLRender holding one template set per page, each
// parsed together with the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templateFS, pagesGlob)
	if err != nil {
		return nil, fmt.Errorf("list page templates: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".html")
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		r.pages[name] = t
	}

	if _, ok := r.pages[notFoundKey]; !ok {
		return nil, fmt.Errorf("missing %s page template", notFoundKey)
	}
	return r, nil
}

// Instance renders the named page through the "layout" template. Unknown
// pages fall back to the not-found page.
func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.pages[name]
	if !ok {
		t = r.pages[notFoundKey]
	}
	return render.HTML{Template: t, Name: "layout", Data: data}
}

// Has reports whether a page template exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}
