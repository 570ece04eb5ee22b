package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/auth"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/backend"
	projects "github.com/cyberhouse-gh/cyberhouse-portal/internal/projects/domain"
)

const (
	msgLoginToSubmitProject = "Please log in to submit a project"
	msgProjectSubmitted     = "Project submitted successfully!"
	msgStreamLost           = "Live updates interrupted. Reconnecting..."
	projectStreamPath       = "/projects/stream"
)

type projectsData struct {
	Projects   []projects.Project
	StreamPath string
	StreamLost string
	CanSubmit  bool
	Form       backend.ProjectInput
}

func (h *Handler) projectBoard(c *gin.Context) {
	p := h.projectsPage(c)
	if c.Query("submitted") == "1" {
		p.Notice = msgProjectSubmitted
	}
	c.HTML(http.StatusOK, "projects", p)
}

// submitProject redirects back to the board on success; the new project
// reaches open boards through the live stream.
func (h *Handler) submitProject(c *gin.Context) {
	in := backend.ProjectInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Name:        c.PostForm("name"),
	}

	who := auth.CurrentIdentity(c)
	if who != nil {
		res := h.svc.SubmitProject(c.Request.Context(), who, in)
		if res.Success {
			c.Redirect(http.StatusSeeOther, "/projects?submitted=1")
			return
		}
		p := h.projectsPage(c)
		p.Error = res.Error
		p.Data = withForm(p.Data, in)
		c.HTML(res.HTTPStatus(), "projects", p)
		return
	}

	p := h.projectsPage(c)
	p.Error = msgLoginToSubmitProject
	p.Data = withForm(p.Data, in)
	c.HTML(http.StatusUnauthorized, "projects", p)
}

func (h *Handler) projectsPage(c *gin.Context) Page {
	res := h.svc.ListProjects(c.Request.Context())
	p := newPage(c, "Community Projects", projectsData{
		Projects:   res.Data,
		StreamPath: projectStreamPath,
		StreamLost: msgStreamLost,
		CanSubmit:  auth.CurrentIdentity(c) != nil,
	})
	if !res.Success {
		p.Error = res.Error
	}
	return p
}

func withForm(data any, in backend.ProjectInput) any {
	d, ok := data.(projectsData)
	if !ok {
		return data
	}
	d.Form = in
	return d
}
