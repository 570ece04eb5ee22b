package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/web/content"
)

func (h *Handler) home(c *gin.Context) {
	c.HTML(http.StatusOK, "home", newPage(c, "Welcome to Cyberhouse", content.Highlights))
}

type aboutData struct {
	SubGroups []content.SubGroup
	Impact    []content.Stat
}

func (h *Handler) about(c *gin.Context) {
	c.HTML(http.StatusOK, "about", newPage(c, "About Cyberhouse", aboutData{
		SubGroups: content.SubGroups,
		Impact:    content.Impact,
	}))
}

func (h *Handler) training(c *gin.Context) {
	c.HTML(http.StatusOK, "training", newPage(c, "Training Programs", content.Courses))
}

func (h *Handler) mentors(c *gin.Context) {
	c.HTML(http.StatusOK, "mentors", newPage(c, "Our Team", content.Mentors))
}

func (h *Handler) program(slug string) gin.HandlerFunc {
	p := content.Programs[slug]
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "program", newPage(c, p.Title, p))
	}
}

type toolsData struct {
	BreachCheckerURL string
	Practices        []content.Practice
}

func (h *Handler) securityTools(c *gin.Context) {
	c.HTML(http.StatusOK, "security_tools", newPage(c, "Security Tools", toolsData{
		BreachCheckerURL: content.BreachCheckerURL,
		Practices:        content.Practices,
	}))
}

type joinData struct {
	Tiers    []content.Tier
	Benefits []content.Feature
	FAQ      []content.Question
}

func (h *Handler) join(c *gin.Context) {
	h.renderJoin(c, http.StatusOK, "")
}

// chooseTier sends Enterprise to the contact form and every other tier to
// registration.
func (h *Handler) chooseTier(c *gin.Context) {
	tier, ok := content.FindTier(c.PostForm("tier"))
	if !ok {
		h.renderJoin(c, http.StatusBadRequest, "Please choose a membership tier")
		return
	}
	c.Redirect(http.StatusSeeOther, content.TierDestination(tier.Name))
}

func (h *Handler) renderJoin(c *gin.Context, status int, errMsg string) {
	p := newPage(c, "Join Cyberhouse", joinData{
		Tiers:    content.Tiers,
		Benefits: content.MemberBenefits,
		FAQ:      content.JoinFAQ,
	})
	p.Error = errMsg
	c.HTML(status, "join", p)
}

func (h *Handler) notFound(c *gin.Context, msg string) {
	if msg == "" {
		msg = "The page you are looking for does not exist."
	}
	p := newPage(c, "Not Found", nil)
	p.Error = msg
	c.HTML(http.StatusNotFound, notFoundKey, p)
}
