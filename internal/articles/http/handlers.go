package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/articles/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/auth"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/backend"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/failure"
)

// list returns every article newest first. ?category= filters the fetched
// list without another query.
func (h *Handler) list(c *gin.Context) {
	res := h.svc.ListArticles(c.Request.Context())
	if res.Success {
		res.Data = domain.FilterByCategory(res.Data, c.Query("category"))
	}
	c.JSON(res.HTTPStatus(), res)
}

func (h *Handler) get(c *gin.Context) {
	res := h.svc.GetArticleByID(c.Request.Context(), c.Param("id"))
	c.JSON(res.HTTPStatus(), res)
}

func (h *Handler) create(c *gin.Context) {
	var in backend.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   failure.KindValidation.Message(),
			"code":    failure.KindValidation.String(),
		})
		return
	}

	res := h.svc.CreateArticle(c.Request.Context(), auth.CurrentIdentity(c), in)
	status := res.HTTPStatus()
	if res.Success {
		status = http.StatusCreated
	}
	c.JSON(status, res)
}
