package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/auth"
	media "github.com/cyberhouse-gh/cyberhouse-portal/internal/media/domain"
)

// uploadPath is the JSON API upload endpoint the gallery form posts to
// with Accept: text/event-stream for progress events.
const uploadPath = "/api/v1/media"

type galleryData struct {
	Images     []media.Asset
	Videos     []media.Asset
	CanUpload  bool
	UploadPath string
	MaxMB      int64
}

func (h *Handler) gallery(c *gin.Context) {
	res := h.svc.ListMedia(c.Request.Context())

	data := galleryData{
		CanUpload:  auth.CurrentIdentity(c) != nil,
		UploadPath: uploadPath,
		MaxMB:      h.svc.MaxUploadBytes() / (1024 * 1024),
	}
	for _, a := range res.Data {
		switch a.Type {
		case media.TypeImage:
			data.Images = append(data.Images, a)
		case media.TypeVideo:
			data.Videos = append(data.Videos, a)
		}
	}

	p := newPage(c, "Media Gallery", data)
	if !res.Success {
		p.Error = res.Error
	}
	c.HTML(http.StatusOK, "gallery", p)
}
