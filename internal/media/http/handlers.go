package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/api/http/sse"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/auth"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/backend"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/failure"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/media/domain"
)

func (h *Handler) list(c *gin.Context) {
	res := h.svc.ListMedia(c.Request.Context())
	c.JSON(res.HTTPStatus(), res)
}

type progressEvent struct {
	Percent int `json:"percent"`
}

// upload accepts a multipart "file" plus an optional "type" field. With
// Accept: text/event-stream it streams "progress" events followed by one
// "done" or "error" event; otherwise it answers with the Result as JSON.
func (h *Handler) upload(c *gin.Context) {
	who := auth.CurrentIdentity(c)
	if who == nil {
		res := backend.Failed[domain.Asset](failure.New(failure.KindUnauthenticated, nil))
		c.JSON(res.HTTPStatus(), res)
		return
	}

	in, closeFile, err := uploadInput(c, h.svc.MaxUploadBytes())
	if err != nil {
		res := backend.Failed[domain.Asset](err)
		c.JSON(res.HTTPStatus(), res)
		return
	}
	defer closeFile()

	ctx := c.Request.Context()

	if !sse.Accepts(c) {
		res := h.svc.UploadMedia(ctx, who, in, nil)
		status := res.HTTPStatus()
		if res.Success {
			status = http.StatusCreated
		}
		c.JSON(status, res)
		return
	}

	w, ok := sse.Start(c)
	if !ok {
		return
	}
	res := h.svc.UploadMedia(ctx, who, in, func(pct int) {
		_ = w.Event("progress", progressEvent{Percent: pct})
	})
	if res.Success {
		_ = w.Event("done", res)
		return
	}
	_ = w.Event("error", res)
}

// formOverhead covers multipart boundaries and the small text fields sent
// alongside the file.
const formOverhead = 64 << 10

func uploadInput(c *gin.Context, limit int64) (backend.UploadInput, func(), error) {
	if c.Request.ContentLength > limit+formOverhead {
		return backend.UploadInput{}, nil, failure.TooLarge(limit)
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+formOverhead)

	header, err := c.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return backend.UploadInput{}, nil, failure.TooLarge(limit)
		}
		return backend.UploadInput{}, nil, failure.Validation("Please choose a file to upload")
	}

	contentType := header.Header.Get("Content-Type")
	mediaType := domain.Type(strings.ToLower(strings.TrimSpace(c.PostForm("type"))))
	if mediaType == "" {
		mediaType = typeFromContentType(contentType)
	}

	file, err := header.Open()
	if err != nil {
		return backend.UploadInput{}, nil, failure.Validation("Please choose a file to upload")
	}

	return backend.UploadInput{
		FileName:    header.Filename,
		Type:        mediaType,
		ContentType: contentType,
		Size:        header.Size,
		Body:        file,
	}, func() { file.Close() }, nil
}

func typeFromContentType(ct string) domain.Type {
	switch {
	case strings.HasPrefix(ct, "image/"):
		return domain.TypeImage
	case strings.HasPrefix(ct, "video/"):
		return domain.TypeVideo
	default:
		return ""
	}
}
