package backend

import (
	"context"
	"errors"
	"io"
	"strings"

	authdomain "github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/failure"
	media "github.com/cyberhouse-gh/cyberhouse-portal/internal/media/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/media/objectstore"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/media/progress"
)

type UploadInput struct {
	FileName    string
	Type        media.Type
	ContentType string
	Size        int64
	Body        io.Reader
}

// MaxUploadBytes is the configured upload limit.
func (a *Adapter) MaxUploadBytes() int64 {
	return a.maxUpload
}

// UploadMedia sends the binary to object storage, then writes the media
// record. onProgress receives non-decreasing percentages; 100 is sent once,
// only when both steps succeed.
func (a *Adapter) UploadMedia(ctx context.Context, who *authdomain.Identity, in UploadInput, onProgress func(int)) Result[media.Asset] {
	const op = "upload_media"
	if who == nil {
		return fail[media.Asset](a, ctx, op, failure.New(failure.KindUnauthenticated, nil), "")
	}

	switch {
	case !in.Type.Valid():
		return fail[media.Asset](a, ctx, op, failure.Validation("Please choose an image or video"), "")
	case strings.TrimSpace(in.FileName) == "" || in.Body == nil || in.Size <= 0:
		return fail[media.Asset](a, ctx, op, failure.Validation("Please choose a file to upload"), "")
	case in.Size > a.maxUpload:
		return fail[media.Asset](a, ctx, op, failure.TooLarge(a.maxUpload), "")
	}

	if a.objects == nil {
		return fail[media.Asset](a, ctx, op, failure.New(failure.KindUnavailable, errors.New("object storage not configured")), "")
	}

	now := a.now().UTC()
	path := media.ObjectPath(in.Type, in.FileName, now)

	tracker := progress.NewTracker(in.Size, onProgress)
	tracker.Start()

	url, err := a.objects.Put(ctx, objectstore.Object{
		Path:        path,
		ContentType: in.ContentType,
		Size:        in.Size,
		Body:        io.LimitReader(in.Body, a.maxUpload),
		Progress:    tracker.Written,
	})
	if err != nil {
		tracker.Fail()
		return fail[media.Asset](a, ctx, op, err, "Failed to upload file")
	}

	asset := media.Asset{
		Title:      in.FileName,
		Type:       in.Type,
		URL:        url,
		UserID:     who.UID,
		Size:       in.Size,
		ObjectPath: path,
		CreatedAt:  now,
	}
	if err := a.media.Create(ctx, &asset); err != nil {
		tracker.Fail()
		return fail[media.Asset](a, ctx, op, err, "Failed to save media record")
	}

	tracker.Complete()
	return ok(asset)
}

func (a *Adapter) ListMedia(ctx context.Context) Result[[]media.Asset] {
	list, err := a.media.List(ctx)
	if err != nil {
		return fail[[]media.Asset](a, ctx, "list_media", err, "Failed to load the gallery. Please try again later.")
	}
	if list == nil {
		list = []media.Asset{}
	}
	return ok(list)
}
