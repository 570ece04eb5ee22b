package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/api/http/sse"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/session"
)

// Stream pushes the live project list as "projects" events and session
// changes as "session" events. The project subscription is released when
// the client disconnects. A subscription error is sent once as an "error"
// event and ends the stream.
func (h *Handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	sub := h.svc.WatchProjects(ctx)
	defer sub.Stop()

	w, ok := sse.Start(c)
	if !ok {
		return
	}

	store := session.FromContext(c)
	if err := w.Event("session", store.Snapshot()); err != nil {
		return
	}
	changes := store.Changes()

	ticker := time.NewTicker(sse.KeepAliveInterval)
	defer ticker.Stop()

	updates := sub.Updates()
	for {
		select {
		case <-ctx.Done():
			// Client disconnected
			return

		case <-ticker.C:
			w.KeepAlive()

		case snap, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			if err := w.Event("session", snap); err != nil {
				return
			}

		case list, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			if err := w.Event("projects", list); err != nil {
				return
			}

		case err := <-sub.Err():
			_ = w.Event("error", h.svc.ProjectStreamError(ctx, err))
			return
		}
	}
}
