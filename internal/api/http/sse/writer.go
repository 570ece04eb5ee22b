// Package sse writes Server-Sent Events on a gin response.
package sse

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// KeepAliveInterval is how often idle streams send a comment line.
const KeepAliveInterval = 15 * time.Second

// Writer serializes events onto one response. Safe for concurrent use.
type Writer struct {
	mu      sync.Mutex
	w       gin.ResponseWriter
	flusher http.Flusher
}

// Start sets the stream headers. It answers 500 and returns false when the
// response cannot be flushed.
func Start(c *gin.Context) (*Writer, bool) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "streaming unsupported"})
		return nil, false
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // nginx: disable buffering
	c.Status(http.StatusOK)

	return &Writer{w: c.Writer, flusher: flusher}, true
}

// Event writes one named event with v encoded as JSON.
func (s *Writer) Event(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", name, data); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

func (s *Writer) KeepAlive() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprint(s.w, ": keep-alive\n\n")
	s.flusher.Flush()
}

// Accepts reports whether the client asked for an event stream.
func Accepts(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/event-stream")
}
