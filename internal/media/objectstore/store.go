// Package objectstore uploads media binaries to object storage and returns
// their public download URLs.
package objectstore

import (
	"context"
	"io"
	"sync/atomic"
)

// Object describes one upload.
type Object struct {
	Path        string
	ContentType string
	Size        int64
	Body        io.Reader
	// Progress receives the cumulative number of bytes sent.
	Progress func(written int64)
}

type Store interface {
	Put(ctx context.Context, obj Object) (string, error)
}

// countingReader reports cumulative bytes read through fn.
type countingReader struct {
	r  io.Reader
	n  atomic.Int64
	fn func(int64)
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 && c.fn != nil {
		c.fn(c.n.Add(int64(n)))
	}
	return n, err
}
