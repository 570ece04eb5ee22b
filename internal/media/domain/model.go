package domain

import (
	"regexp"
	"strconv"
	"time"
)

type Type string

const (
	TypeImage Type = "image"
	TypeVideo Type = "video"
)

func (t Type) Valid() bool {
	return t == TypeImage || t == TypeVideo
}

// DefaultMaxBytes is the 50 MiB upload limit.
const DefaultMaxBytes int64 = 50 * 1024 * 1024

// Asset is the media record stored after a successful upload.
type Asset struct {
	ID         string    `firestore:"-" json:"id"`
	Title      string    `firestore:"title" json:"title"`
	Type       Type      `firestore:"type" json:"type"`
	URL        string    `firestore:"url" json:"url"`
	UserID     string    `firestore:"userId" json:"user_id"`
	Size       int64     `firestore:"size" json:"size"`
	ObjectPath string    `firestore:"objectPath" json:"object_path"`
	CreatedAt  time.Time `firestore:"createdAt" json:"created_at"`
}

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// ObjectPath builds media/{type}s/{unixMillis}_{sanitized name}.
func ObjectPath(t Type, name string, at time.Time) string {
	return "media/" + string(t) + "s/" + strconv.FormatInt(at.UnixMilli(), 10) + "_" + unsafeName.ReplaceAllString(name, "_")
}

