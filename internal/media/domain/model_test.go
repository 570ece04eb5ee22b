package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectPath(t *testing.T) {
	at := time.UnixMilli(1717171717171)

	assert.Equal(t, "media/images/1717171717171_team_photo__1_.png", ObjectPath(TypeImage, "team photo (1).png", at))
	assert.Equal(t, "media/videos/1717171717171_demo-day.mp4", ObjectPath(TypeVideo, "demo-day.mp4", at))
}

func TestTypeValid(t *testing.T) {
	assert.True(t, TypeImage.Valid())
	assert.True(t, TypeVideo.Valid())
	assert.False(t, Type("audio").Valid())
}
