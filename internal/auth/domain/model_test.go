package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvatarURL(t *testing.T) {
	assert.Equal(t,
		"https://ui-avatars.com/api/?name=Efua+Bentum&background=random",
		AvatarURL("Efua Bentum"))
}

func TestIdentityName(t *testing.T) {
	assert.Equal(t, "Kofi", Identity{DisplayName: "Kofi", Email: "k@example.com"}.Name())
	assert.Equal(t, "k@example.com", Identity{DisplayName: "  ", Email: "k@example.com"}.Name())
}
