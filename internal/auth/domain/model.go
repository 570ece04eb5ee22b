package domain

import (
	"net/url"
	"strings"
	"time"
)

// Identity is the platform-issued user identity mirrored by a session.
type Identity struct {
	UID         string `json:"uid"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`
	Anonymous   bool   `json:"anonymous,omitempty"`
}

// Name returns the display name, falling back to the email.
func (i Identity) Name() string {
	if strings.TrimSpace(i.DisplayName) != "" {
		return i.DisplayName
	}
	return i.Email
}

// Credentials is the platform credential pair held for one browser session.
type Credentials struct {
	Identity     Identity  `json:"identity"`
	IDToken      string    `json:"id_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// AuthEvent is one push on a session's auth-state channel. A nil Identity
// means signed out.
type AuthEvent struct {
	Identity *Identity `json:"identity"`
}

// Profile is the users/{uid} document written on registration.
type Profile struct {
	Email     string    `firestore:"email" json:"email"`
	Name      string    `firestore:"name" json:"name"`
	PhotoURL  string    `firestore:"photoURL" json:"photo_url"`
	CreatedAt time.Time `firestore:"createdAt" json:"created_at"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updated_at"`
}

// AvatarURL builds the generated avatar used when a user has no photo.
func AvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
}
