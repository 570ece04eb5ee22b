package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	authdomain "github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/failure"
)

const MinPasswordLength = 6

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account, sets its display name and generated avatar,
// writes the users document and signs the browser session in. Profile and
// users-document failures are logged only.
func (a *Adapter) Register(ctx context.Context, sid string, in RegisterInput) Result[authdomain.Identity] {
	const op = "register"
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)

	switch {
	case name == "":
		return fail[authdomain.Identity](a, ctx, op, failure.Validation("Please enter your name"), "")
	case email == "":
		return fail[authdomain.Identity](a, ctx, op, failure.Validation("Please enter your email address"), "")
	case len(in.Password) < MinPasswordLength:
		return fail[authdomain.Identity](a, ctx, op, failure.New(failure.KindWeakPassword, nil), "")
	}

	creds, err := a.identity.SignUp(ctx, email, in.Password)
	if err != nil {
		return fail[authdomain.Identity](a, ctx, op, err, "Failed to create account")
	}

	log := a.log.FromContext(ctx)
	avatar := authdomain.AvatarURL(name)
	if updated, err := a.identity.UpdateProfile(ctx, creds.IDToken, name, avatar); err != nil {
		log.LogWarn("register_profile", err)
	} else {
		creds.Identity.DisplayName = updated.DisplayName
		creds.Identity.PhotoURL = updated.PhotoURL
	}

	if a.users != nil {
		now := a.now().UTC()
		profile := authdomain.Profile{
			Email:     creds.Identity.Email,
			Name:      name,
			PhotoURL:  avatar,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := a.users.Upsert(ctx, creds.Identity.UID, profile); err != nil {
			log.LogWarn("register_users_doc", err)
		}
	}

	if err := a.sessions.Save(ctx, sid, *creds); err != nil {
		return fail[authdomain.Identity](a, ctx, op, failure.New(failure.KindUnavailable, err), "")
	}
	return ok(creds.Identity)
}

func (a *Adapter) Login(ctx context.Context, sid string, in LoginInput) Result[authdomain.Identity] {
	const op = "login"
	email := strings.TrimSpace(in.Email)

	switch {
	case email == "":
		return fail[authdomain.Identity](a, ctx, op, failure.Validation("Please enter your email address"), "")
	case in.Password == "":
		return fail[authdomain.Identity](a, ctx, op, failure.Validation("Please enter your password"), "")
	}

	creds, err := a.identity.SignIn(ctx, email, in.Password)
	if err != nil {
		return fail[authdomain.Identity](a, ctx, op, err, "Failed to sign in")
	}

	if err := a.sessions.Save(ctx, sid, *creds); err != nil {
		return fail[authdomain.Identity](a, ctx, op, failure.New(failure.KindUnavailable, err), "")
	}
	return ok(creds.Identity)
}

// SignInAnonymously gives the browser session a platform-issued anonymous
// identity.
func (a *Adapter) SignInAnonymously(ctx context.Context, sid string) Result[authdomain.Identity] {
	const op = "sign_in_anonymously"

	creds, err := a.identity.SignInAnonymously(ctx)
	if err != nil {
		return fail[authdomain.Identity](a, ctx, op, err, "Failed to start a guest session")
	}
	if err := a.sessions.Save(ctx, sid, *creds); err != nil {
		return fail[authdomain.Identity](a, ctx, op, failure.New(failure.KindUnavailable, err), "")
	}
	return ok(creds.Identity)
}

// Logout clears the session's credentials and pushes a signed-out state.
func (a *Adapter) Logout(ctx context.Context, sid string) Result[struct{}] {
	if err := a.sessions.Delete(ctx, sid); err != nil {
		return fail[struct{}](a, ctx, "logout", failure.New(failure.KindUnavailable, err), "Failed to sign out")
	}
	return ok(struct{}{})
}

func (a *Adapter) ResetPassword(ctx context.Context, email string) Result[struct{}] {
	const op = "reset_password"
	email = strings.TrimSpace(email)
	if email == "" {
		return fail[struct{}](a, ctx, op, failure.Validation("Please enter your email address"), "")
	}

	if err := a.identity.SendPasswordReset(ctx, email); err != nil {
		return fail[struct{}](a, ctx, op, err, "Failed to send password reset email")
	}
	return ok(struct{}{})
}

type ProfileInput struct {
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url"`
}

// UpdateProfile changes the signed-in user's display name and photo and
// pushes the new identity to the session.
func (a *Adapter) UpdateProfile(ctx context.Context, sid string, in ProfileInput) Result[authdomain.Identity] {
	const op = "update_profile"
	name := strings.TrimSpace(in.DisplayName)
	if name == "" {
		return fail[authdomain.Identity](a, ctx, op, failure.Validation("Please enter your name"), "")
	}

	creds, err := a.sessions.Get(ctx, sid)
	if errors.Is(err, authdomain.ErrSessionNotFound) {
		return fail[authdomain.Identity](a, ctx, op, failure.New(failure.KindUnauthenticated, err), "")
	}
	if err != nil {
		return fail[authdomain.Identity](a, ctx, op, failure.New(failure.KindUnavailable, err), "")
	}

	photo := strings.TrimSpace(in.PhotoURL)
	if photo == "" {
		photo = creds.Identity.PhotoURL
	}
	updated, err := a.identity.UpdateProfile(ctx, creds.IDToken, name, photo)
	if err != nil {
		return fail[authdomain.Identity](a, ctx, op, err, "Failed to update profile")
	}

	creds.Identity.DisplayName = updated.DisplayName
	creds.Identity.PhotoURL = updated.PhotoURL
	if err := a.sessions.Save(ctx, sid, *creds); err != nil {
		return fail[authdomain.Identity](a, ctx, op, failure.New(failure.KindUnavailable, err), "")
	}
	return ok(creds.Identity)
}

// CurrentIdentity verifies a bearer ID token with the Admin SDK.
func (a *Adapter) CurrentIdentity(ctx context.Context, idToken string) Result[authdomain.Identity] {
	const op = "verify_id_token"
	if a.verifier == nil {
		return fail[authdomain.Identity](a, ctx, op, failure.New(failure.KindUnauthenticated, errors.New("token verification disabled")), "")
	}

	tok, err := a.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return fail[authdomain.Identity](a, ctx, op, failure.New(failure.KindUnauthenticated, fmt.Errorf("verify id token: %w", err)), "")
	}

	claim := func(key string) string {
		s, _ := tok.Claims[key].(string)
		return s
	}
	return ok(authdomain.Identity{
		UID:         tok.UID,
		Email:       claim("email"),
		DisplayName: claim("name"),
		PhotoURL:    claim("picture"),
		Anonymous:   tok.Firebase.SignInProvider == "anonymous",
	})
}
