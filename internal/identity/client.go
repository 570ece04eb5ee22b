// Package identity talks to the hosted authentication REST endpoints
// (Identity Toolkit and Secure Token) on behalf of a browser session.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/failure"
)

const (
	DefaultAuthURL  = "https://identitytoolkit.googleapis.com/v1"
	DefaultTokenURL = "https://securetoken.googleapis.com/v1"
)

type Config struct {
	APIKey   string
	AuthURL  string
	TokenURL string
	Timeout  time.Duration
}

type Client struct {
	auth   *resty.Client
	token  *resty.Client
	apiKey string
	now    func() time.Time
}

func NewClient(cfg Config) *Client {
	if cfg.AuthURL == "" {
		cfg.AuthURL = DefaultAuthURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = DefaultTokenURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	return &Client{
		auth: resty.New().
			SetBaseURL(strings.TrimRight(cfg.AuthURL, "/")).
			SetTimeout(cfg.Timeout),
		token: resty.New().
			SetBaseURL(strings.TrimRight(cfg.TokenURL, "/")).
			SetTimeout(cfg.Timeout),
		apiKey: cfg.APIKey,
		now:    time.Now,
	}
}

type passwordRequest struct {
	Email             string `json:"email,omitempty"`
	Password          string `json:"password,omitempty"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type accountResponse struct {
	LocalID        string `json:"localId"`
	Email          string `json:"email"`
	DisplayName    string `json:"displayName"`
	PhotoURL       string `json:"photoUrl"`
	ProfilePicture string `json:"profilePicture"`
	IDToken        string `json:"idToken"`
	RefreshToken   string `json:"refreshToken"`
	ExpiresIn      string `json:"expiresIn"`
}

type refreshResponse struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    string `json:"expires_in"`
	UserID       string `json:"user_id"`
}

// SignUp creates an email/password account and returns its first credentials.
func (c *Client) SignUp(ctx context.Context, email, password string) (*domain.Credentials, error) {
	var out accountResponse
	if err := c.post(ctx, "/accounts:signUp", passwordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}, &out); err != nil {
		return nil, err
	}
	return c.credentials(out, false), nil
}

// SignInAnonymously creates a platform-issued anonymous identity.
func (c *Client) SignInAnonymously(ctx context.Context) (*domain.Credentials, error) {
	var out accountResponse
	if err := c.post(ctx, "/accounts:signUp", passwordRequest{ReturnSecureToken: true}, &out); err != nil {
		return nil, err
	}
	return c.credentials(out, true), nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*domain.Credentials, error) {
	var out accountResponse
	if err := c.post(ctx, "/accounts:signInWithPassword", passwordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}, &out); err != nil {
		return nil, err
	}
	return c.credentials(out, false), nil
}

func (c *Client) SendPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}
	return c.post(ctx, "/accounts:sendOobCode", body, nil)
}

// UpdateProfile sets the display name and photo URL of the token's account.
func (c *Client) UpdateProfile(ctx context.Context, idToken, displayName, photoURL string) (*domain.Identity, error) {
	body := map[string]any{
		"idToken":           idToken,
		"displayName":       displayName,
		"photoUrl":          photoURL,
		"returnSecureToken": false,
	}

	var out accountResponse
	if err := c.post(ctx, "/accounts:update", body, &out); err != nil {
		return nil, err
	}
	return &domain.Identity{
		UID:         out.LocalID,
		Email:       out.Email,
		DisplayName: out.DisplayName,
		PhotoURL:    out.PhotoURL,
	}, nil
}

// Refresh exchanges a refresh token for a new ID token. The returned
// credentials carry only the UID; callers keep the rest of the identity.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*domain.Credentials, error) {
	resp, err := c.token.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetFormData(map[string]string{
			"grant_type":    "refresh_token",
			"refresh_token": refreshToken,
		}).
		Post("/token")
	if err != nil {
		return nil, failure.New(failure.KindUnavailable, fmt.Errorf("refresh request: %w", err))
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out refreshResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode refresh response: %w", err)
	}

	return &domain.Credentials{
		Identity:     domain.Identity{UID: out.UserID},
		IDToken:      out.IDToken,
		RefreshToken: out.RefreshToken,
		ExpiresAt:    c.expiry(out.IDToken, out.ExpiresIn),
	}, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	resp, err := c.auth.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", c.apiKey).
		SetBody(body).
		Post(path)
	if err != nil {
		return failure.New(failure.KindUnavailable, fmt.Errorf("%s request: %w", path, err))
	}
	if err := mapHTTPError(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) credentials(out accountResponse, anonymous bool) *domain.Credentials {
	photo := out.PhotoURL
	if photo == "" {
		photo = out.ProfilePicture
	}
	return &domain.Credentials{
		Identity: domain.Identity{
			UID:         out.LocalID,
			Email:       out.Email,
			DisplayName: out.DisplayName,
			PhotoURL:    photo,
			Anonymous:   anonymous,
		},
		IDToken:      out.IDToken,
		RefreshToken: out.RefreshToken,
		ExpiresAt:    c.expiry(out.IDToken, out.ExpiresIn),
	}
}

// expiry prefers the token's own exp claim and falls back to expiresIn.
func (c *Client) expiry(idToken, expiresIn string) time.Time {
	if exp, ok := TokenExpiry(idToken); ok {
		return exp
	}
	secs, err := strconv.Atoi(expiresIn)
	if err != nil || secs <= 0 {
		secs = 3600
	}
	return c.now().Add(time.Duration(secs) * time.Second)
}

// TokenExpiry reads the exp claim of a JWT without verifying it.
func TokenExpiry(idToken string) (time.Time, bool) {
	if idToken == "" {
		return time.Time{}, false
	}
	token, _, err := jwt.NewParser().ParseUnverified(idToken, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
