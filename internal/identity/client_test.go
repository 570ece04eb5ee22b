package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/failure"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "uid-1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func writeVendorError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"code": 400, "message": message},
	})
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{APIKey: "api-key", AuthURL: srv.URL, TokenURL: srv.URL, Timeout: 2 * time.Second})
}

func TestSignUp_Success(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, exp)

	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts:signUp", r.URL.Path)
		assert.Equal(t, "api-key", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"localId":      "uid-1",
			"email":        "ama@example.com",
			"idToken":      token,
			"refreshToken": "refresh-1",
			"expiresIn":    "3600",
		})
	})

	creds, err := client.SignUp(context.Background(), "ama@example.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "ama@example.com", gotBody["email"])
	assert.Equal(t, true, gotBody["returnSecureToken"])
	assert.Equal(t, "uid-1", creds.Identity.UID)
	assert.Equal(t, "refresh-1", creds.RefreshToken)
	assert.True(t, creds.ExpiresAt.Equal(exp), "expiry should come from the exp claim")
}

func TestSignIn_VendorCodes(t *testing.T) {
	tests := []struct {
		message string
		want    failure.Kind
		text    string
	}{
		{"EMAIL_NOT_FOUND", failure.KindUserNotFound, "No account found with this email. Please register first."},
		{"INVALID_PASSWORD", failure.KindWrongPassword, "Incorrect password. Please try again."},
		{"USER_DISABLED : The user account has been disabled by an administrator.", failure.KindUserDisabled, ""},
		{"TOO_MANY_ATTEMPTS_TRY_LATER : Access to this account has been temporarily disabled", failure.KindTooManyRequests, ""},
		{"SOMETHING_NEW", failure.KindUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/accounts:signInWithPassword", r.URL.Path)
				writeVendorError(w, tt.message)
			})

			creds, err := client.SignIn(context.Background(), "nobody@example.com", "secret123")
			require.Error(t, err)
			assert.Nil(t, creds)

			fe := failure.From(err)
			assert.Equal(t, tt.want, fe.Kind)
			if tt.text != "" {
				assert.Equal(t, tt.text, fe.Message)
			}
		})
	}
}

func TestSignUp_WeakPasswordWithDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeVendorError(w, "WEAK_PASSWORD : Password should be at least 6 characters")
	})

	_, err := client.SignUp(context.Background(), "ama@example.com", "123")
	fe := failure.From(err)
	assert.Equal(t, failure.KindWeakPassword, fe.Kind)
	assert.Equal(t, "WEAK_PASSWORD", fe.Code)
}

func TestServerErrorWithoutEnvelopeIsUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := client.SendPasswordReset(context.Background(), "ama@example.com")
	assert.Equal(t, failure.KindUnavailable, failure.From(err).Kind)
}

func TestTransportErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(Config{APIKey: "k", AuthURL: url, Timeout: time.Second})
	_, err := client.SignIn(context.Background(), "a@example.com", "secret123")
	assert.Equal(t, failure.KindUnavailable, failure.From(err).Kind)
}

func TestSendPasswordReset(t *testing.T) {
	var got map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts:sendOobCode", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"email":"ama@example.com"}`))
	})

	require.NoError(t, client.SendPasswordReset(context.Background(), "ama@example.com"))
	assert.Equal(t, "PASSWORD_RESET", got["requestType"])
	assert.Equal(t, "ama@example.com", got["email"])
}

func TestUpdateProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts:update", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "id-token", body["idToken"])
		_ = json.NewEncoder(w).Encode(map[string]any{
			"localId":     "uid-1",
			"email":       "ama@example.com",
			"displayName": body["displayName"],
			"photoUrl":    body["photoUrl"],
		})
	})

	id, err := client.UpdateProfile(context.Background(), "id-token", "Ama Owusu", "https://img.example/a.png")
	require.NoError(t, err)
	assert.Equal(t, "Ama Owusu", id.DisplayName)
	assert.Equal(t, "https://img.example/a.png", id.PhotoURL)
}

func TestRefresh(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		if r.PostForm.Get("refresh_token") != "good" {
			writeVendorError(w, "INVALID_REFRESH_TOKEN")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id_token":      "opaque",
			"refresh_token": "good-2",
			"expires_in":    "3600",
			"user_id":       "uid-1",
		})
	})
	client.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	creds, err := client.Refresh(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "good-2", creds.RefreshToken)
	assert.Equal(t, "uid-1", creds.Identity.UID)
	assert.Equal(t, time.Date(2026, 1, 1, 1, 0, 0, 0, time.UTC), creds.ExpiresAt)

	_, err = client.Refresh(context.Background(), "revoked")
	assert.Equal(t, failure.KindUnauthenticated, failure.From(err).Kind)
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	got, ok := TokenExpiry(signedToken(t, exp))
	require.True(t, ok)
	assert.True(t, got.Equal(exp))

	_, ok = TokenExpiry("not-a-jwt")
	assert.False(t, ok)
}
