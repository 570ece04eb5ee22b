package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FIREBASE_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "cyberhouse_sid", cfg.Session.CookieName)
	assert.Equal(t, 720*time.Hour, cfg.Session.TTL)
	assert.Equal(t, int64(50*1024*1024), cfg.Media.MaxBytes)
	assert.Equal(t, "firebase", cfg.Media.Backend)
	assert.Equal(t, "https://identitytoolkit.googleapis.com/v1", cfg.Firebase.AuthURL)
	assert.Empty(t, cfg.News.APIKey)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FIREBASE_API_KEY", "test-key")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("SESSION_RESOLVE_TIMEOUT", "750ms")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 750*time.Millisecond, cfg.Session.ResolveTimeout)
	assert.True(t, cfg.IsProduction())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080"},
			Firebase: FirebaseConfig{APIKey: "k"},
			Redis:    RedisConfig{Addr: "localhost:6379"},
			Session:  SessionConfig{TTL: time.Hour},
			Media:    MediaConfig{Backend: "firebase", MaxBytes: 1},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing api key", mutate: func(c *Config) { c.Firebase.APIKey = "" }, wantErr: "FIREBASE_API_KEY"},
		{name: "missing redis", mutate: func(c *Config) { c.Redis.Addr = "" }, wantErr: "REDIS_ADDR"},
		{name: "unknown backend", mutate: func(c *Config) { c.Media.Backend = "ftp" }, wantErr: "MEDIA_BACKEND"},
		{name: "s3 without bucket", mutate: func(c *Config) { c.Media.Backend = "s3" }, wantErr: "S3_BUCKET"},
		{name: "zero ttl", mutate: func(c *Config) { c.Session.TTL = 0 }, wantErr: "SESSION_TTL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
