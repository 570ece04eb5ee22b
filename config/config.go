package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Firebase FirebaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	Media    MediaConfig
	News     NewsConfig
	App      AppConfig
}

type ServerConfig struct {
	Port        string   `env:"PORT" envDefault:"8080"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

type FirebaseConfig struct {
	CredentialsPath string `env:"FIREBASE_CREDENTIALS_PATH"`
	ProjectID       string `env:"FIREBASE_PROJECT_ID"`
	APIKey          string `env:"FIREBASE_API_KEY"`
	StorageBucket   string `env:"FIREBASE_STORAGE_BUCKET"`
	AuthURL         string `env:"FIREBASE_AUTH_URL" envDefault:"https://identitytoolkit.googleapis.com/v1"`
	TokenURL        string `env:"FIREBASE_TOKEN_URL" envDefault:"https://securetoken.googleapis.com/v1"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type SessionConfig struct {
	CookieName      string        `env:"SESSION_COOKIE" envDefault:"cyberhouse_sid"`
	TTL             time.Duration `env:"SESSION_TTL" envDefault:"720h"`
	ResolveTimeout  time.Duration `env:"SESSION_RESOLVE_TIMEOUT" envDefault:"2s"`
	RefreshSchedule string        `env:"SESSION_REFRESH_SCHEDULE" envDefault:"@every 1m"`
	RefreshWindow   time.Duration `env:"SESSION_REFRESH_WINDOW" envDefault:"5m"`
}

type MediaConfig struct {
	Backend         string `env:"MEDIA_BACKEND" envDefault:"firebase"`
	MaxBytes        int64  `env:"MEDIA_MAX_BYTES" envDefault:"52428800"`
	ChunkSize       int    `env:"MEDIA_CHUNK_SIZE" envDefault:"262144"`
	S3Bucket        string `env:"S3_BUCKET"`
	S3Region        string `env:"S3_REGION" envDefault:"us-east-1"`
	S3PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`
}

type NewsConfig struct {
	APIKey string `env:"NEWS_API_KEY"`
	URL    string `env:"NEWS_API_URL" envDefault:"https://newsapi.org"`
	Query  string `env:"NEWS_QUERY" envDefault:"cybersecurity tips AND security"`
}

type AppConfig struct {
	Environment       string        `env:"APP_ENV" envDefault:"development"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	Version           string        `env:"APP_VERSION" envDefault:"1.0.0"`
	HTTPClientTimeout time.Duration `env:"HTTP_CLIENT_TIMEOUT" envDefault:"15s"`
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Firebase.APIKey == "" {
		return fmt.Errorf("FIREBASE_API_KEY is required")
	}

	if c.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}

	switch strings.ToLower(c.Media.Backend) {
	case "firebase":
	case "s3":
		if c.Media.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required when MEDIA_BACKEND=s3")
		}
	default:
		return fmt.Errorf("MEDIA_BACKEND must be firebase or s3, got %q", c.Media.Backend)
	}

	if c.Media.MaxBytes <= 0 {
		return fmt.Errorf("MEDIA_MAX_BYTES must be positive")
	}

	return nil
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
