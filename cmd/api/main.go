package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cyberhouse-gh/cyberhouse-portal/config"
	articlesrepo "github.com/cyberhouse-gh/cyberhouse-portal/internal/articles/repository"
	authrepo "github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/repository"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/backend"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/bootstrap"
	contactrepo "github.com/cyberhouse-gh/cyberhouse-portal/internal/contact/repository"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/identity"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/logging"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/media/objectstore"
	mediarepo "github.com/cyberhouse-gh/cyberhouse-portal/internal/media/repository"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/news"
	projectsrepo "github.com/cyberhouse-gh/cyberhouse-portal/internal/projects/repository"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/session"
	sessionrepo "github.com/cyberhouse-gh/cyberhouse-portal/internal/session/repository"
)

const serviceName = "cyberhouse-portal"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(serviceName, cfg.App.LogLevel)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
	logger.Info().Msg("shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, logger *logging.Logger) error {
	fb, err := bootstrap.InitializeFirebase(ctx, &cfg.Firebase)
	if err != nil {
		return err
	}
	defer fb.Close()

	rdb, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	objects, err := objectStore(ctx, cfg, fb)
	if err != nil {
		return err
	}

	sessions := sessionrepo.NewSessionRepository(rdb, cfg.Session.TTL)
	idClient := identity.NewClient(identity.Config{
		APIKey:   cfg.Firebase.APIKey,
		AuthURL:  cfg.Firebase.AuthURL,
		TokenURL: cfg.Firebase.TokenURL,
		Timeout:  cfg.App.HTTPClientTimeout,
	})
	newsClient := news.NewClient(news.Config{
		APIKey:  cfg.News.APIKey,
		BaseURL: cfg.News.URL,
		Query:   cfg.News.Query,
		Timeout: cfg.App.HTTPClientTimeout,
	})
	if !newsClient.Configured() {
		logger.Warn().Msg("NEWS_API_KEY not set, live news feed disabled")
	}

	adapter := backend.New(backend.Deps{
		Identity:       idClient,
		Sessions:       sessions,
		Users:          authrepo.NewUserRepository(fb.Firestore),
		Articles:       articlesrepo.NewArticleRepository(fb.Firestore),
		Projects:       projectsrepo.NewProjectRepository(fb.Firestore),
		Media:          mediarepo.NewAssetRepository(fb.Firestore),
		Contact:        contactrepo.NewMessageRepository(fb.Firestore),
		Objects:        objects,
		Verifier:       fb.Auth,
		News:           newsClient,
		Log:            logger,
		MaxUploadBytes: cfg.Media.MaxBytes,
	})

	refresher := session.NewRefresher(sessions, idClient, cfg.Session.RefreshWindow, logger)
	scheduler, err := refresher.Schedule(cfg.Session.RefreshSchedule)
	if err != nil {
		return err
	}

	router, err := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,
		Adapter:     adapter,
		Sessions:    session.NewSource(sessions, logger),
		Session: session.MiddlewareConfig{
			CookieName:     cfg.Session.CookieName,
			MaxAge:         cfg.Session.TTL,
			ResolveTimeout: cfg.Session.ResolveTimeout,
			Secure:         cfg.IsProduction(),
		},
		Redis: sessions,
		Log:   logger,
	})
	if err != nil {
		return err
	}

	// Request contexts derive from ctx so open event streams end on shutdown.
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("port", cfg.Server.Port).Str("env", cfg.App.Environment).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		scheduler.Start()
		<-gctx.Done()
		<-scheduler.Stop().Done()
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func objectStore(ctx context.Context, cfg *config.Config, fb *bootstrap.Firebase) (objectstore.Store, error) {
	if strings.EqualFold(cfg.Media.Backend, "s3") {
		store, err := objectstore.NewS3Store(ctx, cfg.Media.S3Bucket, cfg.Media.S3Region, cfg.Media.S3PublicBaseURL)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	if fb.Bucket == nil {
		return nil, errors.New("FIREBASE_STORAGE_BUCKET is required when MEDIA_BACKEND=firebase")
	}
	return objectstore.NewFirebaseStore(fb.Bucket, fb.BucketName, cfg.Media.ChunkSize), nil
}
