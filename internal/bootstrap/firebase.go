package bootstrap

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"

	"github.com/cyberhouse-gh/cyberhouse-portal/config"
)

var firebaseScopes = []string{
	"https://www.googleapis.com/auth/cloud-platform",
	"https://www.googleapis.com/auth/datastore",
	"https://www.googleapis.com/auth/devstorage.full_control",
	"https://www.googleapis.com/auth/firebase",
	"https://www.googleapis.com/auth/identitytoolkit",
	"https://www.googleapis.com/auth/userinfo.email",
}

// Firebase holds the Admin SDK clients. Bucket is nil when no storage
// bucket is configured.
type Firebase struct {
	App        *firebase.App
	Auth       *auth.Client
	Firestore  *firestore.Client
	Bucket     *gcs.BucketHandle
	BucketName string
}

// InitializeFirebase builds the Admin SDK app from a credentials file, or
// from Application Default Credentials when no file is configured.
func InitializeFirebase(ctx context.Context, cfg *config.FirebaseConfig) (*Firebase, error) {
	opt, err := credentialsOption(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Auth client: %w", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	fb := &Firebase{App: app, Auth: authClient, Firestore: fs}
	if cfg.StorageBucket == "" {
		return fb, nil
	}

	storageClient, err := app.Storage(ctx)
	if err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("failed to get Storage client: %w", err)
	}
	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("failed to open storage bucket: %w", err)
	}
	fb.Bucket = bucket
	fb.BucketName = cfg.StorageBucket
	return fb, nil
}

func (f *Firebase) Close() error {
	return f.Firestore.Close()
}

func credentialsOption(ctx context.Context, cfg *config.FirebaseConfig) (option.ClientOption, error) {
	if cfg.CredentialsPath != "" {
		return option.WithCredentialsFile(cfg.CredentialsPath), nil
	}

	creds, err := google.FindDefaultCredentials(ctx, firebaseScopes...)
	if err != nil {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_PATH is not set and no default credentials found: %w", err)
	}
	if creds.JSON != nil {
		return option.WithCredentialsJSON(creds.JSON), nil
	}
	return option.WithCredentials(creds), nil
}
