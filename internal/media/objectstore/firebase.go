package objectstore

import (
	"context"
	"fmt"
	"io"
	"net/url"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// downloadTokenKey is the metadata key Firebase Storage reads download
// tokens from.
const downloadTokenKey = "firebaseStorageDownloadTokens"

const DefaultChunkSize = 256 * 1024

// FirebaseStore writes objects to the project's Firebase Storage bucket in
// resumable chunks.
type FirebaseStore struct {
	bucket     *gcs.BucketHandle
	bucketName string
	chunkSize  int
}

func NewFirebaseStore(bucket *gcs.BucketHandle, bucketName string, chunkSize int) *FirebaseStore {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &FirebaseStore{bucket: bucket, bucketName: bucketName, chunkSize: chunkSize}
}

func (s *FirebaseStore) Put(ctx context.Context, obj Object) (string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	token := uuid.NewString()
	w := s.bucket.Object(obj.Path).NewWriter(ctx)
	w.ContentType = obj.ContentType
	w.ChunkSize = s.chunkSize
	w.Metadata = map[string]string{downloadTokenKey: token}
	if obj.Progress != nil {
		w.ProgressFunc = obj.Progress
	}

	if _, err := io.Copy(w, obj.Body); err != nil {
		cancel()
		_ = w.Close()
		return "", fmt.Errorf("upload %s: %w", obj.Path, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize %s: %w", obj.Path, err)
	}

	return DownloadURL(s.bucketName, obj.Path, token), nil
}

// DownloadURL builds the tokenized Firebase Storage download URL.
func DownloadURL(bucket, path, token string) string {
	return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		bucket, url.PathEscape(path), url.QueryEscape(token))
}
