package objectstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store writes objects to an S3-compatible bucket.
type S3Store struct {
	client     s3API
	bucket     string
	publicBase string
}

func NewS3Store(ctx context.Context, bucket, region, publicBase string) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	if publicBase == "" {
		publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}
	return newS3Store(s3.NewFromConfig(cfg), bucket, publicBase), nil
}

func newS3Store(client s3API, bucket, publicBase string) *S3Store {
	return &S3Store{client: client, bucket: bucket, publicBase: strings.TrimRight(publicBase, "/")}
}

func (s *S3Store) Put(ctx context.Context, obj Object) (string, error) {
	body := &countingReader{r: obj.Body, fn: obj.Progress}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(obj.Path),
		Body:          body,
		ContentLength: aws.Int64(obj.Size),
		ContentType:   aws.String(obj.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", obj.Path, err)
	}
	return s.publicBase + "/" + obj.Path, nil
}
