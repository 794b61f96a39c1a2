package publish

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/stringjsx/pkg/render"
)

// PutObjectAPI is the part of *s3.Client that S3Store uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store publishes pages to an S3 bucket.
//
// Example usage:
//
//	client, err := publish.NewS3Client(ctx, publish.Config{Region: "eu-west-1"})
//	store := publish.NewS3Store(client, "my-site", "pages/", 0)
//	loc, err := store.Put(ctx, "index", html) // s3://my-site/pages/index.html
type S3Store struct {
	client  PutObjectAPI
	bucket  string
	prefix  string
	maxSize int64
}

// NewS3Store creates an S3 publish store.
//
// Parameters:
//   - client: *s3.Client or anything with its PutObject method
//   - bucket: S3 bucket name
//   - prefix: Key prefix for pages (e.g., "site/")
//   - maxSize: Maximum page size in bytes (0 = no limit)
func NewS3Store(client PutObjectAPI, bucket, prefix string, maxSize int64) *S3Store {
	return &S3Store{
		client:  client,
		bucket:  bucket,
		prefix:  prefix,
		maxSize: maxSize,
	}
}

// Put uploads the page with an HTML content type.
func (s *S3Store) Put(ctx context.Context, key string, html render.SafeHTML) (string, error) {
	if err := checkSize(html, s.maxSize); err != nil {
		return "", err
	}

	cleaned, err := CleanKey(key)
	if err != nil {
		return "", err
	}
	objectKey := s.prefix + cleaned

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(objectKey),
		Body:          strings.NewReader(string(html)),
		ContentLength: aws.Int64(int64(len(html))),
		ContentType:   aws.String(ContentType),
		Metadata: map[string]string{
			"rendered-at": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: s3 put %s: %v", ErrPublish, objectKey, err)
	}

	return "s3://" + s.bucket + "/" + objectKey, nil
}

// NewS3Client builds a client through the SDK's default chain: environment,
// shared config and credentials files, SSO, and instance or container
// roles. cfg.Region, when set, overrides the resolved region.
func NewS3Client(ctx context.Context, cfg Config) (*s3.Client, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("publish: load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}
