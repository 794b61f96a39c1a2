package publish

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/vango-dev/stringjsx/pkg/render"
)

// Common errors.
var (
	// ErrInvalidKey is returned for keys that are empty, absolute or climb
	// out of the store root.
	ErrInvalidKey = errors.New("publish: invalid key")

	// ErrPublish is returned when the backend rejects a write.
	ErrPublish = errors.New("publish: write failed")

	// ErrTooLarge is returned when a page exceeds Config.MaxSize.
	ErrTooLarge = errors.New("publish: page too large")
)

// ContentType is attached to every published page.
const ContentType = "text/html; charset=utf-8"

// Store is the interface for publish backends.
type Store interface {
	// Put writes html under key and returns where it landed: a file path
	// for disk stores, an s3:// URL for object stores.
	Put(ctx context.Context, key string, html render.SafeHTML) (location string, err error)
}

// Backends.
const (
	BackendDisk = "disk"
	BackendS3   = "s3"
)

// Config selects and configures a backend.
type Config struct {
	// Backend is "disk" (default) or "s3".
	Backend string `json:"backend,omitempty" yaml:"backend,omitempty"`

	// Dir is the disk store root.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`

	Bucket string `json:"bucket,omitempty" yaml:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`

	Region string `json:"region,omitempty" yaml:"region,omitempty"`

	// Endpoint overrides the S3 endpoint, e.g. for MinIO.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	UsePathStyle bool `json:"usePathStyle,omitempty" yaml:"usePathStyle,omitempty"`

	// MaxSize bounds a page in bytes (0 = no limit).
	MaxSize int64 `json:"maxSize,omitempty" yaml:"maxSize,omitempty"`
}

// Open builds the Store described by cfg. ctx bounds loading AWS
// configuration for the s3 backend.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case "", BackendDisk:
		dir := cfg.Dir
		if dir == "" {
			dir = "public"
		}
		return NewDiskStore(dir, cfg.MaxSize)
	case BackendS3:
		if cfg.Bucket == "" {
			return nil, fmt.Errorf("publish: s3 backend needs a bucket")
		}
		client, err := NewS3Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewS3Store(client, cfg.Bucket, cfg.Prefix, cfg.MaxSize), nil
	default:
		return nil, fmt.Errorf("publish: unknown backend %q", cfg.Backend)
	}
}

// CleanKey validates key and normalizes it to a slash-separated relative
// path. Keys without an extension get ".html".
func CleanKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || strings.ContainsRune(key, '\\') || strings.ContainsRune(key, 0) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if strings.HasPrefix(key, "/") {
		return "", fmt.Errorf("%w: %q is absolute", ErrInvalidKey, key)
	}
	for _, seg := range strings.Split(key, "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %q leaves the store root", ErrInvalidKey, key)
		}
	}

	cleaned := path.Clean(key)
	if cleaned == "." || strings.HasSuffix(key, "/") {
		return "", fmt.Errorf("%w: %q names a directory", ErrInvalidKey, key)
	}
	if path.Ext(cleaned) == "" {
		cleaned += ".html"
	}
	return cleaned, nil
}

func checkSize(html render.SafeHTML, maxSize int64) error {
	if maxSize > 0 && int64(len(html)) > maxSize {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, len(html), maxSize)
	}
	return nil
}
