package publish

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/stringjsx/pkg/render"
)

// DiskStore publishes pages below a local directory.
type DiskStore struct {
	dir     string
	maxSize int64
}

// NewDiskStore creates a DiskStore rooted at dir, creating it if needed.
//
// Parameters:
//   - dir: Root directory for published pages
//   - maxSize: Maximum page size in bytes (0 = no limit)
func NewDiskStore(dir string, maxSize int64) (*DiskStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: abs, maxSize: maxSize}, nil
}

// Dir returns the absolute store root.
func (s *DiskStore) Dir() string {
	return s.dir
}

// Put writes the page atomically: it lands in a temp file in the target
// directory first and is renamed into place.
func (s *DiskStore) Put(ctx context.Context, key string, html render.SafeHTML) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := checkSize(html, s.maxSize); err != nil {
		return "", err
	}

	path, err := s.path(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPublish, err)
	}

	tmp := filepath.Join(filepath.Dir(path), ".tmp-"+generateTempID())
	if err := os.WriteFile(tmp, []byte(html), 0644); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("%w: %v", ErrPublish, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("%w: %v", ErrPublish, err)
	}

	return path, nil
}

// path resolves key below the root.
func (s *DiskStore) path(key string) (string, error) {
	cleaned, err := CleanKey(key)
	if err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, filepath.FromSlash(cleaned))

	rel, err := filepath.Rel(s.dir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q leaves the store root", ErrInvalidKey, key)
	}
	return path, nil
}

// generateTempID generates a random temp file suffix.
func generateTempID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}
