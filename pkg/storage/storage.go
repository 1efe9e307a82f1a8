package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store saves uploaded files on local disk and serves them back under
// a public URL prefix (the HTTP layer mounts the directory as static).
type Store struct {
	basePath  string
	publicURL string
	maxSize   int64
}

// NewStore creates a local file store rooted at basePath. Files are
// addressable at publicURL + "/" + <relative path>.
func NewStore(basePath, publicURL string, maxSize int64) (*Store, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Store{
		basePath:  basePath,
		publicURL: strings.TrimRight(publicURL, "/"),
		maxSize:   maxSize,
	}, nil
}

// BasePath returns the directory the store writes into.
func (s *Store) BasePath() string {
	return s.basePath
}

// Save writes the content into folder with a random name preserving the
// original extension and returns the public URL.
func (s *Store) Save(folder, filename string, size int64, content io.Reader) (string, error) {
	if s.maxSize > 0 && size > s.maxSize {
		return "", fmt.Errorf("file exceeds maximum upload size of %d bytes", s.maxSize)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.New().String() + ext
	dir := filepath.Join(s.basePath, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return s.publicURL + "/" + folder + "/" + name, nil
}
