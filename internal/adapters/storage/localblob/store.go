package localblob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	portssvc "github.com/projectdesk/pma_backend/internal/core/ports/services"
)

// Store keeps blobs on the local filesystem under a root directory and
// serves them back through a base URL mounted by the HTTP server.
// Uploads to an existing key overwrite in place.
type Store struct {
	rootDir string
	baseURL string
}

// NewStore creates the root directory if needed.
func NewStore(rootDir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob root: %w", err)
	}
	return &Store{
		rootDir: rootDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

var _ portssvc.BlobStore = (*Store)(nil)

// Upload writes the reader's bytes under key. The write goes to a temp
// file first so a half-written blob never lands on the final path.
func (s *Store) Upload(ctx context.Context, key string, r io.Reader) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create blob dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create temp blob: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close blob: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to finalize blob: %w", err)
	}
	return nil
}

// DownloadURL returns the public URL for a key.
func (s *Store) DownloadURL(key string) string {
	return s.baseURL + "/" + key
}

// RootDir is the directory the HTTP server mounts as static files.
func (s *Store) RootDir() string {
	return s.rootDir
}

// resolve maps a key onto the root directory, rejecting traversal.
func (s *Store) resolve(key string) (string, error) {
	clean := filepath.Clean("/" + key)
	if strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	return filepath.Join(s.rootDir, clean), nil
}
