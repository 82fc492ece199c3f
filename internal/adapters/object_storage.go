package adapters

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ObjectStorage stores uploaded attachments and returns their public URL.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data io.Reader) (string, error)
}

// LocalObjectStorage is a filesystem implementation of ObjectStorage,
// writing objects beneath a configured directory and serving them from a
// configured base URL.
type LocalObjectStorage struct {
	dir     string
	baseURL string
	logger  *zap.Logger
}

// NewLocalObjectStorage creates the storage directory if needed and returns
// a new LocalObjectStorage.
func NewLocalObjectStorage(dir, baseURL string, logger *zap.Logger) (*LocalObjectStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory %s: %w", dir, err)
	}
	return &LocalObjectStorage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}, nil
}

// Put writes the object under the given key. Keys are flat: path separators
// and traversal sequences are rejected.
func (s *LocalObjectStorage) Put(ctx context.Context, key string, data io.Reader) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, key)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating object file: %w", err)
	}
	defer file.Close()

	written, err := io.Copy(file, data)
	if err != nil {
		// Leave no partial object behind.
		_ = os.Remove(path)
		return "", fmt.Errorf("writing object %s: %w", key, err)
	}

	s.logger.Info("attachment stored",
		zap.String("key", key),
		zap.Int64("bytes", written))
	return s.baseURL + "/" + key, nil
}
