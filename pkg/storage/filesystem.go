package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/JaimeStill/ministry-cms/pkg/lifecycle"
)

// filesystem stores blobs as files under basePath, with keys mapping
// directly to slash-separated relative paths.
type filesystem struct {
	basePath  string
	publicURL string
	maxSize   int64
	logger    *slog.Logger
}

// New creates a filesystem storage system. The base directory is created
// by the startup hook registered in Start.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	if cfg.BasePath == "" {
		return nil, fmt.Errorf("base_path required")
	}

	absPath, err := filepath.Abs(cfg.BasePath)
	if err != nil {
		return nil, fmt.Errorf("resolve base_path: %w", err)
	}

	return &filesystem{
		basePath:  absPath,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		maxSize:   cfg.MaxUploadSizeBytes(),
		logger:    logger.With("system", "storage"),
	}, nil
}

func (f *filesystem) Start(lc *lifecycle.Coordinator) error {
	f.logger.Info("starting storage system", "base_path", f.basePath)

	lc.OnStartup(func() {
		if err := os.MkdirAll(f.basePath, 0755); err != nil {
			f.logger.Error("storage initialization failed", "error", err)
			return
		}
		f.logger.Info("storage directory initialized")
	})

	return nil
}

func (f *filesystem) Store(ctx context.Context, key string, data []byte) error {
	path, err := f.fullPath(key)
	if err != nil {
		return err
	}
	if f.maxSize > 0 && int64(len(data)) > f.maxSize {
		return fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	f.logger.Debug("blob stored", "key", key, "bytes", len(data))
	return nil
}

func (f *filesystem) Retrieve(ctx context.Context, key string) ([]byte, error) {
	path, err := f.fullPath(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mapFSError(err, "read file")
	}

	return data, nil
}

func (f *filesystem) Delete(ctx context.Context, key string) error {
	path, err := f.fullPath(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return mapFSError(err, "remove file")
	}

	f.pruneEmpty(filepath.Dir(path))
	return nil
}

func (f *filesystem) Validate(ctx context.Context, key string) (bool, error) {
	path, err := f.fullPath(key)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, mapFSError(err, "stat file")
	}

	return !info.IsDir(), nil
}

func (f *filesystem) Path(ctx context.Context, key string) (string, error) {
	return f.fullPath(key)
}

func (f *filesystem) URL(key string) string {
	segments := strings.Split(strings.TrimPrefix(key, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return f.publicURL + "/" + strings.Join(segments, "/")
}

// pruneEmpty removes empty directories between dir and the base path.
func (f *filesystem) pruneEmpty(dir string) {
	for dir != f.basePath && strings.HasPrefix(dir, f.basePath+string(filepath.Separator)) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			f.logger.Warn("failed to read directory for cleanup", "dir", dir, "error", err)
			return
		}
		if len(entries) > 0 {
			return
		}
		if err := os.Remove(dir); err != nil && !errors.Is(err, fs.ErrNotExist) {
			f.logger.Warn("failed to remove empty directory", "dir", dir, "error", err)
			return
		}
		dir = filepath.Dir(dir)
	}
}

func (f *filesystem) fullPath(key string) (string, error) {
	if key == "" || strings.ContainsRune(key, 0) {
		return "", ErrInvalidKey
	}

	cleaned := filepath.Clean(filepath.FromSlash(key))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", ErrInvalidKey
	}

	fullPath := filepath.Join(f.basePath, cleaned)
	if !strings.HasPrefix(fullPath, f.basePath+string(filepath.Separator)) {
		return "", ErrInvalidKey
	}

	return fullPath, nil
}

func mapFSError(err error, op string) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
