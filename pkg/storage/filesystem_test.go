package storage_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/JaimeStill/ministry-cms/pkg/lifecycle"
	"github.com/JaimeStill/ministry-cms/pkg/storage"
)

func newStore(t *testing.T) (storage.System, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := &storage.Config{BasePath: dir}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sys, err := storage.New(cfg, logger)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return sys, dir
}

func TestNew_RequiresBasePath(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if _, err := storage.New(&storage.Config{}, logger); err == nil {
		t.Error("New() with empty base path should fail")
	}
}

func TestFilesystem_StoreRetrieve(t *testing.T) {
	sys, dir := newStore(t)
	ctx := context.Background()

	key := "article-images/one/two.png"
	if err := sys.Store(ctx, key, []byte("first")); err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	if err := sys.Store(ctx, key, []byte("second")); err != nil {
		t.Fatalf("Store() overwrite error = %v", err)
	}

	got, err := sys.Retrieve(ctx, key)
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Retrieve() = %q, want %q", got, "second")
	}

	entries, err := os.ReadDir(filepath.Join(dir, "article-images", "one"))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, want 1 (no temp files left)", len(entries))
	}

	ok, err := sys.Validate(ctx, key)
	if err != nil || !ok {
		t.Errorf("Validate() = %v, %v; want true, nil", ok, err)
	}

	path, err := sys.Path(ctx, key)
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if want := filepath.Join(dir, "article-images", "one", "two.png"); path != want {
		t.Errorf("Path() = %q, want %q", path, want)
	}
}

func TestFilesystem_Missing(t *testing.T) {
	sys, _ := newStore(t)
	ctx := context.Background()

	if _, err := sys.Retrieve(ctx, "missing.png"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Retrieve() error = %v, want ErrNotFound", err)
	}

	ok, err := sys.Validate(ctx, "missing.png")
	if err != nil || ok {
		t.Errorf("Validate() = %v, %v; want false, nil", ok, err)
	}

	if err := sys.Delete(ctx, "missing.png"); err != nil {
		t.Errorf("Delete() of missing key error = %v", err)
	}
}

func TestFilesystem_DeletePrunesDirectories(t *testing.T) {
	sys, dir := newStore(t)
	ctx := context.Background()

	if err := sys.Store(ctx, "a/b/c.png", []byte("x")); err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	if err := sys.Delete(ctx, "a/b/c.png"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "a")); !os.IsNotExist(err) {
		t.Errorf("empty parent directories should be removed, stat error = %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("base directory should remain, stat error = %v", err)
	}
}

func TestFilesystem_InvalidKeys(t *testing.T) {
	sys, _ := newStore(t)
	ctx := context.Background()

	keys := []string{
		"",
		".",
		"../escape.png",
		"a/../../escape.png",
		"/etc/passwd",
		"bad\x00key",
	}

	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			if err := sys.Store(ctx, key, []byte("x")); !errors.Is(err, storage.ErrInvalidKey) {
				t.Errorf("Store(%q) error = %v, want ErrInvalidKey", key, err)
			}
			if _, err := sys.Retrieve(ctx, key); !errors.Is(err, storage.ErrInvalidKey) {
				t.Errorf("Retrieve(%q) error = %v, want ErrInvalidKey", key, err)
			}
		})
	}
}

func TestFilesystem_URL(t *testing.T) {
	sys, _ := newStore(t)

	tests := []struct {
		key  string
		want string
	}{
		{"article-images/abc.png", "/api/blobs/article-images/abc.png"},
		{"docs/my file.png", "/api/blobs/docs/my%20file.png"},
		{"/leading.png", "/api/blobs/leading.png"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := sys.URL(tt.key); got != tt.want {
				t.Errorf("URL(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestFilesystem_StartCreatesBase(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "blobs")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sys, err := storage.New(&storage.Config{BasePath: base}, logger)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	lc := lifecycle.New()
	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	lc.WaitForStartup()

	info, err := os.Stat(base)
	if err != nil {
		t.Fatalf("base directory missing: %v", err)
	}
	if !info.IsDir() {
		t.Error("base path should be a directory")
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_STORAGE_MAX", "2MiB")

	cfg := &storage.Config{PublicURL: "/files/"}
	if err := cfg.Finalize(&storage.Env{MaxUploadSize: "TEST_STORAGE_MAX"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.BasePath != ".data/blobs" {
		t.Errorf("BasePath = %q, want default", cfg.BasePath)
	}
	if cfg.PublicURL != "/files" {
		t.Errorf("PublicURL = %q, want trailing slash trimmed", cfg.PublicURL)
	}
	if got := cfg.MaxUploadSizeBytes(); got != 2<<20 {
		t.Errorf("MaxUploadSizeBytes() = %d, want %d", got, 2<<20)
	}

	bad := &storage.Config{MaxUploadSize: "lots"}
	if err := bad.Finalize(nil); err == nil {
		t.Error("Finalize() with invalid size should fail")
	}
}

func TestFilesystem_StoreTooLarge(t *testing.T) {
	cfg := &storage.Config{BasePath: t.TempDir(), MaxUploadSize: "1KiB"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	sys, err := storage.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := context.Background()
	if err := sys.Store(ctx, "article-images/big.png", make([]byte, 1025)); !errors.Is(err, storage.ErrTooLarge) {
		t.Errorf("Store() error = %v, want ErrTooLarge", err)
	}
	if err := sys.Store(ctx, "article-images/fits.png", make([]byte, 1024)); err != nil {
		t.Errorf("Store() at limit error = %v", err)
	}
}
