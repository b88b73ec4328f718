package infrastructure_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JaimeStill/ministry-cms/internal/config"
	"github.com/JaimeStill/ministry-cms/internal/infrastructure"
	"github.com/JaimeStill/ministry-cms/pkg/database"
)

func newInfra(t *testing.T) *infrastructure.Infrastructure {
	t.Helper()
	t.Setenv("STORAGE_BASE_PATH", t.TempDir())
	t.Setenv("LOGGING_LEVEL", "error")
	t.Setenv("DATABASE_HOST", "127.0.0.1")
	t.Setenv("DATABASE_PORT", "1")
	t.Setenv("DATABASE_CONN_TIMEOUT", "1s")

	cfg, err := config.LoadFile(t.TempDir() + "/config.toml")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	infra, err := infrastructure.New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return infra
}

func TestCheck(t *testing.T) {
	infra := newInfra(t)

	if err := infra.Check(context.Background()); !errors.Is(err, infrastructure.ErrStarting) {
		t.Errorf("Check() before start = %v, want ErrStarting", err)
	}

	if err := infra.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer infra.Lifecycle.Shutdown(5 * time.Second)
	infra.Lifecycle.WaitForStartup()

	if err := infra.Check(context.Background()); !errors.Is(err, database.ErrNotReady) {
		t.Errorf("Check() with unreachable database = %v, want ErrNotReady", err)
	}
}
