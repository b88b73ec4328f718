// Package infrastructure builds the systems shared by every module: the
// lifecycle coordinator, the root logger, PostgreSQL with its migrations,
// and blob storage.
package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/ministry-cms/internal/config"
	"github.com/JaimeStill/ministry-cms/internal/migrations"
	"github.com/JaimeStill/ministry-cms/pkg/database"
	"github.com/JaimeStill/ministry-cms/pkg/lifecycle"
	"github.com/JaimeStill/ministry-cms/pkg/logging"
	"github.com/JaimeStill/ministry-cms/pkg/storage"
)

// ErrStarting is reported by Check until every startup hook has returned.
var ErrStarting = errors.New("service starting")

type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
}

// New wires the shared systems. The root logger carries the service version.
// Nothing connects or touches disk until Start.
func New(cfg *config.Config) (*Infrastructure, error) {
	logger := logging.New(&cfg.Logging).With("version", cfg.Version)

	db, err := database.New(&cfg.Database, migrations.Up(&cfg.Database, logger), logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Database:  db,
		Storage:   store,
	}, nil
}

// Start registers startup and shutdown hooks. Storage starts after the
// database so a failed connection is logged first.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := i.Storage.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}
	return nil
}

// Check reports whether the service can take traffic: startup has finished
// and the database answers a ping.
func (i *Infrastructure) Check(ctx context.Context) error {
	if !i.Lifecycle.Ready() {
		return ErrStarting
	}
	return i.Database.Ping(ctx)
}
