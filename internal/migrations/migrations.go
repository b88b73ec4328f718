// Package migrations applies the embedded PostgreSQL schema with golang-migrate.
package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/JaimeStill/ministry-cms/pkg/database"
)

//go:embed sql/*.sql
var files embed.FS

// Files returns the embedded migration files rooted at the sql directory.
func Files() fs.FS {
	sub, err := fs.Sub(files, "sql")
	if err != nil {
		panic(err)
	}
	return sub
}

// Up returns a database.Migrator that brings the schema to the latest version.
// Migrations run over their own connection opened from cfg.
func Up(cfg *database.Config, logger *slog.Logger) database.Migrator {
	logger = logger.With("system", "migrations")

	return func(ctx context.Context) error {
		src, err := iofs.New(files, "sql")
		if err != nil {
			return fmt.Errorf("open migration source: %w", err)
		}

		m, err := migrate.NewWithSourceInstance("iofs", src, cfg.URL("pgx5"))
		if err != nil {
			return fmt.Errorf("open migrator: %w", err)
		}
		defer m.Close()

		done := make(chan struct{})
		defer close(done)
		go func() {
			select {
			case <-ctx.Done():
				m.GracefulStop <- true
			case <-done:
			}
		}()

		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("apply migrations: %w", err)
		}

		version, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("read migration version: %w", err)
		}
		logger.Info("schema up to date", "version", version, "dirty", dirty)
		return nil
	}
}
