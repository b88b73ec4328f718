// Package database owns the PostgreSQL connection pool and ties it to the
// service lifecycle.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/ministry-cms/pkg/lifecycle"
)

// ErrNotReady is returned when the database is used before its startup hook succeeded.
var ErrNotReady = errors.New("database not ready")

// Migrator brings the schema up to date. It runs after the first successful ping.
type Migrator func(ctx context.Context) error

// System exposes the connection pool.
type System interface {
	Connection() *sql.DB
	Ping(ctx context.Context) error
	Start(lc *lifecycle.Coordinator) error
}

type database struct {
	conn    *sql.DB
	cfg     *Config
	migrate Migrator
	logger  *slog.Logger
}

// New opens a pool with the pgx driver. The connection is verified and
// migrations applied by the startup hook registered in Start. migrate may be nil.
func New(cfg *Config, migrate Migrator, logger *slog.Logger) (System, error) {
	conn, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &database{
		conn:    conn,
		cfg:     cfg,
		migrate: migrate,
		logger:  logger.With("system", "database"),
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

func (d *database) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.ConnTimeoutDuration())
	defer cancel()

	if err := d.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrNotReady, err)
	}
	return nil
}

func (d *database) Start(lc *lifecycle.Coordinator) error {
	d.logger.Info("starting database connection", "host", d.cfg.Host, "name", d.cfg.Name)

	lc.OnStartup(func() {
		if err := d.Ping(lc.Context()); err != nil {
			d.logger.Error("database ping failed", "error", err)
			return
		}
		if d.migrate != nil {
			if err := d.migrate(lc.Context()); err != nil {
				d.logger.Error("database migration failed", "error", err)
				return
			}
		}
		d.logger.Info("database connection established")
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		d.logger.Info("closing database connection")
		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close failed", "error", err)
			return
		}
		d.logger.Info("database connection closed")
	})

	return nil
}
