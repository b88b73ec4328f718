// Package repository holds the database/sql helpers shared by domain repositories.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint failures.
const uniqueViolation = "23505"

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Querier is satisfied by *sql.DB and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ScanFunc reads one row into T.
type ScanFunc[T any] func(Scanner) (T, error)

// QueryOne runs q and scans exactly one row. No row yields sql.ErrNoRows.
func QueryOne[T any](ctx context.Context, q Querier, query string, args []any, scan ScanFunc[T]) (T, error) {
	return scan(q.QueryRowContext(ctx, query, args...))
}

// QueryMany runs q and scans every row. An empty result is an empty, non-nil slice.
func QueryMany[T any](ctx context.Context, q Querier, query string, args []any, scan ScanFunc[T]) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// ExecExpectOne runs a statement that must affect exactly one row.
// Zero affected rows yields sql.ErrNoRows.
func ExecExpectOne(ctx context.Context, q Querier, query string, args ...any) error {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	switch {
	case n == 0:
		return sql.ErrNoRows
	case n > 1:
		return fmt.Errorf("expected 1 row affected, got %d", n)
	}
	return nil
}

// WithTx runs fn inside a transaction, committing on success and rolling back on error.
func WithTx[T any](ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) (T, error)) (T, error) {
	var zero T

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zero, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := fn(tx)
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(); err != nil {
		return zero, fmt.Errorf("commit transaction: %w", err)
	}
	return result, nil
}

// MapError translates driver errors into domain errors. sql.ErrNoRows becomes
// notFound and unique violations become duplicate. Anything else is returned as is.
func MapError(err, notFound, duplicate error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return duplicate
	}
	return err
}
