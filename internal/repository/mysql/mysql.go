// Package mysql implements the resource stores on database/sql with the
// go-sql-driver/mysql driver, against the MySQL schema in db/.
package mysql

import (
	"context"
	"database/sql"
	"time"
)

type scanner interface {
	Scan(dest ...any) error
}

type scanFunc[T any] func(scanner) (T, error)

// withTx acquires a dedicated connection, runs fn in a transaction on it
// and releases the connection on every path.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true

	return nil
}

func queryAll[T any](ctx context.Context, db *sql.DB, scan scanFunc[T], query string, args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, rows.Err()
}

// queryOne returns nil without error when the query matches no row.
func queryOne[T any](ctx context.Context, db *sql.DB, scan scanFunc[T], query string, args ...any) (*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	item, err := scan(rows)
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func contains(term string) string {
	return "%" + term + "%"
}

func repeat(v any, n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func timePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	return &v.Time
}
