package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bakery/internal/dbx"
	"github.com/jmoiron/sqlx"
)

func init() {
	// modernc.org/sqlite registers itself as "sqlite", which sqlx does not
	// know about out of the box.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// SQLRepository keeps pairs in the kv table. Queries are written with '?'
// placeholders and rebound for the connection's driver.
type SQLRepository struct {
	db *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.GetContext(ctx, &value, r.db.Rebind(`SELECT value FROM kv WHERE key = ?`), key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, true, nil
}

func (r *SQLRepository) Set(ctx context.Context, key, value string) error {
	if err := r.upsert(ctx, r.db, key, value); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLRepository) upsert(ctx context.Context, db dbx.DBTX, key, value string) error {
	_, err := db.ExecContext(ctx, r.db.Rebind(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`), key, value)
	return err
}

func (r *SQLRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM kv WHERE key = ?`), key)
	if err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv`)
	if err != nil {
		return fmt.Errorf("failed to clear kv: %w", err)
	}
	return nil
}

type pair struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

func (r *SQLRepository) List(ctx context.Context) (map[string]string, error) {
	var rows []pair
	if err := r.db.SelectContext(ctx, &rows, `SELECT key, value FROM kv`); err != nil {
		return nil, fmt.Errorf("failed to list kv: %w", err)
	}

	result := make(map[string]string, len(rows))
	for _, p := range rows {
		result[p.Key] = p.Value
	}
	return result, nil
}

// Update reads and rewrites key inside one transaction. On PostgreSQL the
// row is locked with FOR UPDATE; SQLite serialises writers on its own.
func (r *SQLRepository) Update(ctx context.Context, key string, fn UpdateFunc) error {
	q := `SELECT value FROM kv WHERE key = ?`
	if sqlx.BindType(r.db.DriverName()) == sqlx.DOLLAR {
		q += ` FOR UPDATE`
	}
	q = r.db.Rebind(q)

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var current string
		ok := true
		err := tx.QueryRowContext(ctx, q, key).Scan(&current)
		if errors.Is(err, sql.ErrNoRows) {
			ok = false
		} else if err != nil {
			return err
		}

		next, err := fn(current, ok)
		if err != nil {
			return err
		}
		return r.upsert(ctx, tx, key, next)
	})
	if err != nil {
		return fmt.Errorf("failed to update kv[%s]: %w", key, err)
	}
	return nil
}
