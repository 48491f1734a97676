package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bakery/internal/client/migrations"
	"github.com/dmitrijs2005/bakery/internal/filex"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

func gooseDialect(driver string) (goose.Dialect, error) {
	switch driver {
	case DriverSQLite:
		return goose.DialectSQLite3, nil
	case DriverPostgres:
		return goose.DialectPostgres, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// RunMigrations applies the embedded schema migrations. It is safe to run
// on an already migrated database.
func RunMigrations(ctx context.Context, db *sqlx.DB) error {
	dialect, err := gooseDialect(db.DriverName())
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// InitDatabase opens the durable store database and brings its schema up
// to date.
func InitDatabase(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	if _, err := gooseDialect(driver); err != nil {
		return nil, err
	}

	if driver == DriverSQLite && isSQLiteFile(dsn) {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if driver == DriverSQLite {
		// One connection keeps ":memory:" databases coherent and avoids
		// SQLITE_BUSY between our own connections.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// isSQLiteFile reports whether dsn is a plain path rather than ":memory:"
// or a "file:" URI.
func isSQLiteFile(dsn string) bool {
	return dsn != "" && dsn != ":memory:" && !strings.HasPrefix(dsn, "file:")
}
