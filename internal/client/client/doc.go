// Package client bootstraps the bakery client's local persistence.
//
// InitDatabase opens the durable store (SQLite through modernc.org/sqlite by
// default, PostgreSQL through pgx when configured) and applies the embedded
// goose migrations with RunMigrations. The returned *sqlx.DB is handed to
// kv.NewSQLRepository.
//
// Errors: ErrStoreUnavailable when the database cannot be opened or reached,
// ErrUnsupportedDriver for driver names other than DriverSQLite and
// DriverPostgres. Match them with errors.Is.
package client
