// Package migrations embeds the goose migrations for the durable store.
// The SQL is kept portable between SQLite and PostgreSQL.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
