// Package migrations embeds the SQL migrations for the PostgreSQL session
// store, applied via goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
