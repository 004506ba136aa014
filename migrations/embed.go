// Package migrations embeds the SQLite schema.
package migrations

import "embed"

// FS holds the schema files.
//
//go:embed *.sql
var FS embed.FS

// InitialSchema is the file holding the full schema.
const InitialSchema = "001_initial_schema.up.sql"
