package migrations

import "embed"

// FS contains embedded SQLite migrations for scenario storage.
//
//go:embed *.sql
var FS embed.FS
