package migrations

import "embed"

// FS holds the ordered schema migration files.
//
//go:embed *.sql
var FS embed.FS
