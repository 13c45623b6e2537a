package migrations

import "embed"

// FS holds the history schema migrations.
//
//go:embed *.sql
var FS embed.FS
