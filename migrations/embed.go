// Package migrations embeds the PostgreSQL migrations for modules_versions.
package migrations

import "embed"

// FS holds the goose SQL files.
//
//go:embed *.sql
var FS embed.FS
