// Package migrations embeds the SQLite schema for the key-value medium.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
