// Package migrations holds the embedded goose SQL migrations.
package migrations

import "embed"

// Migrations is the embedded filesystem passed to goose.SetBaseFS.
//
//go:embed *.sql
var Migrations embed.FS
