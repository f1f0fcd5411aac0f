// Package migrations embeds the SQL schema migrations applied by goose.
package migrations

import "embed"

// Migrations contains the goose SQL files of this directory.
//
//go:embed *.sql
var Migrations embed.FS
