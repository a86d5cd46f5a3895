// Package migrations embeds the SQL used to install the medikom schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
