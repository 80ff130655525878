// Package migrations embeds the SQL migrations for every supported driver so
// the binary can migrate without files on disk.
package migrations

import "embed"

//go:embed postgres/*.sql
var Postgres embed.FS

//go:embed sqlite/*.sql
var SQLite embed.FS
