//go:build embed_migrations

// Package db embeds the SQL migrations for production builds, where the
// binary must not depend on a migrations directory on disk.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
