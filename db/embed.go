// Package db holds the SQL migrations for both supported databases.
package db

import "embed"

//go:embed migrations/postgres/*.sql
var PostgresMigrations embed.FS

//go:embed migrations/sqlite/*.sql
var SQLiteMigrations embed.FS
