// Package db embeds the SQL schema so binaries do not depend on a migrations directory at runtime.
package db

import "embed"

// Migrations holds the golang-migrate files for Postgres.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// SQLiteSchema creates the employees table on the embedded SQLite store.
const SQLiteSchema = `
CREATE TABLE IF NOT EXISTS employees (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    first_name TEXT NOT NULL,
    last_name  TEXT NOT NULL,
    email      TEXT NOT NULL UNIQUE
);
CREATE INDEX IF NOT EXISTS employees_name_idx ON employees (first_name, last_name);
`
