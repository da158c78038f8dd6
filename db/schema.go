// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	var schema string
	switch dbType {
	case TypePostgres:
		schema = postgresSchema
	case TypeSQLite:
		schema = sqliteSchema
	default:
		return fmt.Errorf("unsupported database type %q", dbType)
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// BIGSERIAL sequences never hand out a value twice
const postgresSchema = `
CREATE TABLE IF NOT EXISTS picks (
    seq BIGSERIAL PRIMARY KEY,
    prev_picks TEXT NOT NULL UNIQUE,
    next_pick TEXT
);

CREATE INDEX IF NOT EXISTS idx_picks_open ON picks(seq) WHERE next_pick IS NULL;
`

// AUTOINCREMENT keeps SQLite from reusing the seq of a deleted max row
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS picks (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    prev_picks TEXT NOT NULL UNIQUE,
    next_pick TEXT
);

CREATE INDEX IF NOT EXISTS idx_picks_open ON picks(seq) WHERE next_pick IS NULL;
`
