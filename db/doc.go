// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Open selects the driver from the database type and pings the server:

	conn, err := db.Open(db.TypePostgres, "postgres://...")

Supported types:

  - postgres: github.com/lib/pq, pool of 25 open / 10 idle connections
  - sqlite: modernc.org/sqlite, one connection, 5s busy timeout

# Schema Creation

CreateSchema initializes the picks table for the given dialect:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and index.

# Tables

	picks (
	    seq         auto-incrementing primary key, never reused
	    prev_picks  unique pattern key
	    next_pick   nullable successor
	)

# Indexes

  - picks.prev_picks (unique)
  - picks.seq WHERE next_pick IS NULL (partial, for open-pattern scans)
*/
package db
