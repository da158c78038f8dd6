// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the pickhelper API server.

pickhelper records ordered pick decisions: each record maps a pattern of
prior picks to the pick that followed it, numbered by a sequence that only
grows. Clients walk the sequence forward and backward, jump to the next
pattern still waiting for a successor, and fill, clear, or delete patterns.

# Starting the Server

With PostgreSQL coordinates from yaml/*.yaml or the environment:

	DATABASE_URL=postgres://... go run .

Or with a local SQLite file:

	go run . -t sqlite -d pickhelper.db -p 8000

# Configuration

  - PORT (-p): Server port (default: 8000)
  - DATABASE_URL (-d): Connection string; built from settings files if empty
  - DATABASE_TYPE (-t): postgres (default) or sqlite
  - APP_ENV (-env): dev (default) logs text, anything else logs JSON
  - CONFIG_DIR (-config-dir): Settings directory (default: yaml)

.env and .<env>.env files in the working directory are loaded first.

# Architecture

  - store: Pick persistence and lookups
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
