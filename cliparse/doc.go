// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: Connection string or SQLite file path
  - DatabaseType: postgres (default) or sqlite
  - Env: Environment name (default: dev)
  - ConfigDir: Directory with the settings YAML files (default: yaml)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-env          Environment name
	-config-dir   Settings directory

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	APP_ENV       → -env
	CONFIG_DIR    → -config-dir

CLI flags take precedence over environment variables. Before the fallback,
.<env>.env and .env are loaded from the working directory; variables that
are already set are not overridden.

# Settings Files

When no database URL is given for postgres, LoadSettings builds one from
three YAML files in ConfigDir:

	configmap.yaml          db.name, db.port
	configmap-domain.yaml   db.host
	secret.yaml             db.user, db.password (plain or base64)

Example configmap.yaml:

	db:
	  name: pickhelper_db
	  port: "5432"

Missing files fall back to local defaults (admin/admin@localhost:5432).
*/
package cliparse
