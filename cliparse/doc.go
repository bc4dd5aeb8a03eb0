// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - Exercise: Which exercise to serve (default: todo)
  - DatabaseURL: SQLite file or PostgreSQL connection string
  - DatabaseType: sqlite or postgres (default: sqlite)
  - LogLevel: debug, info, warn or error (default: info)
  - ConfigFile: Optional YAML file with the same settings

# CLI Flags

	-p          Server port
	-x          Exercise (todo-memory, board, todo, venmo, cms)
	-d          Database URL
	-t          Database type
	-log-level  Log level
	-c          YAML config file

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	EXERCISE      → -x
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	LOG_LEVEL     → -log-level
	CONFIG_FILE   → -c

A .env file in the working directory is loaded first; it never overrides
variables that are already set.

# Config File

Values still unset after flags and environment are read from the YAML file:

	port: 8000
	exercise: venmo
	database_url: venmo.db
	database_type: sqlite
	log_level: debug

# Defaults

When no database URL is given, SQLite exercises use a file named after the
exercise: todo.db, venmo.db or cms.db. The in-memory exercises (todo-memory,
board) do not open a database at all. Postgres always needs an explicit URL.
*/
package cliparse
