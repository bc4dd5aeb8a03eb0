// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the coursework API server.

The server runs one of five small REST exercises per process:

  - todo-memory: a todo list kept in memory
  - board: posts and comments kept in memory
  - todo: a todo list with subtasks and categories in SQL
  - venmo: users, balances and payments in SQL
  - cms: courses, rosters and assignments in SQL

# Starting the Server

	go run . -x todo

Or with environment variables:

	EXERCISE=venmo PORT=8000 go run .

A .env file in the working directory is loaded when present.

# Configuration

  - EXERCISE (-x): todo-memory, board, todo, venmo or cms (default: todo)
  - PORT (-p): Server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string
    (default: todo.db, venmo.db or cms.db)
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)
  - CONFIG_FILE (-c): YAML file with the same settings

Flags win over environment variables, which win over the config file.

# Architecture

  - handlers: HTTP request handlers, one file per exercise
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - store: SQL persistence shared by the SQL exercises
  - memory: Ordered maps and id sequences for the in-memory exercises
  - db: Connections and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
