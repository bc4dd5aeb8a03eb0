// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates each exercise's schema.

# Connections

Open takes the database type from the config and returns a verified pool:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

SQLite (modernc.org/sqlite, pure Go) opens the given file with foreign keys
enabled and a busy timeout, and is limited to one open connection. Postgres
goes through github.com/lib/pq with the driver's default pool.

# Schema Creation

CreateSchema initializes the tables for one exercise:

	if err := db.CreateSchema(conn, cfg.DatabaseType, cfg.Exercise); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
There are no migrations; a changed schema means a fresh database file.

# Tables

	todo:  task 1──* subtask, task *──* category (via task_category)
	venmo: users 1──* transactions (as sender and as receiver)
	cms:   course 1──* assignment,
	       course *──* member (via course_student and course_instructor)

All foreign keys use ON DELETE CASCADE.
*/
package db
