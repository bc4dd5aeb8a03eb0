// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/coursework-api/cliparse"
)

// CreateSchema creates the tables for one exercise.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, databaseType, exercise string) error {
	d, ok := schemas[exercise]
	if !ok {
		return fmt.Errorf("no schema for exercise %q", exercise)
	}

	schema := d.sqlite
	if databaseType == cliparse.DatabasePostgres {
		schema = d.postgres
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

type dialects struct {
	sqlite   string
	postgres string
}

var schemas = map[string]dialects{
	cliparse.ExerciseTodo:  {sqlite: todoSQLite, postgres: todoPostgres},
	cliparse.ExerciseVenmo: {sqlite: venmoSQLite, postgres: venmoPostgres},
	cliparse.ExerciseCMS:   {sqlite: cmsSQLite, postgres: cmsPostgres},
}

const todoSQLite = `
-- Tasks
CREATE TABLE IF NOT EXISTS task (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    description TEXT NOT NULL,
    done BOOLEAN NOT NULL DEFAULT 0
);

-- Subtasks
CREATE TABLE IF NOT EXISTS subtask (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    description TEXT NOT NULL,
    done BOOLEAN NOT NULL DEFAULT 0,
    task_id INTEGER NOT NULL REFERENCES task(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_subtask_task_id ON subtask(task_id);

-- Categories
CREATE TABLE IF NOT EXISTS category (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    description TEXT NOT NULL,
    color TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS task_category (
    task_id INTEGER NOT NULL REFERENCES task(id) ON DELETE CASCADE,
    category_id INTEGER NOT NULL REFERENCES category(id) ON DELETE CASCADE,
    PRIMARY KEY (task_id, category_id)
);

CREATE INDEX IF NOT EXISTS idx_task_category_category_id ON task_category(category_id);
`

const todoPostgres = `
-- Tasks
CREATE TABLE IF NOT EXISTS task (
    id BIGSERIAL PRIMARY KEY,
    description TEXT NOT NULL,
    done BOOLEAN NOT NULL DEFAULT FALSE
);

-- Subtasks
CREATE TABLE IF NOT EXISTS subtask (
    id BIGSERIAL PRIMARY KEY,
    description TEXT NOT NULL,
    done BOOLEAN NOT NULL DEFAULT FALSE,
    task_id BIGINT NOT NULL REFERENCES task(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_subtask_task_id ON subtask(task_id);

-- Categories
CREATE TABLE IF NOT EXISTS category (
    id BIGSERIAL PRIMARY KEY,
    description TEXT NOT NULL,
    color TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS task_category (
    task_id BIGINT NOT NULL REFERENCES task(id) ON DELETE CASCADE,
    category_id BIGINT NOT NULL REFERENCES category(id) ON DELETE CASCADE,
    PRIMARY KEY (task_id, category_id)
);

CREATE INDEX IF NOT EXISTS idx_task_category_category_id ON task_category(category_id);
`

const venmoSQLite = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    username TEXT NOT NULL,
    balance INTEGER NOT NULL DEFAULT 0 CHECK (balance >= 0)
);

-- Transactions (accepted: NULL pending, 1 accepted, 0 denied)
CREATE TABLE IF NOT EXISTS transactions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp TIMESTAMP NOT NULL,
    sender_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    receiver_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    amount INTEGER NOT NULL,
    message TEXT NOT NULL,
    accepted BOOLEAN
);

CREATE INDEX IF NOT EXISTS idx_transactions_sender_id ON transactions(sender_id);
CREATE INDEX IF NOT EXISTS idx_transactions_receiver_id ON transactions(receiver_id);
`

const venmoPostgres = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    username TEXT NOT NULL,
    balance BIGINT NOT NULL DEFAULT 0 CHECK (balance >= 0)
);

-- Transactions (accepted: NULL pending, TRUE accepted, FALSE denied)
CREATE TABLE IF NOT EXISTS transactions (
    id BIGSERIAL PRIMARY KEY,
    timestamp TIMESTAMP NOT NULL,
    sender_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    receiver_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    amount BIGINT NOT NULL,
    message TEXT NOT NULL,
    accepted BOOLEAN
);

CREATE INDEX IF NOT EXISTS idx_transactions_sender_id ON transactions(sender_id);
CREATE INDEX IF NOT EXISTS idx_transactions_receiver_id ON transactions(receiver_id);
`

const cmsSQLite = `
-- Courses
CREATE TABLE IF NOT EXISTS course (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    code TEXT NOT NULL,
    name TEXT NOT NULL
);

-- Members (students and instructors)
CREATE TABLE IF NOT EXISTS member (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    netid TEXT NOT NULL
);

-- Assignments
CREATE TABLE IF NOT EXISTS assignment (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    due_date INTEGER NOT NULL,
    course_id INTEGER NOT NULL REFERENCES course(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_assignment_course_id ON assignment(course_id);

-- One join table per role
CREATE TABLE IF NOT EXISTS course_student (
    course_id INTEGER NOT NULL REFERENCES course(id) ON DELETE CASCADE,
    user_id INTEGER NOT NULL REFERENCES member(id) ON DELETE CASCADE,
    PRIMARY KEY (course_id, user_id)
);

CREATE TABLE IF NOT EXISTS course_instructor (
    course_id INTEGER NOT NULL REFERENCES course(id) ON DELETE CASCADE,
    user_id INTEGER NOT NULL REFERENCES member(id) ON DELETE CASCADE,
    PRIMARY KEY (course_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_course_student_user_id ON course_student(user_id);
CREATE INDEX IF NOT EXISTS idx_course_instructor_user_id ON course_instructor(user_id);
`

const cmsPostgres = `
-- Courses
CREATE TABLE IF NOT EXISTS course (
    id BIGSERIAL PRIMARY KEY,
    code TEXT NOT NULL,
    name TEXT NOT NULL
);

-- Members (students and instructors)
CREATE TABLE IF NOT EXISTS member (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    netid TEXT NOT NULL
);

-- Assignments
CREATE TABLE IF NOT EXISTS assignment (
    id BIGSERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    due_date BIGINT NOT NULL,
    course_id BIGINT NOT NULL REFERENCES course(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_assignment_course_id ON assignment(course_id);

-- One join table per role
CREATE TABLE IF NOT EXISTS course_student (
    course_id BIGINT NOT NULL REFERENCES course(id) ON DELETE CASCADE,
    user_id BIGINT NOT NULL REFERENCES member(id) ON DELETE CASCADE,
    PRIMARY KEY (course_id, user_id)
);

CREATE TABLE IF NOT EXISTS course_instructor (
    course_id BIGINT NOT NULL REFERENCES course(id) ON DELETE CASCADE,
    user_id BIGINT NOT NULL REFERENCES member(id) ON DELETE CASCADE,
    PRIMARY KEY (course_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_course_student_user_id ON course_student(user_id);
CREATE INDEX IF NOT EXISTS idx_course_instructor_user_id ON course_instructor(user_id);
`
