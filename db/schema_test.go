// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"path/filepath"
	"testing"

	"github.com/danielhkuo/coursework-api/cliparse"
)

func TestCreateSchema_Idempotent(t *testing.T) {
	for _, exercise := range []string{cliparse.ExerciseTodo, cliparse.ExerciseVenmo, cliparse.ExerciseCMS} {
		t.Run(exercise, func(t *testing.T) {
			conn, err := Open(cliparse.DatabaseSQLite, filepath.Join(t.TempDir(), "test.db"))
			if err != nil {
				t.Fatalf("Failed to open database: %v", err)
			}
			defer conn.Close()

			for i := 0; i < 2; i++ {
				if err := CreateSchema(conn, cliparse.DatabaseSQLite, exercise); err != nil {
					t.Fatalf("CreateSchema call %d failed: %v", i+1, err)
				}
			}
		})
	}
}

func TestCreateSchema_UnknownExercise(t *testing.T) {
	conn, err := Open(cliparse.DatabaseSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(conn, cliparse.DatabaseSQLite, cliparse.ExerciseBoard); err == nil {
		t.Error("Expected an error for an exercise without a schema")
	}
}

func TestOpen_ForeignKeysEnforced(t *testing.T) {
	conn, err := Open(cliparse.DatabaseSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(conn, cliparse.DatabaseSQLite, cliparse.ExerciseTodo); err != nil {
		t.Fatal(err)
	}

	_, err = conn.Exec(`INSERT INTO subtask (description, done, task_id) VALUES ($1, $2, $3)`, "orphan", false, 42)
	if err == nil {
		t.Error("Expected foreign key violation for a subtask without a task")
	}
}

func TestOpen_UnsupportedType(t *testing.T) {
	if _, err := Open("oracle", "whatever"); err == nil {
		t.Error("Expected an error for an unsupported database type")
	}
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"todo.db", "todo.db?" + sqlitePragmas},
		{"file:todo.db?mode=rwc", "file:todo.db?mode=rwc&" + sqlitePragmas},
	}

	for _, tt := range tests {
		if got := sqliteDSN(tt.in); got != tt.want {
			t.Errorf("sqliteDSN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
