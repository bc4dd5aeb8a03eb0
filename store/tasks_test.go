// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/danielhkuo/coursework-api/cliparse"
	"github.com/danielhkuo/coursework-api/testutil"
)

func newTestStore(t *testing.T, exercise string) *Store {
	t.Helper()
	return New(testutil.SetupTestDB(t, exercise))
}

func TestCreateTask_IDsIncrease(t *testing.T) {
	s := newTestStore(t, cliparse.ExerciseTodo)
	ctx := context.Background()

	first, err := s.CreateTask(ctx, "write tests", false)
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if _, err := s.DeleteTask(ctx, first.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}

	second, err := s.CreateTask(ctx, "write more tests", true)
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if second.ID <= first.ID {
		t.Errorf("Expected id greater than %d, got %d", first.ID, second.ID)
	}
	if second.Subtasks == nil || second.Categories == nil {
		t.Error("Expected empty, non-nil child slices")
	}
}

func TestUpdateTask_Partial(t *testing.T) {
	s := newTestStore(t, cliparse.ExerciseTodo)
	ctx := context.Background()

	task, err := s.CreateTask(ctx, "laundry", false)
	if err != nil {
		t.Fatal(err)
	}

	updated, err := s.UpdateTask(ctx, task.ID, nil, testutil.Ptr(true))
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if updated.Description != "laundry" {
		t.Errorf("Expected description to be kept, got %q", updated.Description)
	}
	if !updated.Done {
		t.Error("Expected done to be true")
	}

	updated, err = s.UpdateTask(ctx, task.ID, testutil.Ptr("dishes"), nil)
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if updated.Description != "dishes" || !updated.Done {
		t.Errorf("Unexpected task after update: %+v", updated)
	}

	_, err = s.UpdateTask(ctx, 999, testutil.Ptr("dishes"), nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTask_Cascades(t *testing.T) {
	s := newTestStore(t, cliparse.ExerciseTodo)
	ctx := context.Background()

	task, err := s.CreateTask(ctx, "project", false)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateSubtask(ctx, task.ID, "outline", false); err != nil {
		t.Fatal(err)
	}
	desc := "school"
	if _, err := s.AssignCategory(ctx, task.ID, &desc, "red"); err != nil {
		t.Fatal(err)
	}

	deleted, err := s.DeleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if len(deleted.Subtasks) != 1 || len(deleted.Categories) != 1 {
		t.Errorf("Expected deleted task to carry its children, got %+v", deleted)
	}

	var n int
	if err := s.DB().QueryRow(`SELECT COUNT(*) FROM subtask`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("Expected subtasks to be deleted, found %d", n)
	}
	if err := s.DB().QueryRow(`SELECT COUNT(*) FROM task_category`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("Expected category links to be deleted, found %d", n)
	}

	// the category itself outlives the task
	if err := s.DB().QueryRow(`SELECT COUNT(*) FROM category`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("Expected 1 category, found %d", n)
	}

	if _, err := s.DeleteTask(ctx, task.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}

func TestSubtasks(t *testing.T) {
	s := newTestStore(t, cliparse.ExerciseTodo)
	ctx := context.Background()

	if _, err := s.ListSubtasks(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing task, got %v", err)
	}
	if _, err := s.CreateSubtask(ctx, 1, "orphan", false); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing task, got %v", err)
	}

	task, err := s.CreateTask(ctx, "trip", false)
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range []string{"pack", "book hotel"} {
		if _, err := s.CreateSubtask(ctx, task.ID, d, false); err != nil {
			t.Fatalf("CreateSubtask failed: %v", err)
		}
	}

	subtasks, err := s.ListSubtasks(ctx, task.ID)
	if err != nil {
		t.Fatalf("ListSubtasks failed: %v", err)
	}
	if len(subtasks) != 2 {
		t.Fatalf("Expected 2 subtasks, got %d", len(subtasks))
	}
	if subtasks[0].Description != "pack" || subtasks[0].TaskID != task.ID {
		t.Errorf("Unexpected first subtask: %+v", subtasks[0])
	}
}

func TestAssignCategory(t *testing.T) {
	s := newTestStore(t, cliparse.ExerciseTodo)
	ctx := context.Background()

	a, err := s.CreateTask(ctx, "a", false)
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.CreateTask(ctx, "b", false)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.AssignCategory(ctx, a.ID, nil, "blue"); !errors.Is(err, ErrDescriptionRequired) {
		t.Errorf("Expected ErrDescriptionRequired for a new color, got %v", err)
	}

	desc := "work"
	got, err := s.AssignCategory(ctx, a.ID, &desc, "blue")
	if err != nil {
		t.Fatalf("AssignCategory failed: %v", err)
	}
	if len(got.Categories) != 1 || got.Categories[0].Description != "work" {
		t.Fatalf("Unexpected categories: %+v", got.Categories)
	}

	// an existing color is reused; the description may be omitted
	got, err = s.AssignCategory(ctx, b.ID, nil, "blue")
	if err != nil {
		t.Fatalf("AssignCategory failed: %v", err)
	}
	if len(got.Categories) != 1 || got.Categories[0].ID != 1 {
		t.Errorf("Expected shared category 1, got %+v", got.Categories)
	}

	// assigning twice is a no-op
	got, err = s.AssignCategory(ctx, b.ID, nil, "blue")
	if err != nil {
		t.Fatalf("AssignCategory failed: %v", err)
	}
	if len(got.Categories) != 1 {
		t.Errorf("Expected 1 category after repeat, got %d", len(got.Categories))
	}

	if _, err := s.AssignCategory(ctx, 999, &desc, "green"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestNotFoundError_Message(t *testing.T) {
	err := notFound("Task")
	if err.Error() != "Task not found" {
		t.Errorf("Unexpected message %q", err.Error())
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "Task" {
		t.Errorf("Expected NotFoundError for Task, got %v", err)
	}
}
