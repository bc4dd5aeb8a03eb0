// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"testing"

	"github.com/danielhkuo/coursework-api/models"
	"github.com/danielhkuo/coursework-api/testutil"
)

func TestTodoMemory_Seeded(t *testing.T) {
	h := NewTodoMemoryHandler()

	w := call(h.ListTasks, "GET", "/tasks/", nil)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.SimpleTaskListResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Tasks) != 2 {
		t.Fatalf("Expected 2 seeded tasks, got %d", len(resp.Tasks))
	}
	if resp.Tasks[0].Description != "Do the laundry" || resp.Tasks[1].Description != "Do the dishes" {
		t.Errorf("Unexpected seeded tasks: %+v", resp.Tasks)
	}
}

func TestTodoMemory_CreateTask(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		expectedStatus int
		expectedError  string
	}{
		{"valid task", map[string]string{"description": "buy milk"}, http.StatusCreated, ""},
		{"missing description", map[string]string{}, http.StatusBadRequest, "Description required"},
		{"invalid JSON", "invalid json", http.StatusBadRequest, "Invalid JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTodoMemoryHandler()
			w := call(h.CreateTask, "POST", "/tasks/", tt.requestBody)

			if tt.expectedError != "" {
				testutil.AssertError(t, w, tt.expectedStatus, tt.expectedError)
				return
			}
			testutil.AssertStatus(t, w, tt.expectedStatus)

			var task models.SimpleTask
			testutil.AssertJSON(t, w, &task)
			if task.ID != 2 || task.Description != "buy milk" || task.Done {
				t.Errorf("Unexpected task: %+v", task)
			}
		})
	}
}

func TestTodoMemory_UpdateRequiresBothFields(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		requestBody    any
		expectedStatus int
		expectedError  string
	}{
		{"both fields", "0", map[string]any{"description": "fold", "done": true}, http.StatusOK, ""},
		{"missing done", "0", map[string]any{"description": "fold"}, http.StatusBadRequest, "Done required"},
		{"missing description", "0", map[string]any{"done": true}, http.StatusBadRequest, "Description required"},
		{"unknown task", "99", map[string]any{"description": "fold", "done": true}, http.StatusNotFound, "Task not found"},
		{"non-integer id", "x", map[string]any{}, http.StatusNotFound, "Not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTodoMemoryHandler()
			w := call(h.UpdateTask, "POST", "/tasks/"+tt.id+"/", tt.requestBody, "id", tt.id)

			if tt.expectedError != "" {
				testutil.AssertError(t, w, tt.expectedStatus, tt.expectedError)
				return
			}
			testutil.AssertStatus(t, w, tt.expectedStatus)

			var task models.SimpleTask
			testutil.AssertJSON(t, w, &task)
			if task.Description != "fold" || !task.Done {
				t.Errorf("Unexpected task: %+v", task)
			}
		})
	}
}

func TestTodoMemory_DeleteThenGet(t *testing.T) {
	h := NewTodoMemoryHandler()

	w := call(h.DeleteTask, "DELETE", "/tasks/1/", nil, "id", "1")
	testutil.AssertStatus(t, w, http.StatusOK)

	var deleted models.SimpleTask
	testutil.AssertJSON(t, w, &deleted)
	if deleted.Description != "Do the dishes" {
		t.Errorf("Expected deleted task to be returned, got %+v", deleted)
	}

	w = call(h.GetTask, "GET", "/tasks/1/", nil, "id", "1")
	testutil.AssertError(t, w, http.StatusNotFound, "Task not found")

	// ids are never reused
	w = call(h.CreateTask, "POST", "/tasks/", map[string]string{"description": "new"})
	var created models.SimpleTask
	testutil.AssertJSON(t, w, &created)
	if created.ID != 2 {
		t.Errorf("Expected id 2, got %d", created.ID)
	}
}
