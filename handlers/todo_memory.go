// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/danielhkuo/coursework-api/memory"
	"github.com/danielhkuo/coursework-api/middleware"
	"github.com/danielhkuo/coursework-api/models"
)

// TodoMemoryHandler serves the todo list kept in process memory
type TodoMemoryHandler struct {
	mu    sync.Mutex
	tasks *memory.OrderedMap[models.SimpleTask]
	ids   *memory.Sequence
}

// NewTodoMemoryHandler returns a handler seeded with two chores
func NewTodoMemoryHandler() *TodoMemoryHandler {
	h := &TodoMemoryHandler{
		tasks: memory.NewOrderedMap[models.SimpleTask](),
		ids:   memory.NewSequence(0),
	}
	for _, desc := range []string{"Do the laundry", "Do the dishes"} {
		id := h.ids.Next()
		h.tasks.Set(id, models.SimpleTask{ID: id, Description: desc})
	}
	return h
}

// ListTasks handles GET /tasks/
func (h *TodoMemoryHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	tasks := h.tasks.Values()
	h.mu.Unlock()

	middleware.JSONResponse(w, http.StatusOK, models.SimpleTaskListResponse{Tasks: tasks})
}

// CreateTask handles POST /tasks/
func (h *TodoMemoryHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if !required(w, req.Description, "Description") {
		return
	}

	h.mu.Lock()
	id := h.ids.Next()
	task := models.SimpleTask{ID: id, Description: *req.Description}
	h.tasks.Set(id, task)
	h.mu.Unlock()

	slog.Info("task created", "task_id", id)
	middleware.JSONResponse(w, http.StatusCreated, task)
}

// GetTask handles GET /tasks/{id}/
func (h *TodoMemoryHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	h.mu.Lock()
	task, ok := h.tasks.Get(id)
	h.mu.Unlock()
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Task not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, task)
}

// UpdateTask handles POST /tasks/{id}/. Both description and done are required.
func (h *TodoMemoryHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateTaskRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	task, ok := h.tasks.Get(id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Task not found")
		return
	}
	if !required(w, req.Description, "Description") || !required(w, req.Done, "Done") {
		return
	}

	task.Description = *req.Description
	task.Done = *req.Done
	h.tasks.Set(id, task)

	middleware.JSONResponse(w, http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/{id}/
func (h *TodoMemoryHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	h.mu.Lock()
	task, ok := h.tasks.Delete(id)
	h.mu.Unlock()
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Task not found")
		return
	}

	slog.Info("task deleted", "task_id", id)
	middleware.JSONResponse(w, http.StatusOK, task)
}
