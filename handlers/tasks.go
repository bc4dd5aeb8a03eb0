// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/coursework-api/middleware"
	"github.com/danielhkuo/coursework-api/models"
	"github.com/danielhkuo/coursework-api/store"
)

// TaskHandler serves the SQL-backed todo list with subtasks and categories
type TaskHandler struct {
	store *store.Store
}

func NewTaskHandler(st *store.Store) *TaskHandler {
	return &TaskHandler{store: st}
}

// ListTasks handles GET /tasks/
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.store.ListTasks(r.Context())
	if err != nil {
		storeError(w, err, "failed to list tasks")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TaskListResponse{Tasks: tasks})
}

// CreateTask handles POST /tasks/
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if !required(w, req.Description, "Description") {
		return
	}

	done := req.Done != nil && *req.Done
	task, err := h.store.CreateTask(r.Context(), *req.Description, done)
	if err != nil {
		storeError(w, err, "failed to create task")
		return
	}

	slog.Info("task created", "task_id", task.ID)
	middleware.JSONResponse(w, http.StatusCreated, task)
}

// GetTask handles GET /tasks/{id}/
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	task, err := h.store.GetTask(r.Context(), id)
	if err != nil {
		storeError(w, err, "failed to get task", "task_id", id)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, task)
}

// UpdateTask handles POST /tasks/{id}/. Absent fields keep their stored value.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateTaskRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	task, err := h.store.UpdateTask(r.Context(), id, req.Description, req.Done)
	if err != nil {
		storeError(w, err, "failed to update task", "task_id", id)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/{id}/
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	task, err := h.store.DeleteTask(r.Context(), id)
	if err != nil {
		storeError(w, err, "failed to delete task", "task_id", id)
		return
	}

	slog.Info("task deleted", "task_id", id)
	middleware.JSONResponse(w, http.StatusOK, task)
}

// ListSubtasks handles GET /tasks/{id}/subtasks/
func (h *TaskHandler) ListSubtasks(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	subtasks, err := h.store.ListSubtasks(r.Context(), id)
	if err != nil {
		storeError(w, err, "failed to list subtasks", "task_id", id)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SubtaskListResponse{Subtasks: subtasks})
}

// CreateSubtask handles POST /tasks/{id}/subtasks/
func (h *TaskHandler) CreateSubtask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.CreateSubtaskRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if !required(w, req.Description, "Description") {
		return
	}

	done := req.Done != nil && *req.Done
	subtask, err := h.store.CreateSubtask(r.Context(), id, *req.Description, done)
	if err != nil {
		storeError(w, err, "failed to create subtask", "task_id", id)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, subtask)
}

// AssignCategory handles POST /tasks/{id}/category/
func (h *TaskHandler) AssignCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.AssignCategoryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if !required(w, req.Color, "Color") {
		return
	}

	task, err := h.store.AssignCategory(r.Context(), id, req.Description, *req.Color)
	if err != nil {
		storeError(w, err, "failed to assign category", "task_id", id)
		return
	}

	slog.Info("category assigned", "task_id", id, "color", *req.Color)
	middleware.JSONResponse(w, http.StatusOK, task)
}
