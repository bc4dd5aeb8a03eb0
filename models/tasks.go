// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types
//
// Pointer fields distinguish "absent" from the zero value.

type CreateTaskRequest struct {
	Description *string `json:"description"`
	Done        *bool   `json:"done"`
}

type UpdateTaskRequest struct {
	Description *string `json:"description"`
	Done        *bool   `json:"done"`
}

type CreateSubtaskRequest struct {
	Description *string `json:"description"`
	Done        *bool   `json:"done"`
}

type AssignCategoryRequest struct {
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

// Response types

type TaskListResponse struct {
	Tasks []Task `json:"tasks"`
}

type SimpleTaskListResponse struct {
	Tasks []SimpleTask `json:"tasks"`
}

type SubtaskListResponse struct {
	Subtasks []Subtask `json:"subtasks"`
}

// Domain types

// SimpleTask is the in-memory todo item
type SimpleTask struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

type Task struct {
	ID          int64      `json:"id"`
	Description string     `json:"description"`
	Done        bool       `json:"done"`
	Subtasks    []Subtask  `json:"subtasks"`
	Categories  []Category `json:"categories"`
}

type Subtask struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
	TaskID      int64  `json:"task_id"`
}

type Category struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Color       string `json:"color"`
}
