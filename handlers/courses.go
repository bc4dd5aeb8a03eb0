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

// CourseHandler serves the course roster: courses, users and assignments
type CourseHandler struct {
	store *store.Store
}

func NewCourseHandler(st *store.Store) *CourseHandler {
	return &CourseHandler{store: st}
}

// ListCourses handles GET /api/courses/
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.store.ListCourses(r.Context())
	if err != nil {
		storeError(w, err, "failed to list courses")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CourseListResponse{Courses: courses})
}

// CreateCourse handles POST /api/courses/
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCourseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if !required(w, req.Code, "Code") || !required(w, req.Name, "Name") {
		return
	}

	course, err := h.store.CreateCourse(r.Context(), *req.Code, *req.Name)
	if err != nil {
		storeError(w, err, "failed to create course")
		return
	}

	slog.Info("course created", "course_id", course.ID, "code", course.Code)
	middleware.JSONResponse(w, http.StatusCreated, course)
}

// GetCourse handles GET /api/courses/{id}/
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	course, err := h.store.GetCourse(r.Context(), id)
	if err != nil {
		storeError(w, err, "failed to get course", "course_id", id)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, course)
}

// DeleteCourse handles DELETE /api/courses/{id}/
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	course, err := h.store.DeleteCourse(r.Context(), id)
	if err != nil {
		storeError(w, err, "failed to delete course", "course_id", id)
		return
	}

	slog.Info("course deleted", "course_id", id)
	middleware.JSONResponse(w, http.StatusOK, course)
}

// CreateUser handles POST /api/users/
func (h *CourseHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMemberRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if !required(w, req.Name, "Name") || !required(w, req.NetID, "Net ID") {
		return
	}

	member, err := h.store.CreateMember(r.Context(), *req.Name, *req.NetID)
	if err != nil {
		storeError(w, err, "failed to create user")
		return
	}

	slog.Info("user created", "user_id", member.ID, "netid", member.NetID)
	middleware.JSONResponse(w, http.StatusCreated, member)
}

// GetUser handles GET /api/users/{id}/
func (h *CourseHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	member, err := h.store.GetMember(r.Context(), id)
	if err != nil {
		storeError(w, err, "failed to get user", "user_id", id)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, member)
}

// AddUser handles POST /api/courses/{id}/add/
func (h *CourseHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.AddMemberRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if !required(w, req.UserID, "User ID") || !required(w, req.Type, "Type") {
		return
	}

	course, err := h.store.AddMember(r.Context(), id, *req.UserID, *req.Type)
	if err != nil {
		storeError(w, err, "failed to add user to course", "course_id", id)
		return
	}

	slog.Info("user added to course", "course_id", id, "user_id", *req.UserID, "type", *req.Type)
	middleware.JSONResponse(w, http.StatusOK, course)
}

// CreateAssignment handles POST /api/courses/{id}/assignment/
func (h *CourseHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.CreateAssignmentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if !required(w, req.Title, "Title") || !required(w, req.DueDate, "Due date") {
		return
	}

	assignment, err := h.store.CreateAssignment(r.Context(), id, *req.Title, *req.DueDate)
	if err != nil {
		storeError(w, err, "failed to create assignment", "course_id", id)
		return
	}

	slog.Info("assignment created", "assignment_id", assignment.ID, "course_id", id)
	middleware.JSONResponse(w, http.StatusCreated, assignment)
}
