// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"testing"

	"github.com/danielhkuo/coursework-api/cliparse"
	"github.com/danielhkuo/coursework-api/models"
	"github.com/danielhkuo/coursework-api/testutil"
)

func setupCourse(t *testing.T) *CourseHandler {
	t.Helper()
	h := NewCourseHandler(newTestStore(t, cliparse.ExerciseCMS))

	w := call(h.CreateCourse, "POST", "/api/courses/", map[string]any{"code": "CS 1998", "name": "Intro to Backend"})
	testutil.AssertStatus(t, w, http.StatusCreated)
	w = call(h.CreateUser, "POST", "/api/users/", map[string]any{"name": "Raahi", "netid": "rm834"})
	testutil.AssertStatus(t, w, http.StatusCreated)

	return h
}

func TestCreateCourse(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		expectedStatus int
		expectedError  string
	}{
		{"valid course", map[string]any{"code": "CS 1110", "name": "Python"}, http.StatusCreated, ""},
		{"missing code", map[string]any{"name": "Python"}, http.StatusBadRequest, "Code required"},
		{"missing name", map[string]any{"code": "CS 1110"}, http.StatusBadRequest, "Name required"},
		{"invalid JSON", "[", http.StatusBadRequest, "Invalid JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCourseHandler(newTestStore(t, cliparse.ExerciseCMS))
			w := call(h.CreateCourse, "POST", "/api/courses/", tt.requestBody)

			if tt.expectedError != "" {
				testutil.AssertError(t, w, tt.expectedStatus, tt.expectedError)
				return
			}
			testutil.AssertStatus(t, w, tt.expectedStatus)

			var course models.Course
			testutil.AssertJSON(t, w, &course)
			if course.Assignments == nil || course.Instructors == nil || course.Students == nil {
				t.Errorf("Expected empty lists, got %+v", course)
			}
		})
	}
}

func TestCreateUser_NetIDRequired(t *testing.T) {
	h := NewCourseHandler(newTestStore(t, cliparse.ExerciseCMS))

	w := call(h.CreateUser, "POST", "/api/users/", map[string]any{"name": "Raahi"})
	testutil.AssertError(t, w, http.StatusBadRequest, "Net ID required")

	w = call(h.CreateUser, "POST", "/api/users/", map[string]any{"name": "Raahi", "netid": "rm834"})
	testutil.AssertStatus(t, w, http.StatusCreated)

	var member models.Member
	testutil.AssertJSON(t, w, &member)
	if member.NetID != "rm834" || member.Courses == nil {
		t.Errorf("Unexpected user: %+v", member)
	}
}

func TestAddUser(t *testing.T) {
	tests := []struct {
		name           string
		courseID       string
		requestBody    any
		expectedStatus int
		expectedError  string
	}{
		{"unknown course", "9", map[string]any{"user_id": 1, "type": "student"}, http.StatusNotFound, "Course not found"},
		{"unknown user", "1", map[string]any{"user_id": 9, "type": "student"}, http.StatusNotFound, "User not found"},
		{"missing user id", "1", map[string]any{"type": "student"}, http.StatusBadRequest, "User ID required"},
		{"missing type", "1", map[string]any{"user_id": 1}, http.StatusBadRequest, "Type required"},
		{"invalid type", "1", map[string]any{"user_id": 1, "type": "ta"}, http.StatusBadRequest, "Invalid type"},
		{"add student", "1", map[string]any{"user_id": 1, "type": "student"}, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := setupCourse(t)
			w := call(h.AddUser, "POST", "/api/courses/"+tt.courseID+"/add/", tt.requestBody, "id", tt.courseID)

			if tt.expectedError != "" {
				testutil.AssertError(t, w, tt.expectedStatus, tt.expectedError)
				return
			}
			testutil.AssertStatus(t, w, tt.expectedStatus)

			var course models.Course
			testutil.AssertJSON(t, w, &course)
			if len(course.Students) != 1 || course.Students[0].NetID != "rm834" {
				t.Errorf("Unexpected students: %+v", course.Students)
			}
		})
	}
}

func TestAddUser_OneRolePerCourse(t *testing.T) {
	h := setupCourse(t)

	w := call(h.AddUser, "POST", "/api/courses/1/add/", map[string]any{"user_id": 1, "type": "instructor"}, "id", "1")
	testutil.AssertStatus(t, w, http.StatusOK)

	for _, role := range []string{"instructor", "student"} {
		w = call(h.AddUser, "POST", "/api/courses/1/add/", map[string]any{"user_id": 1, "type": role}, "id", "1")
		testutil.AssertError(t, w, http.StatusBadRequest, "User is already in the course")
	}

	w = call(h.GetUser, "GET", "/api/users/1/", nil, "id", "1")
	testutil.AssertStatus(t, w, http.StatusOK)

	var member models.Member
	testutil.AssertJSON(t, w, &member)
	if len(member.Courses) != 1 || member.Courses[0].Code != "CS 1998" {
		t.Errorf("Unexpected courses: %+v", member.Courses)
	}
}

func TestCreateAssignment(t *testing.T) {
	h := setupCourse(t)

	w := call(h.CreateAssignment, "POST", "/api/courses/9/assignment/", map[string]any{"title": "PA1", "due_date": 1553354209}, "id", "9")
	testutil.AssertError(t, w, http.StatusNotFound, "Course not found")

	w = call(h.CreateAssignment, "POST", "/api/courses/1/assignment/", map[string]any{"title": "PA1"}, "id", "1")
	testutil.AssertError(t, w, http.StatusBadRequest, "Due date required")

	w = call(h.CreateAssignment, "POST", "/api/courses/1/assignment/", map[string]any{"title": "PA1", "due_date": 1553354209}, "id", "1")
	testutil.AssertStatus(t, w, http.StatusCreated)

	var assignment models.Assignment
	testutil.AssertJSON(t, w, &assignment)
	if assignment.Course.ID != 1 || assignment.Course.Code != "CS 1998" || assignment.DueDate != 1553354209 {
		t.Errorf("Unexpected assignment: %+v", assignment)
	}

	w = call(h.GetCourse, "GET", "/api/courses/1/", nil, "id", "1")
	var course models.Course
	testutil.AssertJSON(t, w, &course)
	if len(course.Assignments) != 1 || course.Assignments[0].Title != "PA1" {
		t.Errorf("Unexpected assignments: %+v", course.Assignments)
	}
}

func TestDeleteCourse(t *testing.T) {
	h := setupCourse(t)
	call(h.AddUser, "POST", "/api/courses/1/add/", map[string]any{"user_id": 1, "type": "student"}, "id", "1")

	w := call(h.DeleteCourse, "DELETE", "/api/courses/1/", nil, "id", "1")
	testutil.AssertStatus(t, w, http.StatusOK)

	var course models.Course
	testutil.AssertJSON(t, w, &course)
	if course.Code != "CS 1998" || len(course.Students) != 1 {
		t.Errorf("Expected the deleted course with its roster, got %+v", course)
	}

	w = call(h.GetCourse, "GET", "/api/courses/1/", nil, "id", "1")
	testutil.AssertError(t, w, http.StatusNotFound, "Course not found")

	w = call(h.ListCourses, "GET", "/api/courses/", nil)
	var list models.CourseListResponse
	testutil.AssertJSON(t, w, &list)
	if len(list.Courses) != 0 {
		t.Errorf("Expected no courses, got %d", len(list.Courses))
	}
}
