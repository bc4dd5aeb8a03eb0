// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

type CreateCourseRequest struct {
	Code *string `json:"code"`
	Name *string `json:"name"`
}

type CreateMemberRequest struct {
	Name  *string `json:"name"`
	NetID *string `json:"netid"`
}

type AddMemberRequest struct {
	UserID *int64  `json:"user_id"`
	Type   *string `json:"type"`
}

type CreateAssignmentRequest struct {
	Title   *string `json:"title"`
	DueDate *int64  `json:"due_date"`
}

// Response types

type CourseListResponse struct {
	Courses []Course `json:"courses"`
}

// Domain types

type Course struct {
	ID          int64               `json:"id"`
	Code        string              `json:"code"`
	Name        string              `json:"name"`
	Assignments []AssignmentSummary `json:"assignments"`
	Instructors []MemberSummary     `json:"instructors"`
	Students    []MemberSummary     `json:"students"`
}

type CourseSummary struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Member is a course roster user; the role lives on the join table
type Member struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	NetID   string          `json:"netid"`
	Courses []CourseSummary `json:"courses"`
}

type MemberSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	NetID string `json:"netid"`
}

type Assignment struct {
	ID      int64         `json:"id"`
	Title   string        `json:"title"`
	DueDate int64         `json:"due_date"`
	Course  CourseSummary `json:"course"`
}

type AssignmentSummary struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	DueDate int64  `json:"due_date"`
}
