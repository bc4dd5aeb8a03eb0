// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Request fields are pointers so handlers can tell a missing field from a
zero value:

  - CreateTaskRequest, UpdateTaskRequest: description, done
  - CreateSubtaskRequest: description, done
  - AssignCategoryRequest: description, color
  - CreatePostRequest: title, link, username
  - UpvotePostRequest: upvotes
  - CreateCommentRequest, EditCommentRequest: text, username
  - CreateUserRequest: name, username, balance
  - SendMoneyRequest: sender_id, receiver_id, amount
  - CreateTransactionRequest: sender_id, receiver_id, amount, message, accepted
  - ResolveTransactionRequest: accepted
  - CreateCourseRequest: code, name
  - CreateMemberRequest: name, netid
  - AddMemberRequest: user_id, type
  - CreateAssignmentRequest: title, due_date

# Response Types

Collections are wrapped in an object keyed by the plural name:

  - TaskListResponse, SimpleTaskListResponse: tasks
  - SubtaskListResponse: subtasks
  - PostListResponse: posts
  - CommentListResponse: comments
  - UserListResponse: users
  - CourseListResponse: courses
  - SendMoneyResponse: sender_id, receiver_id, amount
  - ErrorResponse: error

# Domain Types

  - SimpleTask: in-memory todo item
  - Task, Subtask, Category: SQL todo list
  - Post, Comment: in-memory board
  - User, UserSummary, Transaction: payment ledger
  - Course, CourseSummary, Member, MemberSummary, Assignment,
    AssignmentSummary: course roster

Summary types are the nested form used inside another entity, so that
serialization never recurses.

# Transaction States

Transaction.Accepted is nil while pending, then true (money moved) or false
(denied). Only pending transactions can be resolved.

# Constants

Roster roles:

	RoleStudent    = "student"
	RoleInstructor = "instructor"

Post sort orders:

	SortIncreasing = "increasing"
	SortDecreasing = "decreasing"
*/
package models
