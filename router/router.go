// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/coursework-api/cliparse"
	"github.com/danielhkuo/coursework-api/handlers"
	"github.com/danielhkuo/coursework-api/middleware"
	"github.com/danielhkuo/coursework-api/store"
)

// NewRouter builds the routes of the configured exercise. st may be nil for
// the in-memory exercises.
func NewRouter(st *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if st != nil {
			if err := st.Ping(r.Context()); err != nil {
				slog.Error("health check failed", "error", err)
				http.Error(w, "database unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	hello := func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Hello!"))
	}
	notFound := func(w http.ResponseWriter, r *http.Request) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
	}

	switch cfg.Exercise {
	case cliparse.ExerciseTodoMemory:
		todoRoutes(mux, handlers.NewTodoMemoryHandler())

	case cliparse.ExerciseBoard:
		boardHandler := handlers.NewBoardHandler()
		boardRoutes(mux, boardHandler)
		hello = boardHandler.Hello
		notFound = boardHandler.InvalidRoute

	case cliparse.ExerciseTodo:
		taskHandler := handlers.NewTaskHandler(st)
		todoRoutes(mux, taskHandler)
		handle(mux, "GET", "/tasks/{id}/subtasks/", taskHandler.ListSubtasks)
		handle(mux, "POST", "/tasks/{id}/subtasks/", taskHandler.CreateSubtask)
		handle(mux, "POST", "/tasks/{id}/category/", taskHandler.AssignCategory)

	case cliparse.ExerciseVenmo:
		userHandler := handlers.NewUserHandler(st)
		transactionHandler := handlers.NewTransactionHandler(st)

		handle(mux, "GET", "/api/users/", userHandler.ListUsers)
		handle(mux, "POST", "/api/users/", userHandler.CreateUser)
		for _, prefix := range []string{"/api/users/", "/api/user/"} {
			handle(mux, "GET", prefix+"{id}/", userHandler.GetUser)
			handle(mux, "DELETE", prefix+"{id}/", userHandler.DeleteUser)
		}
		handle(mux, "POST", "/api/send/", userHandler.SendMoney)

		handle(mux, "POST", "/api/transactions/", transactionHandler.CreateTransaction)
		handle(mux, "GET", "/api/transactions/{id}/", transactionHandler.GetTransaction)
		handle(mux, "POST", "/api/transactions/{id}/", transactionHandler.ResolveTransaction)

	case cliparse.ExerciseCMS:
		courseHandler := handlers.NewCourseHandler(st)

		handle(mux, "GET", "/api/courses/", courseHandler.ListCourses)
		handle(mux, "POST", "/api/courses/", courseHandler.CreateCourse)
		handle(mux, "GET", "/api/courses/{id}/", courseHandler.GetCourse)
		handle(mux, "DELETE", "/api/courses/{id}/", courseHandler.DeleteCourse)
		handle(mux, "POST", "/api/courses/{id}/add/", courseHandler.AddUser)
		handle(mux, "POST", "/api/courses/{id}/assignment/", courseHandler.CreateAssignment)
		handle(mux, "POST", "/api/users/", courseHandler.CreateUser)
		handle(mux, "GET", "/api/users/{id}/", courseHandler.GetUser)
	}

	// Root endpoint
	mux.HandleFunc("GET /{$}", hello)

	// Everything else
	mux.HandleFunc("/", middleware.WithLogging(notFound))

	return mux
}

// taskRoutes is implemented by both todo list handlers
type taskRoutes interface {
	ListTasks(w http.ResponseWriter, r *http.Request)
	CreateTask(w http.ResponseWriter, r *http.Request)
	GetTask(w http.ResponseWriter, r *http.Request)
	UpdateTask(w http.ResponseWriter, r *http.Request)
	DeleteTask(w http.ResponseWriter, r *http.Request)
}

func todoRoutes(mux *http.ServeMux, h taskRoutes) {
	handle(mux, "GET", "/tasks/", h.ListTasks)
	handle(mux, "POST", "/tasks/", h.CreateTask)
	handle(mux, "GET", "/tasks/{id}/", h.GetTask)
	handle(mux, "POST", "/tasks/{id}/", h.UpdateTask)
	handle(mux, "DELETE", "/tasks/{id}/", h.DeleteTask)
}

func boardRoutes(mux *http.ServeMux, h *handlers.BoardHandler) {
	handle(mux, "GET", "/api/posts/", h.ListPosts)
	handle(mux, "POST", "/api/posts/", h.CreatePost)
	handle(mux, "GET", "/api/posts/{pid}/", h.GetPost)
	handle(mux, "POST", "/api/posts/{pid}/", h.UpvotePost)
	handle(mux, "DELETE", "/api/posts/{pid}/", h.DeletePost)
	handle(mux, "GET", "/api/posts/{pid}/comments/", h.ListComments)
	handle(mux, "POST", "/api/posts/{pid}/comments/", h.CreateComment)
	handle(mux, "POST", "/api/posts/{pid}/comments/{cid}/", h.EditComment)

	handle(mux, "GET", "/api/extra/posts/", h.ListPostsSorted)
	handle(mux, "POST", "/api/extra/posts/", h.CreatePostChecked)
	handle(mux, "POST", "/api/extra/posts/{pid}/comments/", h.CreateCommentChecked)
	handle(mux, "POST", "/api/extra/posts/{pid}/comments/{cid}/", h.EditCommentChecked)
}

// handle registers a logged route under path, which ends in a slash, and
// under the same path without it.
func handle(mux *http.ServeMux, method, path string, h http.HandlerFunc) {
	logged := middleware.WithLogging(h)
	mux.HandleFunc(method+" "+path+"{$}", logged)
	mux.HandleFunc(method+" "+strings.TrimSuffix(path, "/"), logged)
}
