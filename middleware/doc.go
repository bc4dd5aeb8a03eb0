// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /tasks/{$}", middleware.WithLogging(handler))

Each request gets an id (taken from X-Request-ID or a fresh UUID, echoed
back in the response). Completion is logged with method, path, status,
duration_ms and a humanized response size.

# CORS Middleware

Enable cross-origin requests for browser clients:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Description required")

Errors are always {"error": message}.

Parse JSON request bodies:

	var req models.CreateTaskRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

Routes that report field type errors decode into a generic object instead,
with numbers kept as json.Number:

	obj, err := middleware.ParseJSONObject(r)

# Path Parameters

	id, ok := middleware.PathInt(r, "id")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
