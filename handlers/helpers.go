// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/coursework-api/middleware"
	"github.com/danielhkuo/coursework-api/store"
)

// Messages shared across exercises
const (
	msgInvalidJSON   = "Invalid JSON"
	msgNotFound      = "Not found"
	msgInvalidRoute  = "Invalid route"
	msgDatabaseError = "Database error"
)

// pathID reads the integer path parameter name, answering 404 when it is
// not an integer.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, ok := middleware.PathInt(r, name)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, msgNotFound)
	}
	return id, ok
}

// required writes "<field> required" and returns false when v is nil
func required[T any](w http.ResponseWriter, v *T, field string) bool {
	if v == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, field+" required")
		return false
	}
	return true
}

// storeError maps errors shared by every SQL-backed exercise to a response.
// Route-specific errors are handled by the caller first.
func storeError(w http.ResponseWriter, err error, msg string, args ...any) {
	var nf *store.NotFoundError
	switch {
	case errors.As(err, &nf):
		middleware.ErrorResponse(w, http.StatusNotFound, nf.Error())
	case errors.Is(err, store.ErrDescriptionRequired):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Description required")
	case errors.Is(err, store.ErrAlreadyMember):
		middleware.ErrorResponse(w, http.StatusBadRequest, "User is already in the course")
	case errors.Is(err, store.ErrInvalidRole):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid type")
	case errors.Is(err, store.ErrInsufficientFunds):
		middleware.ErrorResponse(w, http.StatusForbidden, msgInsufficientFunds)
	case errors.Is(err, store.ErrBalanceOverflow):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Receiver balance too large")
	case errors.Is(err, store.ErrAlreadyResolved):
		middleware.ErrorResponse(w, http.StatusForbidden, "Transaction has already been accepted or denied")
	default:
		slog.Error(msg, append(args, "error", err)...)
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgDatabaseError)
	}
}
