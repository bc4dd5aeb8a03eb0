// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/coursework-api/middleware"
	"github.com/danielhkuo/coursework-api/models"
	"github.com/danielhkuo/coursework-api/store"
)

const msgInsufficientFunds = "Cannot send amount greater than balance"

// UserHandler serves payment ledger users and direct transfers
type UserHandler struct {
	store *store.Store
}

func NewUserHandler(st *store.Store) *UserHandler {
	return &UserHandler{store: st}
}

// ListUsers handles GET /api/users/
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		storeError(w, err, "failed to list users")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UserListResponse{Users: users})
}

// CreateUser handles POST /api/users/. Balance defaults to 0.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if !required(w, req.Name, "Name") || !required(w, req.Username, "Username") {
		return
	}

	var balance int64
	if req.Balance != nil {
		balance = *req.Balance
	}
	if balance < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Balance must not be negative")
		return
	}

	user, err := h.store.CreateUser(r.Context(), *req.Name, *req.Username, balance)
	if err != nil {
		storeError(w, err, "failed to create user")
		return
	}

	slog.Info("user created", "user_id", user.ID, "username", user.Username)
	middleware.JSONResponse(w, http.StatusCreated, user)
}

// GetUser handles GET /api/users/{id}/ and /api/user/{id}/
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.store.GetUser(r.Context(), id)
	if err != nil {
		storeError(w, err, "failed to get user", "user_id", id)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /api/users/{id}/ and /api/user/{id}/
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.store.DeleteUser(r.Context(), id)
	if err != nil {
		storeError(w, err, "failed to delete user", "user_id", id)
		return
	}

	slog.Info("user deleted", "user_id", id)
	middleware.JSONResponse(w, http.StatusOK, user)
}

// SendMoney handles POST /api/send/
func (h *UserHandler) SendMoney(w http.ResponseWriter, r *http.Request) {
	var req models.SendMoneyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if !required(w, req.SenderID, "Sender ID") ||
		!required(w, req.ReceiverID, "Receiver ID") ||
		!required(w, req.Amount, "Amount") {
		return
	}
	if *req.Amount <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Amount must be positive")
		return
	}

	err := h.store.SendMoney(r.Context(), *req.SenderID, *req.ReceiverID, *req.Amount)
	if errors.Is(err, store.ErrInsufficientFunds) {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInsufficientFunds)
		return
	}
	if err != nil {
		storeError(w, err, "failed to send money")
		return
	}

	slog.Info("money sent",
		"sender_id", *req.SenderID,
		"receiver_id", *req.ReceiverID,
		"amount", humanize.Comma(*req.Amount),
	)
	middleware.JSONResponse(w, http.StatusOK, models.SendMoneyResponse{
		SenderID:   *req.SenderID,
		ReceiverID: *req.ReceiverID,
		Amount:     *req.Amount,
	})
}

// TransactionHandler serves payments and payment requests between users
type TransactionHandler struct {
	store *store.Store
}

func NewTransactionHandler(st *store.Store) *TransactionHandler {
	return &TransactionHandler{store: st}
}

// CreateTransaction handles POST /api/transactions/.
// accepted true pays immediately, false records a declined request, and an
// absent or null accepted records a pending request.
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTransactionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if !required(w, req.SenderID, "Sender ID") ||
		!required(w, req.ReceiverID, "Receiver ID") ||
		!required(w, req.Amount, "Amount") ||
		!required(w, req.Message, "Message") {
		return
	}
	if *req.Amount <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Amount must be positive")
		return
	}

	txn, err := h.store.CreateTransaction(r.Context(), *req.SenderID, *req.ReceiverID, *req.Amount, *req.Message, req.Accepted)
	if err != nil {
		storeError(w, err, "failed to create transaction")
		return
	}

	slog.Info("transaction created",
		"transaction_id", txn.ID,
		"amount", humanize.Comma(txn.Amount),
		"pending", txn.Pending(),
	)
	middleware.JSONResponse(w, http.StatusCreated, txn)
}

// GetTransaction handles GET /api/transactions/{id}/
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	txn, err := h.store.GetTransaction(r.Context(), id)
	if err != nil {
		storeError(w, err, "failed to get transaction", "transaction_id", id)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, txn)
}

// ResolveTransaction handles POST /api/transactions/{id}/.
// A transaction can be accepted or denied only while it is pending.
func (h *TransactionHandler) ResolveTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.ResolveTransactionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if !required(w, req.Accepted, "Accepted") {
		return
	}

	txn, err := h.store.ResolveTransaction(r.Context(), id, *req.Accepted)
	if err != nil {
		storeError(w, err, "failed to resolve transaction", "transaction_id", id)
		return
	}

	slog.Info("transaction resolved", "transaction_id", id, "accepted", *req.Accepted)
	middleware.JSONResponse(w, http.StatusOK, txn)
}
