// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type CreateUserRequest struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Balance  *int64  `json:"balance"`
}

type SendMoneyRequest struct {
	SenderID   *int64 `json:"sender_id"`
	ReceiverID *int64 `json:"receiver_id"`
	Amount     *int64 `json:"amount"`
}

// Accepted nil creates a pending request
type CreateTransactionRequest struct {
	SenderID   *int64  `json:"sender_id"`
	ReceiverID *int64  `json:"receiver_id"`
	Amount     *int64  `json:"amount"`
	Message    *string `json:"message"`
	Accepted   *bool   `json:"accepted"`
}

type ResolveTransactionRequest struct {
	Accepted *bool `json:"accepted"`
}

// Response types

type UserListResponse struct {
	Users []UserSummary `json:"users"`
}

type SendMoneyResponse struct {
	SenderID   int64 `json:"sender_id"`
	ReceiverID int64 `json:"receiver_id"`
	Amount     int64 `json:"amount"`
}

// Domain types

type User struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Username     string        `json:"username"`
	Balance      int64         `json:"balance"`
	Transactions []Transaction `json:"transactions"`
}

// UserSummary leaves out the balance
type UserSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Accepted is nil while the transaction is pending
type Transaction struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	Amount     int64     `json:"amount"`
	Message    string    `json:"message"`
	Accepted   *bool     `json:"accepted"`
}

// Pending reports whether the transaction still awaits acceptance or denial
func (t Transaction) Pending() bool {
	return t.Accepted == nil
}
