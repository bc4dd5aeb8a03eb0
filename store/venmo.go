// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/coursework-api/models"
)

// ListUsers returns every user without balances
func (s *Store) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, username FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []models.UserSummary{}
	for rows.Next() {
		var u models.UserSummary
		if err := rows.Scan(&u.ID, &u.Name, &u.Username); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Store) CreateUser(ctx context.Context, name, username string, balance int64) (models.User, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (name, username, balance)
		VALUES ($1, $2, $3)
		RETURNING id
	`, name, username, balance).Scan(&id)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return models.User{
		ID:           id,
		Name:         name,
		Username:     username,
		Balance:      balance,
		Transactions: []models.Transaction{},
	}, nil
}

// GetUser returns the user with every transaction they sent or received
func (s *Store) GetUser(ctx context.Context, id int64) (models.User, error) {
	return getUser(ctx, s.db, id)
}

// DeleteUser removes the user and returns it as it was. Their transactions
// go with it.
func (s *Store) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		user, err = getUser(ctx, tx, id)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
	return user, err
}

// SendMoney moves amount from sender to receiver in one transaction.
// A sender without enough balance gets ErrInsufficientFunds and nothing changes.
func (s *Store) SendMoney(ctx context.Context, senderID, receiverID, amount int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := checkParties(ctx, tx, senderID, receiverID); err != nil {
			return err
		}
		return transfer(ctx, tx, senderID, receiverID, amount)
	})
}

// CreateTransaction records a transaction. accepted true moves the money in
// the same database transaction; nil records a pending request.
func (s *Store) CreateTransaction(ctx context.Context, senderID, receiverID, amount int64, message string, accepted *bool) (models.Transaction, error) {
	txn := models.Transaction{
		Timestamp:  time.Now().UTC(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Amount:     amount,
		Message:    message,
		Accepted:   accepted,
	}

	acc := sql.NullBool{}
	if accepted != nil {
		acc = sql.NullBool{Bool: *accepted, Valid: true}
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := checkParties(ctx, tx, senderID, receiverID); err != nil {
			return err
		}

		if accepted != nil && *accepted {
			if err := transfer(ctx, tx, senderID, receiverID, amount); err != nil {
				return err
			}
		}

		err := tx.QueryRowContext(ctx, `
			INSERT INTO transactions (timestamp, sender_id, receiver_id, amount, message, accepted)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, txn.Timestamp, senderID, receiverID, amount, message, acc).Scan(&txn.ID)
		if err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Transaction{}, err
	}

	return txn, nil
}

func (s *Store) GetTransaction(ctx context.Context, id int64) (models.Transaction, error) {
	return getTransaction(ctx, s.db, id)
}

// ResolveTransaction accepts or denies a pending transaction. It succeeds at
// most once per transaction: the pending check and the update share one
// statement, and accepting also moves the money in the same database
// transaction. If the transfer fails the transaction stays pending.
func (s *Store) ResolveTransaction(ctx context.Context, id int64, accepted bool) (models.Transaction, error) {
	var txn models.Transaction
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		txn, err = getTransaction(ctx, tx, id)
		if err != nil {
			return err
		}
		if !txn.Pending() {
			return ErrAlreadyResolved
		}

		now := time.Now().UTC()
		res, err := tx.ExecContext(ctx, `
			UPDATE transactions
			SET timestamp = $1, accepted = $2
			WHERE id = $3 AND accepted IS NULL
		`, now, accepted, id)
		if err != nil {
			return fmt.Errorf("failed to resolve transaction: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to resolve transaction: %w", err)
		}
		if n == 0 {
			return ErrAlreadyResolved
		}

		if accepted {
			if err := transfer(ctx, tx, txn.SenderID, txn.ReceiverID, txn.Amount); err != nil {
				return err
			}
		}

		txn.Timestamp = now
		txn.Accepted = &accepted
		return nil
	})
	if err != nil {
		return models.Transaction{}, err
	}

	return txn, nil
}

// transfer debits the sender only if the balance covers the amount, then
// credits the receiver. Callers commit or roll back both together.
func transfer(ctx context.Context, tx *sql.Tx, senderID, receiverID, amount int64) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE users
		SET balance = balance - $1
		WHERE id = $2 AND balance >= $1
	`, amount, senderID)
	if err != nil {
		return fmt.Errorf("failed to debit sender: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to debit sender: %w", err)
	}
	if n == 0 {
		ok, err := exists(ctx, tx, "users", senderID)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("Sender")
		}
		return ErrInsufficientFunds
	}

	res, err = tx.ExecContext(ctx, `
		UPDATE users
		SET balance = balance + $1
		WHERE id = $2 AND balance <= 9223372036854775807 - $1
	`, amount, receiverID)
	if err != nil {
		return fmt.Errorf("failed to credit receiver: %w", err)
	}
	n, err = res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to credit receiver: %w", err)
	}
	if n == 0 {
		ok, err := exists(ctx, tx, "users", receiverID)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("Receiver")
		}
		return ErrBalanceOverflow
	}

	return nil
}

func checkParties(ctx context.Context, q querier, senderID, receiverID int64) error {
	ok, err := exists(ctx, q, "users", senderID)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("Sender")
	}

	ok, err = exists(ctx, q, "users", receiverID)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("Receiver")
	}
	return nil
}

func getUser(ctx context.Context, q querier, id int64) (models.User, error) {
	var u models.User
	err := q.QueryRowContext(ctx, `
		SELECT id, name, username, balance
		FROM users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Name, &u.Username, &u.Balance)
	if err == sql.ErrNoRows {
		return models.User{}, notFound("User")
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	u.Transactions, err = queryUserTransactions(ctx, q, id)
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

func getTransaction(ctx context.Context, q querier, id int64) (models.Transaction, error) {
	var t models.Transaction
	err := q.QueryRowContext(ctx, `
		SELECT id, timestamp, sender_id, receiver_id, amount, message, accepted
		FROM transactions
		WHERE id = $1
	`, id).Scan(&t.ID, &t.Timestamp, &t.SenderID, &t.ReceiverID, &t.Amount, &t.Message, &t.Accepted)
	if err == sql.ErrNoRows {
		return models.Transaction{}, notFound("Transaction")
	}
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to query transaction: %w", err)
	}
	return t, nil
}

func queryUserTransactions(ctx context.Context, q querier, userID int64) ([]models.Transaction, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, timestamp, sender_id, receiver_id, amount, message, accepted
		FROM transactions
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.Timestamp, &t.SenderID, &t.ReceiverID, &t.Amount, &t.Message, &t.Accepted); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}
