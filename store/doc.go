// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store runs the SQL exercises' queries against an injected pool.

	st := store.New(dbConn)
	task, err := st.CreateTask(ctx, "buy milk", false)

The same SQL text runs on SQLite and PostgreSQL: placeholders are $N and
inserts use RETURNING id.

# Errors

Missing rows are reported as *NotFoundError, which names the entity and
matches ErrNotFound:

	var nf *store.NotFoundError
	if errors.As(err, &nf) {
		// nf.Error() == "Task not found"
	}

Business rule violations use sentinels: ErrInsufficientFunds,
ErrAlreadyResolved, ErrAlreadyMember, ErrInvalidRole and
ErrDescriptionRequired. Other errors are wrapped database failures.

# Transactions

Multi-statement operations run in one database transaction. A transfer
debits the sender only when the balance covers the amount, then credits the
receiver; both commit or neither does. Resolving a payment request updates
it only while it is still pending, so it succeeds at most once.

# Connections

With SQLite the pool holds a single connection. Reads that load child rows
close the parent cursor first, and code inside a transaction only uses the
transaction.
*/
package store
