// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the coursework API.

# Handler Types

In-memory exercises own their state behind a mutex:

  - TodoMemoryHandler: todo list seeded with two tasks
  - BoardHandler: posts and comments seeded with two posts and a comment

SQL exercises share one *store.Store:

  - TaskHandler: tasks, subtasks and categories
  - UserHandler: ledger users and direct transfers
  - TransactionHandler: payments and payment requests
  - CourseHandler: courses, roster users and assignments

Handlers are created via constructor functions:

	taskHandler := handlers.NewTaskHandler(st)

# Responses

Errors are {"error": message}:

  - malformed body: 400 "Invalid JSON"
  - missing field: 400 "<Field> required"
  - unknown id: 404 "<Entity> not found"
  - database failure: 500 "Database error", logged with slog

Creates answer 201; reads, updates, deletes and actions answer 200. Deletes
return the entity as it was.

# Update Policies

The in-memory todo list requires both description and done on update. The
SQL todo list keeps any field left out of the body.

# Payments

POST /api/send/ answers 400 when the sender's balance is too low. Creating or
accepting a transaction answers 403 in the same case and changes nothing. A
payment request can be accepted or denied once; later attempts get 403
"Transaction has already been accepted or denied".

# Type Checks

The board's /api/extra/ routes decode into a generic object and report
wrongly typed fields as "<Field> must be of type <str>". Upvoting reports
"Upvotes must be of type <int>".
*/
package handlers
