// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the coursework API.

# Route Registration

NewRouter creates a configured http.ServeMux for one exercise:

	mux := router.NewRouter(st, cfg)

Only the routes of cfg.Exercise are registered, so exercises that share a
path (such as POST /api/users/) never conflict. Every route answers with
and without its trailing slash.

# Endpoints

Common:

	GET /health - OK, or 503 if the database is unreachable
	GET /       - Plain greeting

todo-memory and todo:

	GET    /tasks/      - List tasks
	POST   /tasks/      - Create task
	GET    /tasks/{id}/ - Get task
	POST   /tasks/{id}/ - Update task
	DELETE /tasks/{id}/ - Delete task

todo only:

	GET  /tasks/{id}/subtasks/ - List subtasks
	POST /tasks/{id}/subtasks/ - Create subtask
	POST /tasks/{id}/category/ - Assign category by color

board:

	GET    /api/posts/                      - List posts
	POST   /api/posts/                      - Create post
	GET    /api/posts/{pid}/                - Get post
	POST   /api/posts/{pid}/                - Upvote post
	DELETE /api/posts/{pid}/                - Delete post
	GET    /api/posts/{pid}/comments/       - List comments
	POST   /api/posts/{pid}/comments/       - Create comment
	POST   /api/posts/{pid}/comments/{cid}/ - Edit comment

	GET  /api/extra/posts/?sort=increasing|decreasing
	POST /api/extra/posts/
	POST /api/extra/posts/{pid}/comments/
	POST /api/extra/posts/{pid}/comments/{cid}/

venmo:

	GET    /api/users/             - List users
	POST   /api/users/             - Create user
	GET    /api/users/{id}/        - Get user (also /api/user/{id}/)
	DELETE /api/users/{id}/        - Delete user (also /api/user/{id}/)
	POST   /api/send/              - Send money
	POST   /api/transactions/      - Create payment or request
	GET    /api/transactions/{id}/ - Get transaction
	POST   /api/transactions/{id}/ - Accept or deny a request

cms:

	GET    /api/courses/                 - List courses
	POST   /api/courses/                 - Create course
	GET    /api/courses/{id}/            - Get course
	DELETE /api/courses/{id}/            - Delete course
	POST   /api/courses/{id}/add/        - Add user as student or instructor
	POST   /api/courses/{id}/assignment/ - Create assignment
	POST   /api/users/                   - Create user
	GET    /api/users/{id}/              - Get user

Unmatched requests get 404 {"error":"Not found"}; the board answers
400 {"error":"Invalid route"} instead.
*/
package router
