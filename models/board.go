// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

type CreatePostRequest struct {
	Title    *string `json:"title"`
	Link     *string `json:"link"`
	Username *string `json:"username"`
}

type UpvotePostRequest struct {
	Upvotes *int64 `json:"upvotes"`
}

type CreateCommentRequest struct {
	Text     *string `json:"text"`
	Username *string `json:"username"`
}

type EditCommentRequest struct {
	Text *string `json:"text"`
}

// Response types

type PostListResponse struct {
	Posts []Post `json:"posts"`
}

type CommentListResponse struct {
	Comments []Comment `json:"comments"`
}

// Domain types

type Post struct {
	ID       int64  `json:"id"`
	Upvotes  int64  `json:"upvotes"`
	Title    string `json:"title"`
	Link     string `json:"link"`
	Username string `json:"username"`
}

type Comment struct {
	ID       int64  `json:"id"`
	Upvotes  int64  `json:"upvotes"`
	Text     string `json:"text"`
	Username string `json:"username"`
}
