// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"slices"
	"sync"

	"github.com/goccy/go-json"

	"github.com/danielhkuo/coursework-api/memory"
	"github.com/danielhkuo/coursework-api/middleware"
	"github.com/danielhkuo/coursework-api/models"
)

// BoardHandler serves the in-memory post and comment board.
// Comment ids are global across posts.
type BoardHandler struct {
	mu       sync.Mutex
	posts    *memory.OrderedMap[models.Post]
	comments map[int64]*memory.OrderedMap[models.Comment]
	pids     *memory.Sequence
	cids     *memory.Sequence
}

// NewBoardHandler returns a board seeded with two posts and one comment
func NewBoardHandler() *BoardHandler {
	h := &BoardHandler{
		posts:    memory.NewOrderedMap[models.Post](),
		comments: make(map[int64]*memory.OrderedMap[models.Comment]),
		pids:     memory.NewSequence(0),
		cids:     memory.NewSequence(0),
	}

	h.addPost(models.Post{Upvotes: 1, Title: "My cat is the cutest!", Link: "https://i.imgur.com/jseZqNK.jpg", Username: "alicia98"})
	h.addPost(models.Post{Upvotes: 3, Title: "Cat loaf", Link: "https://i.imgur.com/TJ46wX4.jpg", Username: "alicia98"})
	h.addComment(0, models.Comment{Upvotes: 8, Text: "Wow, my first Reddit gold!", Username: "alicia98"})

	return h
}

// addPost assigns the next post id. Caller holds mu.
func (h *BoardHandler) addPost(p models.Post) models.Post {
	p.ID = h.pids.Next()
	h.posts.Set(p.ID, p)
	h.comments[p.ID] = memory.NewOrderedMap[models.Comment]()
	return p
}

// addComment assigns the next comment id. Caller holds mu and has checked the post.
func (h *BoardHandler) addComment(pid int64, c models.Comment) models.Comment {
	c.ID = h.cids.Next()
	h.comments[pid].Set(c.ID, c)
	return c
}

// boardID reads an integer path parameter; anything else is an unknown route
func boardID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, ok := middleware.PathInt(r, name)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidRoute)
	}
	return id, ok
}

// Hello handles GET /
func (h *BoardHandler) Hello(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Hello world!"))
}

// InvalidRoute answers every request no other route matches
func (h *BoardHandler) InvalidRoute(w http.ResponseWriter, r *http.Request) {
	middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidRoute)
}

// ListPosts handles GET /api/posts/
func (h *BoardHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	posts := h.posts.Values()
	h.mu.Unlock()

	middleware.JSONResponse(w, http.StatusOK, models.PostListResponse{Posts: posts})
}

// ListPostsSorted handles GET /api/extra/posts/?sort=increasing|decreasing.
// Posts with equal upvotes keep their creation order.
func (h *BoardHandler) ListPostsSorted(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	posts := h.posts.Values()
	h.mu.Unlock()

	switch r.URL.Query().Get("sort") {
	case models.SortIncreasing:
		slices.SortStableFunc(posts, func(a, b models.Post) int {
			return cmpUpvotes(a.Upvotes, b.Upvotes)
		})
	case models.SortDecreasing:
		slices.SortStableFunc(posts, func(a, b models.Post) int {
			return cmpUpvotes(b.Upvotes, a.Upvotes)
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.PostListResponse{Posts: posts})
}

func cmpUpvotes(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// CreatePost handles POST /api/posts/
func (h *BoardHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePostRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if !required(w, req.Title, "Title") || !required(w, req.Link, "Link") || !required(w, req.Username, "Username") {
		return
	}

	h.createPost(w, *req.Title, *req.Link, *req.Username)
}

// CreatePostChecked handles POST /api/extra/posts/, reporting fields of the wrong type
func (h *BoardHandler) CreatePostChecked(w http.ResponseWriter, r *http.Request) {
	body, err := middleware.ParseJSONObject(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	title, ok := stringField(w, body, "title", "Title")
	if !ok {
		return
	}
	link, ok := stringField(w, body, "link", "Link")
	if !ok {
		return
	}
	username, ok := stringField(w, body, "username", "Username")
	if !ok {
		return
	}

	h.createPost(w, title, link, username)
}

func (h *BoardHandler) createPost(w http.ResponseWriter, title, link, username string) {
	h.mu.Lock()
	post := h.addPost(models.Post{Upvotes: 1, Title: title, Link: link, Username: username})
	h.mu.Unlock()

	slog.Info("post created", "post_id", post.ID, "username", username)
	middleware.JSONResponse(w, http.StatusCreated, post)
}

// GetPost handles GET /api/posts/{pid}/
func (h *BoardHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	pid, ok := boardID(w, r, "pid")
	if !ok {
		return
	}

	h.mu.Lock()
	post, ok := h.posts.Get(pid)
	h.mu.Unlock()
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Post not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, post)
}

// UpvotePost handles POST /api/posts/{pid}/. The body is optional and
// upvotes defaults to 1.
func (h *BoardHandler) UpvotePost(w http.ResponseWriter, r *http.Request) {
	pid, ok := boardID(w, r, "pid")
	if !ok {
		return
	}

	body, err := middleware.ParseJSONObject(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	upvotes := int64(1)
	if v, present := body["upvotes"]; present && v != nil {
		n, isInt := intValue(v)
		if !isInt {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Upvotes must be of type <int>")
			return
		}
		upvotes = n
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	post, ok := h.posts.Get(pid)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Post not found")
		return
	}

	post.Upvotes += upvotes
	h.posts.Set(pid, post)

	middleware.JSONResponse(w, http.StatusOK, post)
}

// DeletePost handles DELETE /api/posts/{pid}/. The post's comments go with it.
func (h *BoardHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	pid, ok := boardID(w, r, "pid")
	if !ok {
		return
	}

	h.mu.Lock()
	post, ok := h.posts.Delete(pid)
	if ok {
		delete(h.comments, pid)
	}
	h.mu.Unlock()
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Post not found")
		return
	}

	slog.Info("post deleted", "post_id", pid)
	middleware.JSONResponse(w, http.StatusOK, post)
}

// ListComments handles GET /api/posts/{pid}/comments/
func (h *BoardHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	pid, ok := boardID(w, r, "pid")
	if !ok {
		return
	}

	h.mu.Lock()
	comments, ok := h.comments[pid]
	var list []models.Comment
	if ok {
		list = comments.Values()
	}
	h.mu.Unlock()
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Post not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CommentListResponse{Comments: list})
}

// CreateComment handles POST /api/posts/{pid}/comments/
func (h *BoardHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	pid, ok := boardID(w, r, "pid")
	if !ok {
		return
	}

	var req models.CreateCommentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if !required(w, req.Text, "Text") || !required(w, req.Username, "Username") {
		return
	}

	h.createComment(w, pid, *req.Text, *req.Username)
}

// CreateCommentChecked handles POST /api/extra/posts/{pid}/comments/
func (h *BoardHandler) CreateCommentChecked(w http.ResponseWriter, r *http.Request) {
	pid, ok := boardID(w, r, "pid")
	if !ok {
		return
	}

	body, err := middleware.ParseJSONObject(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	text, ok := stringField(w, body, "text", "Text")
	if !ok {
		return
	}
	username, ok := stringField(w, body, "username", "Username")
	if !ok {
		return
	}

	h.createComment(w, pid, text, username)
}

func (h *BoardHandler) createComment(w http.ResponseWriter, pid int64, text, username string) {
	h.mu.Lock()
	if _, ok := h.comments[pid]; !ok {
		h.mu.Unlock()
		middleware.ErrorResponse(w, http.StatusNotFound, "Post not found")
		return
	}
	comment := h.addComment(pid, models.Comment{Upvotes: 1, Text: text, Username: username})
	h.mu.Unlock()

	slog.Info("comment created", "post_id", pid, "comment_id", comment.ID)
	middleware.JSONResponse(w, http.StatusCreated, comment)
}

// EditComment handles POST /api/posts/{pid}/comments/{cid}/
func (h *BoardHandler) EditComment(w http.ResponseWriter, r *http.Request) {
	pid, ok := boardID(w, r, "pid")
	if !ok {
		return
	}
	cid, ok := boardID(w, r, "cid")
	if !ok {
		return
	}

	var req models.EditCommentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if !required(w, req.Text, "Text") {
		return
	}

	h.editComment(w, pid, cid, *req.Text)
}

// EditCommentChecked handles POST /api/extra/posts/{pid}/comments/{cid}/
func (h *BoardHandler) EditCommentChecked(w http.ResponseWriter, r *http.Request) {
	pid, ok := boardID(w, r, "pid")
	if !ok {
		return
	}
	cid, ok := boardID(w, r, "cid")
	if !ok {
		return
	}

	body, err := middleware.ParseJSONObject(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	text, ok := stringField(w, body, "text", "Text")
	if !ok {
		return
	}

	h.editComment(w, pid, cid, text)
}

func (h *BoardHandler) editComment(w http.ResponseWriter, pid, cid int64, text string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	comments, ok := h.comments[pid]
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Post not found")
		return
	}
	comment, ok := comments.Get(cid)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Comment not found")
		return
	}

	comment.Text = text
	comments.Set(cid, comment)

	middleware.JSONResponse(w, http.StatusOK, comment)
}

// stringField reads a required string field from a generic body, answering
// "<Label> required" or "<Label> must be of type <str>" when it is not one.
func stringField(w http.ResponseWriter, body map[string]any, key, label string) (string, bool) {
	v, present := body[key]
	if !present || v == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, label+" required")
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, label+" must be of type <str>")
		return "", false
	}
	return s, true
}

// intValue reports whether v decoded from a JSON integer literal
func intValue(v any) (int64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	i, err := n.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}
