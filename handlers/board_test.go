// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/coursework-api/models"
	"github.com/danielhkuo/coursework-api/testutil"
)

func TestBoard_CreatePost(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "valid post",
			requestBody:    map[string]string{"title": "Dog", "link": "https://example.com/dog.jpg", "username": "raahi"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing title",
			requestBody:    map[string]string{"link": "https://example.com", "username": "raahi"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Title required",
		},
		{
			name:           "missing link",
			requestBody:    map[string]string{"title": "Dog", "username": "raahi"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Link required",
		},
		{
			name:           "missing username",
			requestBody:    map[string]string{"title": "Dog", "link": "https://example.com"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Username required",
		},
		{
			name:           "invalid JSON",
			requestBody:    "{title",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBoardHandler()
			w := call(h.CreatePost, "POST", "/api/posts/", tt.requestBody)

			if tt.expectedError != "" {
				testutil.AssertError(t, w, tt.expectedStatus, tt.expectedError)
				return
			}
			testutil.AssertStatus(t, w, tt.expectedStatus)

			var post models.Post
			testutil.AssertJSON(t, w, &post)
			if post.ID != 2 || post.Upvotes != 1 || post.Title != "Dog" {
				t.Errorf("Unexpected post: %+v", post)
			}
		})
	}
}

func TestBoard_UpvotePost(t *testing.T) {
	tests := []struct {
		name           string
		pid            string
		requestBody    any
		expectedStatus int
		expectedError  string
		wantUpvotes    int64
	}{
		{"empty body", "1", nil, http.StatusOK, "", 4},
		{"explicit upvotes", "1", map[string]any{"upvotes": 5}, http.StatusOK, "", 8},
		{"null upvotes", "1", map[string]any{"upvotes": nil}, http.StatusOK, "", 4},
		{"string upvotes", "1", map[string]any{"upvotes": "5"}, http.StatusBadRequest, "Upvotes must be of type <int>", 0},
		{"float upvotes", "1", `{"upvotes": 1.5}`, http.StatusBadRequest, "Upvotes must be of type <int>", 0},
		{"unknown post", "7", nil, http.StatusNotFound, "Post not found", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBoardHandler()
			w := call(h.UpvotePost, "POST", "/api/posts/"+tt.pid+"/", tt.requestBody, "pid", tt.pid)

			if tt.expectedError != "" {
				testutil.AssertError(t, w, tt.expectedStatus, tt.expectedError)
				return
			}
			testutil.AssertStatus(t, w, tt.expectedStatus)

			var post models.Post
			testutil.AssertJSON(t, w, &post)
			if post.Upvotes != tt.wantUpvotes {
				t.Errorf("Expected %d upvotes, got %d", tt.wantUpvotes, post.Upvotes)
			}
		})
	}
}

// A client still uploading an upvote body does not block other board requests
func TestBoard_UpvoteSlowBody(t *testing.T) {
	h := NewBoardHandler()

	pr, pw := io.Pipe()
	req := httptest.NewRequest("POST", "/api/posts/1/", pr)
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("pid", "1")
	upvoteRec := httptest.NewRecorder()

	upvoted := make(chan struct{})
	go func() {
		defer close(upvoted)
		h.UpvotePost(upvoteRec, req)
	}()

	got := make(chan *httptest.ResponseRecorder)
	go func() {
		got <- call(h.GetPost, "GET", "/api/posts/1/", nil, "pid", "1")
	}()

	select {
	case w := <-got:
		testutil.AssertStatus(t, w, http.StatusOK)
	case <-time.After(2 * time.Second):
		t.Fatal("GetPost blocked behind an unfinished upvote body")
	}

	pw.Write([]byte(`{"upvotes": 2}`))
	pw.Close()
	<-upvoted

	testutil.AssertStatus(t, upvoteRec, http.StatusOK)
	var post models.Post
	testutil.AssertJSON(t, upvoteRec, &post)
	if post.Upvotes != 5 {
		t.Errorf("Expected 5 upvotes, got %d", post.Upvotes)
	}
}

func TestBoard_Comments(t *testing.T) {
	h := NewBoardHandler()

	w := call(h.ListComments, "GET", "/api/posts/0/comments/", nil, "pid", "0")
	testutil.AssertStatus(t, w, http.StatusOK)

	var list models.CommentListResponse
	testutil.AssertJSON(t, w, &list)
	if len(list.Comments) != 1 || list.Comments[0].Upvotes != 8 {
		t.Fatalf("Unexpected seeded comments: %+v", list.Comments)
	}

	// comment ids are global, so the first comment on post 1 is id 1
	w = call(h.CreateComment, "POST", "/api/posts/1/comments/", map[string]string{"text": "nice", "username": "raahi"}, "pid", "1")
	testutil.AssertStatus(t, w, http.StatusCreated)

	var comment models.Comment
	testutil.AssertJSON(t, w, &comment)
	if comment.ID != 1 || comment.Upvotes != 1 {
		t.Errorf("Unexpected comment: %+v", comment)
	}

	w = call(h.EditComment, "POST", "/api/posts/1/comments/1/", map[string]string{"text": "very nice"}, "pid", "1", "cid", "1")
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, &comment)
	if comment.Text != "very nice" || comment.Username != "raahi" {
		t.Errorf("Unexpected edited comment: %+v", comment)
	}

	w = call(h.EditComment, "POST", "/api/posts/1/comments/0/", map[string]string{"text": "x"}, "pid", "1", "cid", "0")
	testutil.AssertError(t, w, http.StatusNotFound, "Comment not found")

	w = call(h.CreateComment, "POST", "/api/posts/9/comments/", map[string]string{"text": "x", "username": "y"}, "pid", "9")
	testutil.AssertError(t, w, http.StatusNotFound, "Post not found")

	w = call(h.CreateComment, "POST", "/api/posts/1/comments/", map[string]string{"username": "y"}, "pid", "1")
	testutil.AssertError(t, w, http.StatusBadRequest, "Text required")
}

func TestBoard_DeletePostRemovesComments(t *testing.T) {
	h := NewBoardHandler()

	w := call(h.DeletePost, "DELETE", "/api/posts/0/", nil, "pid", "0")
	testutil.AssertStatus(t, w, http.StatusOK)

	var post models.Post
	testutil.AssertJSON(t, w, &post)
	if post.Title != "My cat is the cutest!" {
		t.Errorf("Expected deleted post to be returned, got %+v", post)
	}

	w = call(h.GetPost, "GET", "/api/posts/0/", nil, "pid", "0")
	testutil.AssertError(t, w, http.StatusNotFound, "Post not found")

	w = call(h.ListComments, "GET", "/api/posts/0/comments/", nil, "pid", "0")
	testutil.AssertError(t, w, http.StatusNotFound, "Post not found")
}

func TestBoard_ListPostsSorted(t *testing.T) {
	h := NewBoardHandler()

	// a third post ties with post 0 at one upvote
	call(h.CreatePost, "POST", "/api/posts/", map[string]string{"title": "t", "link": "l", "username": "u"})

	tests := []struct {
		sort    string
		wantIDs []int64
	}{
		{"", []int64{0, 1, 2}},
		{"increasing", []int64{0, 2, 1}},
		{"decreasing", []int64{1, 0, 2}},
		{"sideways", []int64{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run("sort="+tt.sort, func(t *testing.T) {
			w := call(h.ListPostsSorted, "GET", "/api/extra/posts/?sort="+tt.sort, nil)
			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.PostListResponse
			testutil.AssertJSON(t, w, &resp)
			if len(resp.Posts) != len(tt.wantIDs) {
				t.Fatalf("Expected %d posts, got %d", len(tt.wantIDs), len(resp.Posts))
			}
			for i, id := range tt.wantIDs {
				if resp.Posts[i].ID != id {
					t.Errorf("Position %d: expected post %d, got %d", i, id, resp.Posts[i].ID)
				}
			}
		})
	}
}

func TestBoard_CheckedRoutes(t *testing.T) {
	tests := []struct {
		name          string
		handler       func(h *BoardHandler) http.HandlerFunc
		pathValues    []string
		requestBody   any
		expectedError string
	}{
		{
			name:          "post title not a string",
			handler:       func(h *BoardHandler) http.HandlerFunc { return h.CreatePostChecked },
			requestBody:   map[string]any{"title": 5, "link": "l", "username": "u"},
			expectedError: "Title must be of type <str>",
		},
		{
			name:          "post username missing",
			handler:       func(h *BoardHandler) http.HandlerFunc { return h.CreatePostChecked },
			requestBody:   map[string]any{"title": "t", "link": "l"},
			expectedError: "Username required",
		},
		{
			name:          "comment text not a string",
			handler:       func(h *BoardHandler) http.HandlerFunc { return h.CreateCommentChecked },
			pathValues:    []string{"pid", "0"},
			requestBody:   map[string]any{"text": []string{"a"}, "username": "u"},
			expectedError: "Text must be of type <str>",
		},
		{
			name:          "comment username not a string",
			handler:       func(h *BoardHandler) http.HandlerFunc { return h.CreateCommentChecked },
			pathValues:    []string{"pid", "0"},
			requestBody:   map[string]any{"text": "t", "username": true},
			expectedError: "Username must be of type <str>",
		},
		{
			name:          "edit text not a string",
			handler:       func(h *BoardHandler) http.HandlerFunc { return h.EditCommentChecked },
			pathValues:    []string{"pid", "0", "cid", "0"},
			requestBody:   map[string]any{"text": 1},
			expectedError: "Text must be of type <str>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBoardHandler()
			w := call(tt.handler(h), "POST", "/api/extra/", tt.requestBody, tt.pathValues...)
			testutil.AssertError(t, w, http.StatusBadRequest, tt.expectedError)
		})
	}

	t.Run("valid checked post", func(t *testing.T) {
		h := NewBoardHandler()
		w := call(h.CreatePostChecked, "POST", "/api/extra/posts/", map[string]any{"title": "t", "link": "l", "username": "u"})
		testutil.AssertStatus(t, w, http.StatusCreated)
	})

	t.Run("valid checked edit", func(t *testing.T) {
		h := NewBoardHandler()
		w := call(h.EditCommentChecked, "POST", "/api/extra/posts/0/comments/0/", map[string]any{"text": "edited"}, "pid", "0", "cid", "0")
		testutil.AssertStatus(t, w, http.StatusOK)

		var comment models.Comment
		testutil.AssertJSON(t, w, &comment)
		if comment.Text != "edited" {
			t.Errorf("Expected edited text, got %q", comment.Text)
		}
	})
}
