package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/inkwell-cms/inkwell/internal/models"
)

func TestClientListAndGetPosts(t *testing.T) {
	var gotPreview string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/posts":
			_ = json.NewEncoder(w).Encode([]models.Post{{ID: "p1", Title: "one"}})
		case "/api/v1/posts/p1":
			gotPreview = r.URL.Query().Get("preview")
			_ = json.NewEncoder(w).Encode(models.Post{ID: "p1", Title: "one"})
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
		}
	}))
	defer server.Close()

	c := New(server.URL)
	posts, err := c.ListPosts(context.Background())
	if err != nil {
		t.Fatalf("list posts failed: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != "p1" {
		t.Fatalf("unexpected posts: %v", posts)
	}

	post, err := c.GetPost(context.Background(), "p1", true)
	if err != nil {
		t.Fatalf("get post failed: %v", err)
	}
	if post.Title != "one" {
		t.Fatalf("title want one got %s", post.Title)
	}
	if gotPreview != "true" {
		t.Fatalf("preview flag should be sent as query param")
	}
}

func TestClientCreatePostSendsBody(t *testing.T) {
	var received PostRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/admin/posts" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type want application/json got %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode body failed: %v", err)
		}
		_ = json.NewEncoder(w).Encode(models.Post{ID: "new", Title: received.Title})
	}))
	defer server.Close()

	c := New(server.URL)
	published := true
	post, err := c.CreatePost(context.Background(), PostRequest{
		Title:         "hello",
		Content:       "<p>x</p>",
		CoverImageURL: "https://example.com/a.png",
		CategoryIDs:   []string{"c1"},
		Published:     &published,
	})
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	if post.ID != "new" {
		t.Fatalf("id want new got %s", post.ID)
	}
	if received.Title != "hello" || len(received.CategoryIDs) != 1 {
		t.Fatalf("request body not sent correctly: %+v", received)
	}
	if received.Published == nil || !*received.Published {
		t.Fatalf("published flag should round trip")
	}
}

func TestClientAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "category name already exists"})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.CreateCategory(context.Background(), CategoryRequest{Name: "dup"})
	if err == nil {
		t.Fatalf("conflict response must yield an error")
	}
	if !IsConflict(err) {
		t.Fatalf("want conflict error got %v", err)
	}
	apiErr, ok := err.(*APIError)
	if !ok || apiErr.Message != "category name already exists" {
		t.Fatalf("error message should come from response body, got %v", err)
	}
}

func TestClientContextCancellation(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	c := New(server.URL, WithTimeout(50*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.ListPosts(ctx); err == nil {
		t.Fatalf("cancelled context must abort the request")
	}

	// 超时同样会中止挂起的请求
	start := time.Now()
	if _, err := c.ListPosts(context.Background()); err == nil {
		t.Fatalf("hanging request must time out")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("timeout took too long: %v", elapsed)
	}
}
