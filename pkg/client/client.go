// Copyright (c) 2026 Inkpress Authors.
// All rights reserved. See LICENSE for details.

// Package client is a thin JSON client for the Inkpress content API,
// meant for presentation layers (admin UIs, static site builders). Reads
// are sent with caching disabled so the form state always reflects the
// latest write; mutations attach the caller's bearer credential.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Category mirrors the API's category representation.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	PostCount int       `json:"postCount"`
}

// Post mirrors the API's post representation.
type Post struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	CoverImageURL string     `json:"coverImageURL"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	Categories    []Category `json:"categories"`
}

// PostRequest is the write body for post create and update. CategoryIDs
// is the complete desired set — the server replaces, never merges.
type PostRequest struct {
	Title         string      `json:"title"`
	Content       string      `json:"content"`
	CoverImageURL string      `json:"coverImageURL"`
	CategoryIDs   []uuid.UUID `json:"categoryIds"`
}

// CategoryRequest is the write body for category create and update.
type CategoryRequest struct {
	Name string `json:"name"`
}

// APIError is a non-2xx answer from the API, carrying the decoded
// {"error": ...} message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Client calls the Inkpress content API.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// New creates a client for the API at baseURL. token is the bearer
// credential attached to mutating calls; it may be empty for a
// read-only client.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// ListPosts fetches all posts with their categories, newest first.
func (c *Client) ListPosts() ([]Post, error) {
	var posts []Post
	if err := c.do(http.MethodGet, "/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost fetches one post with its categories.
func (c *Client) GetPost(id uuid.UUID) (*Post, error) {
	var post Post
	if err := c.do(http.MethodGet, "/posts/"+id.String(), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// ListCategories fetches the full catalog in creation order.
func (c *Client) ListCategories() ([]Category, error) {
	var cats []Category
	if err := c.do(http.MethodGet, "/categories", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// CreatePost creates a post.
func (c *Client) CreatePost(req PostRequest) (*Post, error) {
	var post Post
	if err := c.do(http.MethodPost, "/admin/posts", req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost rewrites a post, fully replacing its category assignments.
func (c *Client) UpdatePost(id uuid.UUID, req PostRequest) (*Post, error) {
	var post Post
	if err := c.do(http.MethodPut, "/admin/posts/"+id.String(), req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes a post. Destructive: callers should confirm with
// the user before invoking it.
func (c *Client) DeletePost(id uuid.UUID) error {
	return c.do(http.MethodDelete, "/admin/posts/"+id.String(), nil, nil)
}

// CreateCategory adds a category to the catalog.
func (c *Client) CreateCategory(req CategoryRequest) (*Category, error) {
	var cat Category
	if err := c.do(http.MethodPost, "/admin/categories", req, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// UpdateCategory renames a category.
func (c *Client) UpdateCategory(id uuid.UUID, req CategoryRequest) (*Category, error) {
	var cat Category
	if err := c.do(http.MethodPut, "/admin/categories/"+id.String(), req, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// DeleteCategory removes a category. Destructive: callers should confirm
// with the user before invoking it.
func (c *Client) DeleteCategory(id uuid.UUID) error {
	return c.do(http.MethodDelete, "/admin/categories/"+id.String(), nil, nil)
}

// do performs one API call: marshals body if present, attaches headers,
// decodes a 2xx answer into out or a failure into *APIError.
func (c *Client) do(method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodGet {
		req.Header.Set("Cache-Control", "no-store")
	} else if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}

// decodeError turns a failure body into an *APIError, falling back to
// the raw status when the body is not the standard shape.
func decodeError(status int, body []byte) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Error == "" {
		return &APIError{Status: status, Message: http.StatusText(status)}
	}
	return &APIError{Status: status, Message: payload.Error}
}
