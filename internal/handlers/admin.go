// Copyright (c) 2026 Inkpress Authors.
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"inkpress/internal/middleware"
	"inkpress/internal/store"
)

// Admin groups the mutating handlers. Every route in this group sits
// behind the bearer middleware, so a request reaching these handlers
// always carries a verified credential.
type Admin struct {
	posts      *store.PostStore
	categories *store.CategoryStore
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(posts *store.PostStore, categories *store.CategoryStore) *Admin {
	return &Admin{posts: posts, categories: categories}
}

// --- Posts ---

// CreatePost inserts a new post with its category assignments.
func (a *Admin) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req PostRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validatePostRequest(&req); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	post, err := a.posts.Create(req.Title, req.Content, req.CoverImageURL, req.CategoryIDs)
	if err != nil {
		storageError(w, "create post", err)
		return
	}

	slog.Info("post created",
		"id", post.ID,
		"categories", len(post.Categories),
		"subject", middleware.SubjectFromCtx(r.Context()),
	)
	respondJSON(w, http.StatusCreated, post)
}

// UpdatePost rewrites a post. The request's categoryIds fully replace
// the existing assignment set.
func (a *Admin) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req PostRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validatePostRequest(&req); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	post, err := a.posts.Update(id, req.Title, req.Content, req.CoverImageURL, req.CategoryIDs)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, fmt.Sprintf("post %s not found", id))
		return
	}
	if err != nil {
		storageError(w, "update post", err)
		return
	}

	slog.Info("post updated",
		"id", post.ID,
		"categories", len(post.Categories),
		"subject", middleware.SubjectFromCtx(r.Context()),
	)
	respondJSON(w, http.StatusOK, post)
}

// DeletePost removes a post and, through the join table cascade, its
// assignments.
func (a *Admin) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	err := a.posts.Delete(id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, fmt.Sprintf("post %s not found", id))
		return
	}
	if err != nil {
		storageError(w, "delete post", err)
		return
	}

	slog.Info("post deleted", "id", id, "subject", middleware.SubjectFromCtx(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}

// --- Categories ---

// CreateCategory adds a category to the catalog.
func (a *Admin) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateCategoryRequest(&req); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	cat, err := a.categories.Create(req.Name)
	if err != nil {
		storageError(w, "create category", err)
		return
	}

	slog.Info("category created", "id", cat.ID, "subject", middleware.SubjectFromCtx(r.Context()))
	respondJSON(w, http.StatusCreated, cat)
}

// UpdateCategory renames a category.
func (a *Admin) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req CategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateCategoryRequest(&req); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	cat, err := a.categories.Update(id, req.Name)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, fmt.Sprintf("category %s not found", id))
		return
	}
	if err != nil {
		storageError(w, "update category", err)
		return
	}

	slog.Info("category updated", "id", cat.ID, "subject", middleware.SubjectFromCtx(r.Context()))
	respondJSON(w, http.StatusOK, cat)
}

// DeleteCategory removes a category. Posts still referencing it simply
// lose that one assignment; the posts themselves are never deleted.
func (a *Admin) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	err := a.categories.Delete(id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, fmt.Sprintf("category %s not found", id))
		return
	}
	if err != nil {
		storageError(w, "delete category", err)
		return
	}

	slog.Info("category deleted", "id", id, "subject", middleware.SubjectFromCtx(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}
