// Copyright (c) 2026 Inkpress Authors.
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"net/http"

	"inkpress/internal/store"
)

// Public groups the unauthenticated read handlers. Reads go straight to
// the stores — there is no cache between handler and storage, so every
// response reflects the latest committed write.
type Public struct {
	posts      *store.PostStore
	categories *store.CategoryStore
}

// NewPublic creates a new Public handler group.
func NewPublic(posts *store.PostStore, categories *store.CategoryStore) *Public {
	return &Public{posts: posts, categories: categories}
}

// ListPosts returns every post newest-first, each with its resolved
// category list.
func (p *Public) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := p.posts.List()
	if err != nil {
		storageError(w, "list posts", err)
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

// GetPost returns one post with its resolved categories.
func (p *Public) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	post, err := p.posts.FindByID(id)
	if err != nil {
		storageError(w, "get post", err)
		return
	}
	if post == nil {
		respondError(w, http.StatusNotFound, fmt.Sprintf("post %s not found", id))
		return
	}
	respondJSON(w, http.StatusOK, post)
}

// ListCategories returns the full catalog in creation order, each entry
// carrying its referencing-post count.
func (p *Public) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := p.categories.List()
	if err != nil {
		storageError(w, "list categories", err)
		return
	}
	respondJSON(w, http.StatusOK, cats)
}
