// Copyright (c) 2026 Inkpress Authors.
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a content item with a title, a rich-text body, a cover image
// reference, and zero or more categories.
//
// Content holds the author's input verbatim. Sanitization to the inline
// allow-list happens at render time (pkg/sanitize), never at write time,
// so render paths must not inject Content into a document unsanitized.
type Post struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	CoverImageURL string    `json:"coverImageURL"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// Categories is the post's resolved category list in catalog
	// (creation) order. Always non-nil so it marshals as [].
	Categories []Category `json:"categories"`
}
