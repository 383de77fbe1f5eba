// Copyright (c) 2026 Inkpress Authors.
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a named tag applicable to posts. A category's lifecycle is
// independent of any post, and names are not required to be unique.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// PostCount is the number of posts currently referencing this category.
	// Populated by CategoryStore.List for display only; it is never an
	// enforced constraint (a category in use may still be deleted).
	PostCount int `json:"postCount"`
}
