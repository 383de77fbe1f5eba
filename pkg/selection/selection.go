// Copyright (c) 2026 Inkpress Authors.
// All rights reserved. See LICENSE for details.

// Package selection implements the category selection logic an editing
// client runs when rendering a post form: it merges the full category
// catalog with the post's currently-assigned categories into a checkable
// list, and flattens user edits back into the categoryIds payload for
// the write API. All functions are pure; there is no I/O here.
package selection

import "github.com/google/uuid"

// Category is a catalog entry as the reconciler sees it.
type Category struct {
	ID   uuid.UUID
	Name string
}

// SelectableCategory is one row of the checkable selection list. It is a
// transient view over catalog ∪ assignments for one post; it has no
// persistence and is recomputed on every post load.
type SelectableCategory struct {
	ID         uuid.UUID
	Name       string
	IsSelected bool
}

// Build merges the catalog with a post's assigned category ids into a
// selection list. Catalog order is preserved; an entry is selected iff
// its id appears in assigned. For a not-yet-created post, assigned is
// empty. Build is deterministic: identical inputs yield identical output.
func Build(catalog []Category, assigned []uuid.UUID) []SelectableCategory {
	assignedSet := make(map[uuid.UUID]struct{}, len(assigned))
	for _, id := range assigned {
		assignedSet[id] = struct{}{}
	}

	list := make([]SelectableCategory, len(catalog))
	for i, c := range catalog {
		_, selected := assignedSet[c.ID]
		list[i] = SelectableCategory{ID: c.ID, Name: c.Name, IsSelected: selected}
	}
	return list
}

// Toggle returns a new list identical to list except the entry with the
// given id has its IsSelected flipped. An unknown id is a no-op; the
// input list is never modified.
func Toggle(list []SelectableCategory, id uuid.UUID) []SelectableCategory {
	out := make([]SelectableCategory, len(list))
	for i, c := range list {
		if c.ID == id {
			c.IsSelected = !c.IsSelected
		}
		out[i] = c
	}
	return out
}

// Flatten returns the ids of the selected entries in list order. This is
// exactly the categoryIds payload for a post write.
func Flatten(list []SelectableCategory) []uuid.UUID {
	ids := []uuid.UUID{}
	for _, c := range list {
		if c.IsSelected {
			ids = append(ids, c.ID)
		}
	}
	return ids
}
