// Copyright (c) 2026 Inkpress Authors.
// All rights reserved. See LICENSE for details.

package selection

import "github.com/google/uuid"

// State is the load phase of an Editor.
type State int

const (
	// AwaitingCatalog means the category catalog has not arrived yet.
	AwaitingCatalog State = iota
	// AwaitingPost means the catalog is in but the target post is not.
	AwaitingPost
	// Ready means both inputs are present and the selection list is built.
	Ready
)

// Editor tracks the selection list for one post edit session. The
// catalog and the target post load independently and in any order, so
// the list is built exactly once, only after both inputs have arrived —
// building against a partial catalog would silently drop entries.
// Catalog refreshes after that point keep the user's in-progress toggles.
//
// Editor is not safe for concurrent use; a form runs it from a single
// goroutine in response to load completion and user input.
type Editor struct {
	catalog    []Category
	hasCatalog bool
	assigned   []uuid.UUID
	hasPost    bool
	list       []SelectableCategory
}

// NewEditor returns an editor for an existing post; both the catalog and
// the post's assignments must be fed in before the list is available.
func NewEditor() *Editor {
	return &Editor{}
}

// NewEditorForNewPost returns an editor for a post that does not exist
// yet: the assignment input is pre-satisfied with the empty set, so only
// the catalog is awaited.
func NewEditorForNewPost() *Editor {
	return &Editor{assigned: []uuid.UUID{}, hasPost: true}
}

// State reports the editor's load phase.
func (e *Editor) State() State {
	switch {
	case !e.hasCatalog:
		return AwaitingCatalog
	case !e.hasPost:
		return AwaitingPost
	default:
		return Ready
	}
}

// SetCatalog feeds the catalog in. Before the first reconciliation it
// only records the input; after the editor is ready it rebuilds the list
// from the fresh catalog, carrying over the current selections.
func (e *Editor) SetCatalog(catalog []Category) {
	ready := e.State() == Ready

	e.catalog = catalog
	e.hasCatalog = true

	if ready {
		e.list = Build(catalog, Flatten(e.list))
		return
	}
	e.reconcile()
}

// SetPost feeds the target post's assigned category ids in. Calling it
// again means a new post has loaded into the form: the list is rebuilt
// from scratch, discarding any toggles made for the previous post.
func (e *Editor) SetPost(assigned []uuid.UUID) {
	e.assigned = assigned
	e.hasPost = true
	e.list = nil
	e.reconcile()
}

// reconcile builds the selection list once both inputs are present.
func (e *Editor) reconcile() {
	if !e.hasCatalog || !e.hasPost {
		return
	}
	e.list = Build(e.catalog, e.assigned)
}

// Toggle flips one entry's selection. It does nothing until the editor
// is ready, and nothing for an unknown id.
func (e *Editor) Toggle(id uuid.UUID) {
	if e.State() != Ready {
		return
	}
	e.list = Toggle(e.list, id)
}

// Selection returns a copy of the current selection list, or nil until
// the editor is ready.
func (e *Editor) Selection() []SelectableCategory {
	if e.State() != Ready {
		return nil
	}
	out := make([]SelectableCategory, len(e.list))
	copy(out, e.list)
	return out
}

// CategoryIDs flattens the current selection into the categoryIds
// payload for a post write. It returns the empty set until the editor
// is ready.
func (e *Editor) CategoryIDs() []uuid.UUID {
	if e.State() != Ready {
		return []uuid.UUID{}
	}
	return Flatten(e.list)
}
