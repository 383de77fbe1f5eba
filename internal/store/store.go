// Copyright (c) 2026 Inkpress Authors.
// All rights reserved. See LICENSE for details.

// Package store contains the persistence layer for posts and categories.
// Stores speak raw SQL over database/sql; finders return (nil, nil) when
// no row matches, mutations on absent rows return ErrNotFound.
package store

import "errors"

// ErrNotFound is returned by updates and deletes whose target row does
// not exist.
var ErrNotFound = errors.New("not found")
