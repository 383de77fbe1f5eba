// Copyright (c) 2026 Inkpress Authors.
// All rights reserved. See LICENSE for details.

// Package sanitize reduces stored post content to the inline allow-list
// before it is injected into a document. Storage holds the author's
// verbatim input, so every render path must pass content through HTML —
// skipping it opens an HTML-injection hole.
package sanitize

import "github.com/microcosm-cc/bluemonday"

// policy allows only inline emphasis tags: no block elements, no
// attributes, no links, no scripts.
var policy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "strong", "i", "em", "u", "br")
	return p
}()

// HTML returns s with everything outside the inline allow-list stripped.
func HTML(s string) string {
	return policy.Sanitize(s)
}
