// Copyright (c) 2026 Inkpress Authors.
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the Inkpress content
// API. Handlers are grouped by concern (public reads, admin mutations)
// and receive their dependencies through the handler struct.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// respondError writes the standard {"error": ...} body.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// storageError logs the underlying fault and answers with a generic 500.
// Raw persistence error text never reaches the client.
func storageError(w http.ResponseWriter, op string, err error) {
	slog.Error(op+" failed", "error", err)
	respondError(w, http.StatusInternalServerError, "internal server error")
}

// decodeJSON decodes the request body into dst, reporting malformed
// bodies (including malformed ids inside them) as a 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// pathID parses the {id} route parameter as a UUID. A malformed id is a
// validation error, not a lookup miss.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "malformed id")
		return uuid.Nil, false
	}
	return id, true
}
