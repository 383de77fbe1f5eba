// Copyright (c) 2026 Inkpress Authors.
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

// subjectKey is the context key for the verified bearer subject.
const subjectKey contextKey = "subject"

// RequireBearer verifies the bearer credential on every request before it
// reaches a mutating handler. Tokens are issued elsewhere; this middleware
// only checks the HMAC signature and standard claims against the shared
// secret. Missing, malformed, or invalid credentials fail with 401 and the
// standard error body, and the handler is never invoked.
func RequireBearer(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, "authentication required")
				return
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				unauthorized(w, "authentication required")
				return
			}

			claims := &jwt.RegisteredClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				unauthorized(w, "invalid credential")
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SubjectFromCtx returns the verified bearer subject, or "" when the
// request did not pass through RequireBearer.
func SubjectFromCtx(ctx context.Context) string {
	subject, _ := ctx.Value(subjectKey).(string)
	return subject
}

// unauthorized writes the standard 401 error body.
func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + msg + `"}`))
}
