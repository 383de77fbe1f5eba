// Copyright (c) 2026 Inkpress Authors.
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests, which run against the real router and a live
// PostgreSQL. Tests are skipped when PostgreSQL is unavailable.
package handlers_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"inkpress/internal/database"
	"inkpress/internal/handlers"
	"inkpress/internal/models"
	"inkpress/internal/router"
	"inkpress/internal/store"
)

var testJWTSecret = []byte("handler-test-secret")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "inkpress")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "inkpress")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testServer starts the full route stack (no rate limiter) over testDB.
func testServer(t *testing.T) (*httptest.Server, *sql.DB) {
	t.Helper()
	db := testDB(t)

	posts := store.NewPostStore(db)
	categories := store.NewCategoryStore(db)
	public := handlers.NewPublic(posts, categories)
	admin := handlers.NewAdmin(posts, categories)

	srv := httptest.NewServer(router.New(public, admin, testJWTSecret, nil))
	t.Cleanup(srv.Close)
	return srv, db
}

// testToken returns a bearer credential the test server accepts.
func testToken(t *testing.T) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "tester@inkpress.local",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testJWTSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// doJSON performs a request with an optional bearer token and JSON body,
// decoding the response body into out when it is non-nil.
func doJSON(t *testing.T, method, url, token string, body any, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp
}

// doRaw fetches a URL and returns the raw response body.
func doRaw(t *testing.T, url string) []byte {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return body
}

// mustCreateCategory creates a category over the API and schedules its
// removal directly in the database.
func mustCreateCategory(t *testing.T, srv *httptest.Server, db *sql.DB, name string) models.Category {
	t.Helper()
	var cat models.Category
	resp := doJSON(t, http.MethodPost, srv.URL+"/admin/categories", testToken(t),
		map[string]string{"name": name}, &cat)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create category: status %d", resp.StatusCode)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM categories WHERE id = $1", cat.ID) })
	return cat
}

// mustCreatePost creates a post over the API and schedules its removal.
func mustCreatePost(t *testing.T, srv *httptest.Server, db *sql.DB, title string, categoryIDs []uuid.UUID) models.Post {
	t.Helper()
	var post models.Post
	resp := doJSON(t, http.MethodPost, srv.URL+"/admin/posts", testToken(t), map[string]any{
		"title":       title,
		"content":     "body",
		"categoryIds": categoryIDs,
	}, &post)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create post: status %d", resp.StatusCode)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM posts WHERE id = $1", post.ID) })
	return post
}
