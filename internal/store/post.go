// Copyright (c) 2026 Inkpress Authors.
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"inkpress/internal/models"
)

// PostStore manages posts and their category assignments.
type PostStore struct {
	db *sql.DB
}

// NewPostStore returns a new PostStore.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

const postColumns = `id, title, content, cover_image_url, created_at, updated_at`

// scanPost scans a row into a Post struct.
func scanPost(scanner interface{ Scan(...any) error }) (*models.Post, error) {
	p := models.Post{Categories: []models.Category{}}
	err := scanner.Scan(&p.ID, &p.Title, &p.Content, &p.CoverImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all posts newest-first, each with its resolved category
// list in catalog order.
func (s *PostStore) List() ([]models.Post, error) {
	rows, err := s.db.Query(`SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	items := []models.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.attachCategories(items); err != nil {
		return nil, err
	}
	return items, nil
}

// attachCategories resolves category lists for a batch of posts with a
// single join query.
func (s *PostStore) attachCategories(posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	rows, err := s.db.Query(`
		SELECT pc.post_id, c.id, c.name, c.created_at, c.updated_at
		FROM post_categories pc
		JOIN categories c ON c.id = pc.category_id
		ORDER BY c.created_at, c.id
	`)
	if err != nil {
		return fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	byPost := make(map[uuid.UUID][]models.Category)
	for rows.Next() {
		var postID uuid.UUID
		var c models.Category
		if err := rows.Scan(&postID, &c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return fmt.Errorf("scan assignment: %w", err)
		}
		byPost[postID] = append(byPost[postID], c)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range posts {
		if cats, ok := byPost[posts[i].ID]; ok {
			posts[i].Categories = cats
		}
	}
	return nil
}

// categoriesForPost returns one post's categories in catalog order.
func (s *PostStore) categoriesForPost(postID uuid.UUID) ([]models.Category, error) {
	rows, err := s.db.Query(`
		SELECT c.id, c.name, c.created_at, c.updated_at
		FROM post_categories pc
		JOIN categories c ON c.id = pc.category_id
		WHERE pc.post_id = $1
		ORDER BY c.created_at, c.id
	`, postID)
	if err != nil {
		return nil, fmt.Errorf("post categories: %w", err)
	}
	defer rows.Close()

	cats := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan post category: %w", err)
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// FindByID retrieves a post with its resolved categories. Returns nil if
// not found.
func (s *PostStore) FindByID(id uuid.UUID) (*models.Post, error) {
	row := s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}

	p.Categories, err = s.categoriesForPost(p.ID)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a post and its category assignments in one transaction
// and returns the post with resolved categories. Category IDs that do not
// exist in the catalog are silently skipped.
func (s *PostStore) Create(title, content, coverImageURL string, categoryIDs []uuid.UUID) (*models.Post, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("create post begin: %w", err)
	}
	defer tx.Rollback()

	var id uuid.UUID
	err = tx.QueryRow(`
		INSERT INTO posts (title, content, cover_image_url)
		VALUES ($1, $2, $3)
		RETURNING id
	`, title, content, coverImageURL).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	if err := insertAssignments(tx, id, categoryIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create post commit: %w", err)
	}
	return s.FindByID(id)
}

// Update rewrites a post and fully replaces its category assignments:
// the prior set is discarded and superseded by categoryIDs, never merged.
// The delete and re-insert happen in one transaction so concurrent
// readers never observe a partial assignment set. Returns ErrNotFound if
// the post does not exist.
func (s *PostStore) Update(id uuid.UUID, title, content, coverImageURL string, categoryIDs []uuid.UUID) (*models.Post, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("update post begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE posts SET title = $1, content = $2, cover_image_url = $3, updated_at = now()
		WHERE id = $4
	`, title, content, coverImageURL, id)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update post rows: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	if _, err := tx.Exec(`DELETE FROM post_categories WHERE post_id = $1`, id); err != nil {
		return nil, fmt.Errorf("clear assignments: %w", err)
	}
	if err := insertAssignments(tx, id, categoryIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("update post commit: %w", err)
	}
	return s.FindByID(id)
}

// Delete removes a post by ID. Its assignments go with it via ON DELETE
// CASCADE. Returns ErrNotFound if no post has the given ID.
func (s *PostStore) Delete(id uuid.UUID) error {
	res, err := s.db.Exec(`DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete post rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// insertAssignments links a post to every requested category that exists.
// The INSERT..SELECT keeps IDs missing from the catalog out of the join
// table instead of failing the whole write, matching the foreign-key
// skip behavior the API documents. ON CONFLICT collapses duplicates in
// the request.
func insertAssignments(tx *sql.Tx, postID uuid.UUID, categoryIDs []uuid.UUID) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	ids := make([]string, len(categoryIDs))
	for i, cid := range categoryIDs {
		ids[i] = cid.String()
	}

	_, err := tx.Exec(`
		INSERT INTO post_categories (post_id, category_id)
		SELECT $1, c.id FROM categories c WHERE c.id = ANY($2::uuid[])
		ON CONFLICT DO NOTHING
	`, postID, ids)
	if err != nil {
		return fmt.Errorf("insert assignments: %w", err)
	}
	return nil
}
