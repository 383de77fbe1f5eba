package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data: a small
// category catalog and a welcome post linked to one of the categories.
// It is a no-op if any category already exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	var techID string
	err = tx.QueryRow(`INSERT INTO categories (name) VALUES ('Tech') RETURNING id`).Scan(&techID)
	if err != nil {
		return fmt.Errorf("seed insert category: %w", err)
	}
	if _, err := tx.Exec(`INSERT INTO categories (name) VALUES ('Life')`); err != nil {
		return fmt.Errorf("seed insert category: %w", err)
	}

	var postID string
	err = tx.QueryRow(`
		INSERT INTO posts (title, content, cover_image_url)
		VALUES ($1, $2, $3)
		RETURNING id
	`, "Welcome to Inkpress",
		"This is your <b>first</b> post. Edit or delete it from the admin API.",
		"",
	).Scan(&postID)
	if err != nil {
		return fmt.Errorf("seed insert post: %w", err)
	}

	_, err = tx.Exec(`INSERT INTO post_categories (post_id, category_id) VALUES ($1, $2)`, postID, techID)
	if err != nil {
		return fmt.Errorf("seed link post: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded with starter categories and welcome post")
	return nil
}
