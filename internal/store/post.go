// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"renadmin/internal/models"
	"renadmin/internal/update"
)

// PostStore reads and mutates feed posts in the shared "Post" table.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

// ListRecent returns up to limit posts with their author's email, newest first.
func (s *PostStore) ListRecent(ctx context.Context, limit int) ([]models.PostSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.title, p.content, u.email, p."createdAt"
		FROM "Post" p
		JOIN "User" u ON p."authorId" = u.id
		ORDER BY p."createdAt" DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []models.PostSummary
	for rows.Next() {
		var p models.PostSummary
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorEmail, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// ApplyUpdate applies a partial update to one post. Returns the number of
// rows affected; zero means no such post.
func (s *PostStore) ApplyUpdate(ctx context.Context, id string, assignments []update.Assignment) (int64, error) {
	return execUpdate(ctx, s.db, "Post", id, assignments)
}

// Delete removes a post by id. Returns the number of rows affected.
func (s *PostStore) Delete(ctx context.Context, id string) (int64, error) {
	return execDelete(ctx, s.db, "Post", id)
}
