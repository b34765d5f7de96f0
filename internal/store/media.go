// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"renadmin/internal/models"
)

// MediaStore reads and deletes attachment rows in the shared "PostImage"
// and "PostVideo" tables.
type MediaStore struct {
	db *sql.DB
}

// NewMediaStore creates a new MediaStore with the given database connection.
func NewMediaStore(db *sql.DB) *MediaStore {
	return &MediaStore{db: db}
}

// mediaTables maps a media kind to its table. Handlers validate the kind
// before any store call, so an unknown kind here is a programming error.
var mediaTables = map[models.MediaKind]string{
	models.MediaKindImage: "PostImage",
	models.MediaKindVideo: "PostVideo",
}

// ListRecent returns up to limit attachments across both tables, tagged
// with their kind and ordered by the parent post's creation time, newest
// first. Duration is only present for videos.
func (s *MediaStore) ListRecent(ctx context.Context, limit int) ([]models.MediaItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT * FROM (
		  SELECT
		    pi.id,
		    'image' AS kind,
		    pi.url,
		    pi."postId",
		    u.email,
		    p."createdAt",
		    NULL::double precision AS duration
		  FROM "PostImage" pi
		  JOIN "Post" p ON pi."postId" = p.id
		  JOIN "User" u ON p."authorId" = u.id
		  UNION ALL
		  SELECT
		    pv.id,
		    'video' AS kind,
		    pv.url,
		    pv."postId",
		    u.email,
		    p."createdAt",
		    pv.duration::double precision AS duration
		  FROM "PostVideo" pv
		  JOIN "Post" p ON pv."postId" = p.id
		  JOIN "User" u ON p."authorId" = u.id
		) m
		ORDER BY "createdAt" DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	var items []models.MediaItem
	for rows.Next() {
		var m models.MediaItem
		if err := rows.Scan(&m.ID, &m.Kind, &m.URL, &m.PostID, &m.AuthorEmail, &m.CreatedAt, &m.Duration); err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// Delete removes one attachment of the given kind. Returns the number of
// rows affected; zero means no such row.
func (s *MediaStore) Delete(ctx context.Context, kind models.MediaKind, id string) (int64, error) {
	table, ok := mediaTables[kind]
	if !ok {
		return 0, fmt.Errorf("unknown media kind %q", kind)
	}
	return execDelete(ctx, s.db, table, id)
}
