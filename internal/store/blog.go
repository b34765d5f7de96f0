// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"renadmin/internal/blog"
	"renadmin/internal/models"
)

// ErrDuplicateSlug is returned when an insert or replace hits the unique
// constraint on "BlogPost".slug.
var ErrDuplicateSlug = errors.New("slug already in use")

// uniqueViolation is the PostgreSQL error code for unique constraint hits.
const uniqueViolation = "23505"

// blogColumns is the SELECT list shared by every blog query. Tags are
// shipped as JSON so the scan is explicit rather than driver-dependent,
// and enums are cast to text.
const blogColumns = `
	  "id",
	  "slug",
	  "title",
	  "excerpt",
	  "category"::text,
	  "readTimeMinutes",
	  "publishedAt",
	  "authorName",
	  "authorRole",
	  array_to_json(tags)::text,
	  "status"::text,
	  body,
	  "createdAt",
	  "updatedAt"`

// BlogStore reads and writes editorial posts in the shared "BlogPost" table.
type BlogStore struct {
	db *sql.DB
}

// NewBlogStore creates a new BlogStore with the given database connection.
func NewBlogStore(db *sql.DB) *BlogStore {
	return &BlogStore{db: db}
}

// ListRecent returns up to limit posts ordered by publish time (nulls
// last), then creation time, descending.
func (s *BlogStore) ListRecent(ctx context.Context, limit int) ([]models.BlogPost, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT`+blogColumns+`
		FROM "BlogPost"
		ORDER BY "publishedAt" DESC NULLS LAST, "createdAt" DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	var posts []models.BlogPost
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

// FindByID retrieves a blog post by id. Returns nil if not found.
func (s *BlogStore) FindByID(ctx context.Context, id string) (*models.BlogPost, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT`+blogColumns+`
		FROM "BlogPost"
		WHERE "id" = $1
	`, id)

	p, err := scanBlogPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Insert stores a validated submission under a freshly generated id and
// returns the stored row. A slug collision surfaces as ErrDuplicateSlug.
func (s *BlogStore) Insert(ctx context.Context, n *blog.Normalized) (*models.BlogPost, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO "BlogPost" (
		  "id", "slug", "title", "excerpt", "category", "readTimeMinutes",
		  "publishedAt", "authorName", "authorRole", tags, "status", body,
		  "updatedAt"
		)
		VALUES (
		  $1, $2, $3, $4, $5::"BlogPostCategory", $6,
		  $7, $8, $9, $10, $11::"BlogPostStatus", $12,
		  NOW()
		)
		RETURNING`+blogColumns,
		uuid.NewString(), n.Slug, n.Title, n.Excerpt, string(n.Category), n.ReadTimeMinutes,
		n.PublishedAt, n.AuthorName, n.AuthorRole, n.Tags, string(n.Status), n.Body,
	)

	p, err := scanBlogPost(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("insert blog post: %w", err)
	}
	return p, nil
}

// Replace overwrites every mutable field of one blog post and returns the
// stored row. Returns nil if the post does not exist; a slug collision
// surfaces as ErrDuplicateSlug.
func (s *BlogStore) Replace(ctx context.Context, id string, n *blog.Normalized) (*models.BlogPost, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE "BlogPost" SET
		  "slug" = $1,
		  "title" = $2,
		  "excerpt" = $3,
		  "category" = $4::"BlogPostCategory",
		  "readTimeMinutes" = $5,
		  "publishedAt" = $6,
		  "authorName" = $7,
		  "authorRole" = $8,
		  tags = $9,
		  "status" = $10::"BlogPostStatus",
		  body = $11,
		  "updatedAt" = NOW()
		WHERE "id" = $12
		RETURNING`+blogColumns,
		n.Slug, n.Title, n.Excerpt, string(n.Category), n.ReadTimeMinutes,
		n.PublishedAt, n.AuthorName, n.AuthorRole, n.Tags, string(n.Status), n.Body,
		id,
	)

	p, err := scanBlogPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("replace blog post: %w", err)
	}
	return p, nil
}

// SlugExists reports whether any blog post already uses the given slug.
func (s *BlogStore) SlugExists(ctx context.Context, slug string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `
		SELECT 1 FROM "BlogPost" WHERE "slug" = $1 LIMIT 1
	`, slug).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check blog slug: %w", err)
	}
	return true, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanBlogPost decodes one blog row. Any column that fails to decode is an
// error — no silent zero-value substitution.
func scanBlogPost(row rowScanner) (*models.BlogPost, error) {
	var (
		p       models.BlogPost
		tagJSON string
	)
	if err := row.Scan(
		&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Category, &p.ReadTimeMinutes,
		&p.PublishedAt, &p.AuthorName, &p.AuthorRole, &tagJSON, &p.Status,
		&p.Body, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan blog post: %w", err)
	}

	if err := json.Unmarshal([]byte(tagJSON), &p.Tags); err != nil {
		return nil, fmt.Errorf("decode blog tags: %w", err)
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return &p, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
