package store

import (
	"context"
	"database/sql"
	"fmt"

	"renadmin/internal/models"
	"renadmin/internal/update"
)

// StoryStore reads and mutates ephemeral stories in the shared "Story" table.
type StoryStore struct {
	db *sql.DB
}

// NewStoryStore creates a new StoryStore with the given database connection.
func NewStoryStore(db *sql.DB) *StoryStore {
	return &StoryStore{db: db}
}

// ListRecent returns up to limit stories with their owner's email, newest
// first. Expired stories are included — moderators see everything.
func (s *StoryStore) ListRecent(ctx context.Context, limit int) ([]models.StorySummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
		  s.id,
		  s."mediaUrl",
		  s."thumbnailUrl",
		  s.caption,
		  s.type::text,
		  u.email,
		  s."createdAt",
		  s."expiresAt"
		FROM "Story" s
		JOIN "User" u ON s."userId" = u.id
		ORDER BY s."createdAt" DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}
	defer rows.Close()

	var stories []models.StorySummary
	for rows.Next() {
		var st models.StorySummary
		if err := rows.Scan(
			&st.ID, &st.MediaURL, &st.ThumbnailURL, &st.Caption,
			&st.Type, &st.UserEmail, &st.CreatedAt, &st.ExpiresAt,
		); err != nil {
			return nil, fmt.Errorf("scan story: %w", err)
		}
		stories = append(stories, st)
	}
	return stories, rows.Err()
}

// ApplyUpdate applies a partial update to one story. Returns the number of
// rows affected; zero means no such story.
func (s *StoryStore) ApplyUpdate(ctx context.Context, id string, assignments []update.Assignment) (int64, error) {
	return execUpdate(ctx, s.db, "Story", id, assignments)
}

// Delete removes a story by id. Returns the number of rows affected.
func (s *StoryStore) Delete(ctx context.Context, id string) (int64, error) {
	return execDelete(ctx, s.db, "Story", id)
}
