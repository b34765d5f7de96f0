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

// UserStore reads and mutates account rows in the shared "User" table.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a new UserStore with the given database connection.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// ListRecent returns up to limit accounts, newest first.
func (s *UserStore) ListRecent(ctx context.Context, limit int) ([]models.UserSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, email, "namaLengkap", "createdAt"
		FROM "User"
		ORDER BY "createdAt" DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []models.UserSummary
	for rows.Next() {
		var u models.UserSummary
		if err := rows.Scan(&u.ID, &u.Email, &u.NamaLengkap, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// ApplyUpdate applies a partial update to one account. Returns the number
// of rows affected; zero means no such account.
func (s *UserStore) ApplyUpdate(ctx context.Context, id string, assignments []update.Assignment) (int64, error) {
	return execUpdate(ctx, s.db, "User", id, assignments)
}

// Delete removes an account by id. Returns the number of rows affected.
func (s *UserStore) Delete(ctx context.Context, id string) (int64, error) {
	return execDelete(ctx, s.db, "User", id)
}
