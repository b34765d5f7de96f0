package store

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"renadmin/internal/models"
)

// AdminUserStore handles the admin credential table — the only table this
// service owns.
type AdminUserStore struct {
	db *sql.DB
}

// NewAdminUserStore creates a new AdminUserStore with the given database connection.
func NewAdminUserStore(db *sql.DB) *AdminUserStore {
	return &AdminUserStore{db: db}
}

// FindByEmail retrieves an admin credential by email. Returns nil if not found.
func (s *AdminUserStore) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	u := &models.AdminUser{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, is_superadmin, created_at
		FROM admin_users WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsSuperadmin, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find admin by email: %w", err)
	}
	return u, nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (s *AdminUserStore) CheckPassword(u *models.AdminUser, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
