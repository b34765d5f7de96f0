package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin upserts the default superadmin credential by email. The
// password hash is refreshed on every start so rotating the env var takes
// effect. Seeding is skipped when either value is empty.
func SeedAdmin(db *sql.DB, email, password string) error {
	if email == "" || password == "" {
		slog.Info("admin seed skipped — ADMIN_DEFAULT_EMAIL/PASSWORD not set")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO admin_users (id, email, password_hash, is_superadmin)
		VALUES ($1, $2, $3, TRUE)
		ON CONFLICT (email) DO UPDATE
		SET password_hash = EXCLUDED.password_hash
	`, uuid.New(), email, string(hash))
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("default admin user seeded", "email", email)
	return nil
}
