// Package models defines the typed entities the admin backend works with:
// the admin credential it owns, and read/write views over the shared
// Renunganku schema owned by the primary application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is an administrator credential. This is the only table the
// admin backend owns; rows are seeded at startup, never created via API.
type AdminUser struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsSuperadmin bool      `json:"isSuperadmin"`
	CreatedAt    time.Time `json:"createdAt"`
}
