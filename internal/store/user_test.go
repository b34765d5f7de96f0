package store

import (
	"testing"

	"github.com/google/uuid"

	"renadmin/internal/update"
)

func TestUserStoreLifecycle(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)
	id := seedUser(t, db)

	users, err := s.ListRecent(testCtx(), 100)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	found := false
	for _, u := range users {
		if u.ID == id {
			found = true
			if u.NamaLengkap != "Budi Santoso" {
				t.Errorf("namaLengkap: got %q", u.NamaLengkap)
			}
		}
	}
	if !found {
		t.Fatal("seeded user missing from listing")
	}

	name := "Siti Rahma"
	assignments, err := update.Build(update.String("namaLengkap", &name))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	affected, err := s.ApplyUpdate(testCtx(), id, assignments)
	if err != nil {
		t.Fatalf("ApplyUpdate: %v", err)
	}
	if affected != 1 {
		t.Errorf("ApplyUpdate affected: got %d, want 1", affected)
	}

	var got string
	if err := db.QueryRow(`SELECT "namaLengkap" FROM "User" WHERE id = $1`, id).Scan(&got); err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got != name {
		t.Errorf("namaLengkap after update: got %q, want %q", got, name)
	}

	affected, err = s.Delete(testCtx(), id)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if affected != 1 {
		t.Errorf("Delete affected: got %d, want 1", affected)
	}
}

func TestUserStoreMissingRow(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)
	id := uuid.NewString()

	email := "nobody@example.com"
	assignments, _ := update.Build(update.String("email", &email))

	affected, err := s.ApplyUpdate(testCtx(), id, assignments)
	if err != nil {
		t.Fatalf("ApplyUpdate: %v", err)
	}
	if affected != 0 {
		t.Errorf("ApplyUpdate on missing row: got %d, want 0", affected)
	}

	affected, err = s.Delete(testCtx(), id)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if affected != 0 {
		t.Errorf("Delete on missing row: got %d, want 0", affected)
	}
}
