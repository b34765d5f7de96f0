// Package store tests run against a real PostgreSQL instance and are
// skipped when none is reachable. The shared content tables are created
// on demand so the suite works on an empty database.
package store

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func testDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "renunganku")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "renunganku")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

// testDB connects to the test database, skipping the test when it is not
// available, and makes sure the shared schema exists.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not available: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ensureSchema(t, db)
	return db
}

// ensureSchema creates the subset of the shared Renunganku schema these
// tests touch. Everything is IF NOT EXISTS so an existing database is
// left alone.
func ensureSchema(t *testing.T, db *sql.DB) {
	t.Helper()

	stmts := []string{
		`DO $$ BEGIN
			CREATE TYPE "BlogPostCategory" AS ENUM ('ProductAndVision', 'Engineering', 'Design', 'Culture');
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
		`DO $$ BEGIN
			CREATE TYPE "BlogPostStatus" AS ENUM ('DRAFT', 'SCHEDULED', 'PUBLISHED');
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
		`CREATE TABLE IF NOT EXISTS "User" (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL,
			"namaLengkap" TEXT NOT NULL,
			"createdAt" TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS "Post" (
			id TEXT PRIMARY KEY,
			title TEXT,
			content TEXT NOT NULL,
			"authorId" TEXT NOT NULL REFERENCES "User"(id) ON DELETE CASCADE,
			"createdAt" TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS "PostImage" (
			id TEXT PRIMARY KEY,
			url TEXT NOT NULL,
			"postId" TEXT NOT NULL REFERENCES "Post"(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS "PostVideo" (
			id TEXT PRIMARY KEY,
			url TEXT NOT NULL,
			duration DOUBLE PRECISION,
			"postId" TEXT NOT NULL REFERENCES "Post"(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS "Story" (
			id TEXT PRIMARY KEY,
			"mediaUrl" TEXT NOT NULL,
			"thumbnailUrl" TEXT,
			caption TEXT,
			type TEXT NOT NULL DEFAULT 'IMAGE',
			"userId" TEXT NOT NULL REFERENCES "User"(id) ON DELETE CASCADE,
			"createdAt" TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			"expiresAt" TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS "BlogPost" (
			id TEXT PRIMARY KEY,
			slug TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			excerpt TEXT NOT NULL,
			category "BlogPostCategory" NOT NULL,
			"readTimeMinutes" INTEGER NOT NULL,
			"publishedAt" TIMESTAMPTZ,
			"authorName" TEXT NOT NULL,
			"authorRole" TEXT NOT NULL,
			tags TEXT[] NOT NULL DEFAULT '{}',
			status "BlogPostStatus" NOT NULL,
			body TEXT,
			"createdAt" TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			"updatedAt" TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS admin_users (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			is_superadmin BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("ensure schema: %v", err)
		}
	}
}

// seedUser inserts an account row and registers its cleanup. Dependent
// rows go with it via ON DELETE CASCADE.
func seedUser(t *testing.T, db *sql.DB) string {
	t.Helper()

	id := uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO "User" (id, email, "namaLengkap")
		VALUES ($1, $2, $3)
	`, id, id+"@example.com", "Budi Santoso")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	t.Cleanup(func() {
		db.Exec(`DELETE FROM "User" WHERE id = $1`, id)
	})
	return id
}

// seedPost inserts a feed post owned by userID.
func seedPost(t *testing.T, db *sql.DB, userID string) string {
	t.Helper()

	id := uuid.NewString()
	title := "Renungan pagi"
	_, err := db.Exec(`
		INSERT INTO "Post" (id, title, content, "authorId")
		VALUES ($1, $2, $3, $4)
	`, id, title, "Isi renungan hari ini.", userID)
	if err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return id
}

// seedStory inserts a story owned by userID that expires in a day.
func seedStory(t *testing.T, db *sql.DB, userID string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO "Story" (id, "mediaUrl", type, "userId", "expiresAt")
		VALUES ($1, $2, 'IMAGE', $3, $4)
	`, id, "https://cdn.example.com/story.jpg", userID, time.Now().Add(24*time.Hour))
	if err != nil {
		t.Fatalf("seed story: %v", err)
	}
	return id
}

func testCtx() context.Context { return context.Background() }
