// Package main is the entry point for the Renunganku admin backend.
// It loads configuration, connects to the shared database, runs migrations
// and seeding, sets up routing, and starts the HTTP server with graceful
// shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"renadmin/internal/cache"
	"renadmin/internal/config"
	"renadmin/internal/database"
	"renadmin/internal/handlers"
	"renadmin/internal/middleware"
	"renadmin/internal/router"
	"renadmin/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded", "addr", cfg.Addr(), "cors_origin", cfg.CORSOrigin)

	// Connect to the shared PostgreSQL database.
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations (admin_users only — the rest of the schema
	// belongs to the primary application).
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the default superadmin credential (no-op when unset).
	if err := database.SeedAdmin(db, cfg.SeedEmail, cfg.SeedPassword); err != nil {
		slog.Error("failed to seed admin user", "error", err)
		os.Exit(1)
	}

	// Migration-only mode: useful as a deploy/init step.
	if cfg.MigrateOnly {
		slog.Info("migration and seeding finished (ADMIN_MIGRATE_ONLY)")
		return
	}

	// Connect to Valkey for login rate limiting (optional — the service
	// runs without it, just unthrottled).
	var valkeyClient *redis.Client
	if addr := cfg.ValkeyAddr(); addr != "" {
		valkeyClient, err = cache.ConnectValkey(addr, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
	} else {
		slog.Warn("valkey not configured — login rate limiting disabled")
	}
	loginLimiter := middleware.NewRateLimiter(valkeyClient, cfg.LoginRateLimit, cfg.TrustProxy)

	// Initialize data stores.
	adminStore := store.NewAdminUserStore(db)
	userStore := store.NewUserStore(db)
	postStore := store.NewPostStore(db)
	mediaStore := store.NewMediaStore(db)
	storyStore := store.NewStoryStore(db)
	blogStore := store.NewBlogStore(db)

	// Create the handler group and router.
	admin := handlers.NewAdmin(adminStore, userStore, postStore, mediaStore, storyStore, blogStore)
	r := router.New(admin, cfg.CORSOrigin, loginLimiter)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("admin backend listening", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
