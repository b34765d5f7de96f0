// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the admin moderation API: credential login
// and list/edit/delete over the shared Renunganku content tables.
// Error messages are user-facing and localized for the admin frontend.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"renadmin/internal/models"
	"renadmin/internal/store"
	"renadmin/internal/update"
)

// Row caps per listing. The admin frontend has no pagination; it shows the
// most recent slice of each entity.
const (
	maxUserRows  = 100
	maxPostRows  = 100
	maxMediaRows = 200
	maxStoryRows = 200
	maxBlogRows  = 200
)

// Admin groups all admin API handlers and their store dependencies.
type Admin struct {
	admins  *store.AdminUserStore
	users   *store.UserStore
	posts   *store.PostStore
	media   *store.MediaStore
	stories *store.StoryStore
	blog    *store.BlogStore

	// now supplies the clock for "publish now"; tests override it.
	now func() time.Time
}

// NewAdmin creates the admin handler group.
func NewAdmin(admins *store.AdminUserStore, users *store.UserStore, posts *store.PostStore,
	media *store.MediaStore, stories *store.StoryStore, blog *store.BlogStore) *Admin {
	return &Admin{
		admins:  admins,
		users:   users,
		posts:   posts,
		media:   media,
		stories: stories,
		blog:    blog,
		now:     time.Now,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies an admin credential. The response never distinguishes an
// unknown email from a wrong password.
func (a *Admin) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	admin, err := a.admins.FindByEmail(r.Context(), req.Email)
	if err != nil {
		slog.Error("admin lookup failed", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Gagal memproses permintaan")
		return
	}

	if admin == nil || !a.admins.CheckPassword(admin, req.Password) {
		respondMessage(w, http.StatusUnauthorized, "Email atau kata sandi salah")
		return
	}

	respondSuccess(w)
}

type userResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	NamaLengkap string `json:"namaLengkap"`
	CreatedAt   string `json:"createdAt"`
}

// ListUsers returns the most recent accounts.
func (a *Admin) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.users.ListRecent(r.Context(), maxUserRows)
	if err != nil {
		slog.Error("list users failed", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Gagal mengambil data pengguna")
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse{
			ID:          u.ID,
			Email:       u.Email,
			NamaLengkap: u.NamaLengkap,
			CreatedAt:   models.FormatTime(u.CreatedAt),
		})
	}
	respondJSON(w, http.StatusOK, out)
}

type updateUserRequest struct {
	Email       *string `json:"email"`
	NamaLengkap *string `json:"namaLengkap"`
}

// UpdateUser applies a partial update to one account.
func (a *Admin) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	assignments, err := update.Build(
		update.String("email", req.Email),
		update.String("namaLengkap", req.NamaLengkap),
	)
	if errors.Is(err, update.ErrNoFields) {
		respondMessage(w, http.StatusBadRequest, "Tidak ada data yang diubah")
		return
	}

	affected, err := a.users.ApplyUpdate(r.Context(), id, assignments)
	if err != nil {
		slog.Error("update user failed", "id", id, "error", err)
		respondMessage(w, http.StatusInternalServerError, "Gagal memperbarui pengguna")
		return
	}
	if affected == 0 {
		respondMessage(w, http.StatusNotFound, "Pengguna tidak ditemukan")
		return
	}

	respondSuccess(w)
}

// DeleteUser removes one account.
func (a *Admin) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	affected, err := a.users.Delete(r.Context(), id)
	if err != nil {
		slog.Error("delete user failed", "id", id, "error", err)
		respondMessage(w, http.StatusInternalServerError, "Gagal menghapus pengguna")
		return
	}
	if affected == 0 {
		respondMessage(w, http.StatusNotFound, "Pengguna tidak ditemukan")
		return
	}

	respondSuccess(w)
}

type postResponse struct {
	ID          string  `json:"id"`
	Title       *string `json:"title"`
	Content     string  `json:"content"`
	AuthorEmail string  `json:"authorEmail"`
	CreatedAt   string  `json:"createdAt"`
}

// ListPosts returns the most recent feed posts.
func (a *Admin) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := a.posts.ListRecent(r.Context(), maxPostRows)
	if err != nil {
		slog.Error("list posts failed", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Gagal mengambil data postingan")
		return
	}

	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, postResponse{
			ID:          p.ID,
			Title:       p.Title,
			Content:     p.Content,
			AuthorEmail: p.AuthorEmail,
			CreatedAt:   models.FormatTime(p.CreatedAt),
		})
	}
	respondJSON(w, http.StatusOK, out)
}

type updatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// UpdatePost applies a partial update to one feed post.
func (a *Admin) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updatePostRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	assignments, err := update.Build(
		update.String("title", req.Title),
		update.String("content", req.Content),
	)
	if errors.Is(err, update.ErrNoFields) {
		respondMessage(w, http.StatusBadRequest, "Tidak ada data yang diubah")
		return
	}

	affected, err := a.posts.ApplyUpdate(r.Context(), id, assignments)
	if err != nil {
		slog.Error("update post failed", "id", id, "error", err)
		respondMessage(w, http.StatusInternalServerError, "Gagal memperbarui postingan")
		return
	}
	if affected == 0 {
		respondMessage(w, http.StatusNotFound, "Postingan tidak ditemukan")
		return
	}

	respondSuccess(w)
}

// DeletePost removes one feed post.
func (a *Admin) DeletePost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	affected, err := a.posts.Delete(r.Context(), id)
	if err != nil {
		slog.Error("delete post failed", "id", id, "error", err)
		respondMessage(w, http.StatusInternalServerError, "Gagal menghapus postingan")
		return
	}
	if affected == 0 {
		respondMessage(w, http.StatusNotFound, "Postingan tidak ditemukan")
		return
	}

	respondSuccess(w)
}

type mediaResponse struct {
	ID          string   `json:"id"`
	Kind        string   `json:"kind"`
	URL         string   `json:"url"`
	PostID      string   `json:"postId"`
	AuthorEmail string   `json:"authorEmail"`
	CreatedAt   string   `json:"createdAt"`
	Duration    *float64 `json:"duration"`
}

// ListMedia returns the most recent image and video attachments combined.
func (a *Admin) ListMedia(w http.ResponseWriter, r *http.Request) {
	items, err := a.media.ListRecent(r.Context(), maxMediaRows)
	if err != nil {
		slog.Error("list media failed", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Gagal mengambil data media")
		return
	}

	out := make([]mediaResponse, 0, len(items))
	for _, m := range items {
		out = append(out, mediaResponse{
			ID:          m.ID,
			Kind:        string(m.Kind),
			URL:         m.URL,
			PostID:      m.PostID,
			AuthorEmail: m.AuthorEmail,
			CreatedAt:   models.FormatTime(m.CreatedAt),
			Duration:    m.Duration,
		})
	}
	respondJSON(w, http.StatusOK, out)
}

// DeleteMedia removes one attachment. The kind segment must name a known
// media table; anything else is rejected before touching storage.
func (a *Admin) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	kind := models.MediaKind(chi.URLParam(r, "kind"))
	id := chi.URLParam(r, "id")

	if !kind.Valid() {
		respondMessage(w, http.StatusBadRequest, "Tipe media tidak dikenal")
		return
	}

	affected, err := a.media.Delete(r.Context(), kind, id)
	if err != nil {
		slog.Error("delete media failed", "kind", kind, "id", id, "error", err)
		respondMessage(w, http.StatusInternalServerError, "Gagal menghapus media")
		return
	}
	if affected == 0 {
		respondMessage(w, http.StatusNotFound, "Media tidak ditemukan")
		return
	}

	respondSuccess(w)
}

type storyResponse struct {
	ID           string  `json:"id"`
	MediaURL     string  `json:"mediaUrl"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Caption      *string `json:"caption"`
	Type         string  `json:"type"`
	UserEmail    string  `json:"userEmail"`
	CreatedAt    string  `json:"createdAt"`
	ExpiresAt    string  `json:"expiresAt"`
}

// ListStories returns the most recent stories, active and expired.
func (a *Admin) ListStories(w http.ResponseWriter, r *http.Request) {
	stories, err := a.stories.ListRecent(r.Context(), maxStoryRows)
	if err != nil {
		slog.Error("list stories failed", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Gagal mengambil data story")
		return
	}

	out := make([]storyResponse, 0, len(stories))
	for _, s := range stories {
		out = append(out, storyResponse{
			ID:           s.ID,
			MediaURL:     s.MediaURL,
			ThumbnailURL: s.ThumbnailURL,
			Caption:      s.Caption,
			Type:         s.Type,
			UserEmail:    s.UserEmail,
			CreatedAt:    models.FormatTime(s.CreatedAt),
			ExpiresAt:    models.FormatTime(s.ExpiresAt),
		})
	}
	respondJSON(w, http.StatusOK, out)
}

type updateStoryRequest struct {
	// A caption supplied as null clears it to "".
	Caption update.Optional `json:"caption"`
}

// UpdateStory replaces the caption of one story.
func (a *Admin) UpdateStory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateStoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	assignments, err := update.Build(
		req.Caption.Field("caption"),
	)
	if errors.Is(err, update.ErrNoFields) {
		respondMessage(w, http.StatusBadRequest, "Tidak ada data yang diubah")
		return
	}

	affected, err := a.stories.ApplyUpdate(r.Context(), id, assignments)
	if err != nil {
		slog.Error("update story failed", "id", id, "error", err)
		respondMessage(w, http.StatusInternalServerError, "Gagal memperbarui story")
		return
	}
	if affected == 0 {
		respondMessage(w, http.StatusNotFound, "Story tidak ditemukan")
		return
	}

	respondSuccess(w)
}

// DeleteStory removes one story.
func (a *Admin) DeleteStory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	affected, err := a.stories.Delete(r.Context(), id)
	if err != nil {
		slog.Error("delete story failed", "id", id, "error", err)
		respondMessage(w, http.StatusInternalServerError, "Gagal menghapus story")
		return
	}
	if affected == 0 {
		respondMessage(w, http.StatusNotFound, "Story tidak ditemukan")
		return
	}

	respondSuccess(w)
}
