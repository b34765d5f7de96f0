// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"renadmin/internal/blog"
	"renadmin/internal/models"
)

// blogPayload is the full blog submission, used for both create and
// full-replace. Every field is re-validated on each write.
type blogPayload struct {
	Slug            string   `json:"slug"`
	Title           string   `json:"title"`
	Excerpt         string   `json:"excerpt"`
	Category        string   `json:"category"`
	ReadTimeMinutes int      `json:"readTimeMinutes"`
	PublishedAt     *string  `json:"publishedAt"`
	AuthorName      string   `json:"authorName"`
	AuthorRole      string   `json:"authorRole"`
	Tags            []string `json:"tags"`
	Status          string   `json:"status"`
	Body            *string  `json:"body"`
}

type blogResponse struct {
	ID              string   `json:"id"`
	Slug            string   `json:"slug"`
	Title           string   `json:"title"`
	Excerpt         string   `json:"excerpt"`
	Category        string   `json:"category"`
	ReadTimeMinutes int      `json:"readTimeMinutes"`
	PublishedAt     *string  `json:"publishedAt"`
	AuthorName      string   `json:"authorName"`
	AuthorRole      string   `json:"authorRole"`
	Tags            []string `json:"tags"`
	Status          string   `json:"status"`
	Body            *string  `json:"body"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

type slugCheckResponse struct {
	Available bool `json:"available"`
}

// toBlogResponse maps a stored blog post onto the wire format.
func toBlogResponse(p *models.BlogPost) blogResponse {
	return blogResponse{
		ID:              p.ID,
		Slug:            p.Slug,
		Title:           p.Title,
		Excerpt:         p.Excerpt,
		Category:        string(p.Category),
		ReadTimeMinutes: p.ReadTimeMinutes,
		PublishedAt:     models.FormatTimePtr(p.PublishedAt),
		AuthorName:      p.AuthorName,
		AuthorRole:      p.AuthorRole,
		Tags:            p.Tags,
		Status:          string(p.Status),
		Body:            p.Body,
		CreatedAt:       models.FormatTime(p.CreatedAt),
		UpdatedAt:       models.FormatTime(p.UpdatedAt),
	}
}

// validationMessage maps lifecycle validation errors to user-facing text.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, blog.ErrInvalidReadTime):
		return "readTimeMinutes harus lebih besar dari 0"
	case errors.Is(err, blog.ErrInvalidCategory):
		return "Kategori blog tidak valid"
	case errors.Is(err, blog.ErrInvalidStatus):
		return "Status blog tidak valid"
	case errors.Is(err, blog.ErrMissingScheduledAt):
		return "publishedAt wajib diisi untuk status SCHEDULED"
	case errors.Is(err, blog.ErrBadPublishedAt):
		return "publishedAt bukan timestamp yang valid"
	}
	return "Data blog tidak valid"
}

// ListBlogPosts returns the most recent editorial posts, published first.
func (a *Admin) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := a.blog.ListRecent(r.Context(), maxBlogRows)
	if err != nil {
		slog.Error("list blog posts failed", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Gagal mengambil data blog post")
		return
	}

	out := make([]blogResponse, 0, len(posts))
	for i := range posts {
		out = append(out, toBlogResponse(&posts[i]))
	}
	respondJSON(w, http.StatusOK, out)
}

// GetBlogPost returns one editorial post by id.
func (a *Admin) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	post, err := a.blog.FindByID(r.Context(), id)
	if err != nil {
		slog.Error("get blog post failed", "id", id, "error", err)
		respondMessage(w, http.StatusInternalServerError, "Gagal mengambil blog post")
		return
	}
	if post == nil {
		respondMessage(w, http.StatusNotFound, "Blog post tidak ditemukan")
		return
	}

	respondJSON(w, http.StatusOK, toBlogResponse(post))
}

// CreateBlogPost validates, normalizes and stores a new editorial post.
// Validation failures never reach storage.
func (a *Admin) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	var payload blogPayload
	if !decodeJSON(w, r, &payload) {
		return
	}

	normalized, err := blog.Validate(payload.toInput(), a.now())
	if err != nil {
		respondMessage(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	post, err := a.blog.Insert(r.Context(), normalized)
	if err != nil {
		slog.Error("create blog post failed", "slug", payload.Slug, "error", err)
		respondMessage(w, http.StatusInternalServerError, "Gagal membuat blog post")
		return
	}

	respondJSON(w, http.StatusOK, toBlogResponse(post))
}

// UpdateBlogPost validates a full replacement payload and overwrites every
// mutable field of one editorial post.
func (a *Admin) UpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var payload blogPayload
	if !decodeJSON(w, r, &payload) {
		return
	}

	normalized, err := blog.Validate(payload.toInput(), a.now())
	if err != nil {
		respondMessage(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	post, err := a.blog.Replace(r.Context(), id, normalized)
	if err != nil {
		slog.Error("update blog post failed", "id", id, "error", err)
		respondMessage(w, http.StatusInternalServerError, "Gagal memperbarui blog post")
		return
	}
	if post == nil {
		respondMessage(w, http.StatusNotFound, "Blog post tidak ditemukan")
		return
	}

	respondJSON(w, http.StatusOK, toBlogResponse(post))
}

// CheckBlogSlug reports whether a slug is still available. A blank slug is
// never available and is answered without touching storage.
func (a *Admin) CheckBlogSlug(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")

	if strings.TrimSpace(slug) == "" {
		respondJSON(w, http.StatusOK, slugCheckResponse{Available: false})
		return
	}

	exists, err := a.blog.SlugExists(r.Context(), slug)
	if err != nil {
		slog.Error("check blog slug failed", "slug", slug, "error", err)
		respondMessage(w, http.StatusInternalServerError, "Gagal memeriksa slug")
		return
	}

	respondJSON(w, http.StatusOK, slugCheckResponse{Available: !exists})
}

// toInput converts the wire payload into the validator's input form.
func (p *blogPayload) toInput() blog.Input {
	return blog.Input{
		Slug:            p.Slug,
		Title:           p.Title,
		Excerpt:         p.Excerpt,
		Category:        p.Category,
		ReadTimeMinutes: p.ReadTimeMinutes,
		PublishedAt:     p.PublishedAt,
		AuthorName:      p.AuthorName,
		AuthorRole:      p.AuthorRole,
		Tags:            p.Tags,
		Status:          p.Status,
		Body:            p.Body,
	}
}
