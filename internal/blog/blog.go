// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package blog validates and normalizes blog post submissions before they
// reach storage. Create and full-replace share the same rules: every field
// is re-validated and re-normalized on each write.
package blog

import (
	"errors"
	"slices"
	"sort"
	"strings"
	"time"

	"renadmin/internal/models"
)

// Validation errors, surfaced to API callers as 400 responses.
var (
	ErrInvalidReadTime    = errors.New("readTimeMinutes must be greater than 0")
	ErrInvalidCategory    = errors.New("invalid blog category")
	ErrInvalidStatus      = errors.New("invalid blog status")
	ErrMissingScheduledAt = errors.New("publishedAt is required for SCHEDULED status")
	ErrBadPublishedAt     = errors.New("publishedAt is not a valid timestamp")
)

// Input is a raw blog submission as decoded from the request body.
type Input struct {
	Slug            string
	Title           string
	Excerpt         string
	Category        string
	ReadTimeMinutes int
	PublishedAt     *string
	AuthorName      string
	AuthorRole      string
	Tags            []string
	Status          string
	Body            *string
}

// Normalized is a validated submission ready for insertion or replacement.
type Normalized struct {
	Slug            string
	Title           string
	Excerpt         string
	Category        models.BlogCategory
	ReadTimeMinutes int
	PublishedAt     *time.Time
	AuthorName      string
	AuthorRole      string
	Tags            []string
	Status          models.BlogStatus
	Body            *string
}

// publishedAtLayouts are the accepted publishedAt formats: RFC 3339, or a
// bare timestamp without zone (interpreted as UTC, like the primary app).
var publishedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Validate checks a submission against the lifecycle rules and returns its
// normalized form. Rules are applied in a fixed order and the first failure
// wins: read time, category, status, then the status/publishedAt pairing.
//
// When status is PUBLISHED and publishedAt is absent or blank, it is filled
// with now ("publish now"). now is a parameter so callers and tests control
// the clock.
func Validate(in Input, now time.Time) (*Normalized, error) {
	if in.ReadTimeMinutes <= 0 {
		return nil, ErrInvalidReadTime
	}

	category := models.BlogCategory(in.Category)
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	status := models.BlogStatus(in.Status)
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	publishedAt, err := parsePublishedAt(in.PublishedAt)
	if err != nil {
		return nil, err
	}

	switch status {
	case models.StatusDraft:
		// No constraint — an absent publishedAt stays absent.
	case models.StatusScheduled:
		if publishedAt == nil {
			return nil, ErrMissingScheduledAt
		}
	case models.StatusPublished:
		if publishedAt == nil {
			t := now.UTC()
			publishedAt = &t
		}
	}

	return &Normalized{
		Slug:            in.Slug,
		Title:           in.Title,
		Excerpt:         in.Excerpt,
		Category:        category,
		ReadTimeMinutes: in.ReadTimeMinutes,
		PublishedAt:     publishedAt,
		AuthorName:      in.AuthorName,
		AuthorRole:      in.AuthorRole,
		Tags:            NormalizeTags(in.Tags),
		Status:          status,
		Body:            in.Body,
	}, nil
}

// NormalizeTags trims each tag, drops the ones that become empty,
// deduplicates exact matches and sorts ascending. Idempotent: a normalized
// list maps to itself.
func NormalizeTags(tags []string) []string {
	clean := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			clean = append(clean, t)
		}
	}
	sort.Strings(clean)
	return slices.Compact(clean)
}

// parsePublishedAt treats absent and blank-after-trim values as absent.
// Anything else must parse as a timestamp; unparseable values fail loudly
// instead of being handed to the database as raw text.
func parsePublishedAt(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return nil, nil
	}
	for _, layout := range publishedAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, ErrBadPublishedAt
}
