// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Moderation views over rows owned by the primary application. The admin
// backend reads these and mutates a narrow set of columns; it introduces no
// invariants of its own here.

// UserSummary is an account row as shown in the moderation user list.
type UserSummary struct {
	ID          string
	Email       string
	NamaLengkap string
	CreatedAt   time.Time
}

// PostSummary is a feed post row joined with its author's email.
type PostSummary struct {
	ID          string
	Title       *string
	Content     string
	AuthorEmail string
	CreatedAt   time.Time
}

// MediaKind distinguishes rows of the "PostImage" and "PostVideo" tables
// in the combined media listing.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// Valid reports whether the kind names a known media table.
func (k MediaKind) Valid() bool {
	return k == MediaKindImage || k == MediaKindVideo
}

// MediaItem is one attachment from the combined image/video listing.
// Duration is set for videos only.
type MediaItem struct {
	ID          string
	Kind        MediaKind
	URL         string
	PostID      string
	AuthorEmail string
	CreatedAt   time.Time
	Duration    *float64
}

// StorySummary is an ephemeral story row joined with its owner's email.
type StorySummary struct {
	ID           string
	MediaURL     string
	ThumbnailURL *string
	Caption      *string
	Type         string
	UserEmail    string
	CreatedAt    time.Time
	ExpiresAt    time.Time
}
