// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// BlogCategory is the editorial category of a blog post. Values are
// case-sensitive and mirror the BlogPostCategory enum in the shared schema.
type BlogCategory string

const (
	CategoryProductAndVision BlogCategory = "ProductAndVision"
	CategoryEngineering      BlogCategory = "Engineering"
	CategoryDesign           BlogCategory = "Design"
	CategoryCulture          BlogCategory = "Culture"
)

// Valid reports whether the category is one of the known enum values.
func (c BlogCategory) Valid() bool {
	switch c {
	case CategoryProductAndVision, CategoryEngineering, CategoryDesign, CategoryCulture:
		return true
	}
	return false
}

// BlogStatus is the publishing state of a blog post. It mirrors the
// BlogPostStatus enum in the shared schema.
type BlogStatus string

const (
	StatusDraft     BlogStatus = "DRAFT"
	StatusScheduled BlogStatus = "SCHEDULED"
	StatusPublished BlogStatus = "PUBLISHED"
)

// Valid reports whether the status is one of the known enum values.
func (s BlogStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusScheduled, StatusPublished:
		return true
	}
	return false
}

// BlogPost is an editorial blog post as stored in the shared "BlogPost"
// table. IDs are generated by this service on creation; slugs are
// caller-supplied and unique at the storage layer.
type BlogPost struct {
	ID              string
	Slug            string
	Title           string
	Excerpt         string
	Category        BlogCategory
	ReadTimeMinutes int
	PublishedAt     *time.Time
	AuthorName      string
	AuthorRole      string
	Tags            []string
	Status          BlogStatus
	Body            *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
