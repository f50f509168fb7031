// Copyright (c) 2026 Librarium. All rights reserved.

package book

import (
	"github.com/librarium/librarium/internal/platform/apperr"
	"github.com/librarium/librarium/internal/platform/validate"

	"github.com/librarium/librarium/internal/directory"
)

// Book is a catalog entry. Reviews are stored independently and reference
// the book by id; the "reviews of a book" view is reconstructed by query,
// never by traversal.
type Book struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationYear int    `json:"publicationYear"`
	AvailableCopies int    `json:"availableCopies"`
}

// EnrichedBook is the ephemeral composition returned by the author
// enrichment read path. It is never persisted.
type EnrichedBook struct {
	ID              int64                    `json:"id"`
	Title           string                   `json:"title"`
	Author          string                   `json:"author"`
	PublicationYear int                      `json:"publicationYear"`
	AvailableCopies int                      `json:"availableCopies"`
	AuthorDetails   *directory.AuthorDetails `json:"authorDetails"`
}

// Draft carries the mutable book fields for create and update requests.
// Integer fields are pointers so that an omitted field is distinguishable
// from a legitimate zero (publication year 0 is valid).
type Draft struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationYear *int   `json:"publicationYear"`
	AvailableCopies *int   `json:"availableCopies"`
}

// Wire field names for validation errors.
const (
	FieldTitle           = "title"
	FieldAuthor          = "author"
	FieldPublicationYear = "publicationYear"
	FieldAvailableCopies = "availableCopies"
)

// MaxPublicationYear is the inclusive upper bound for publication years.
const MaxPublicationYear = 2025

// Validate checks the draft against the boundary constraints. Bounds are
// enforced here once; the data-model layer does not re-validate.
func (d Draft) Validate() error {
	v := &validate.Validator{}

	v.Required(FieldTitle, d.Title, "Title is required")
	v.Required(FieldAuthor, d.Author, "Author is required")

	if d.PublicationYear == nil {
		v.Custom(FieldPublicationYear, true, "Publication year is required")
	} else {
		v.Min(FieldPublicationYear, *d.PublicationYear, 0, "Publication year must be a positive number")
		v.Max(FieldPublicationYear, *d.PublicationYear, MaxPublicationYear, "Publication year must be at most 2025")
	}

	if d.AvailableCopies == nil {
		v.Custom(FieldAvailableCopies, true, "Available copies is required")
	} else {
		v.Min(FieldAvailableCopies, *d.AvailableCopies, 0, "Available copies must be a positive number")
	}

	return v.Err()
}

// ErrNotFound is the canonical not-found failure for a book id. The review
// service reuses it so both domains report missing books identically.
func ErrNotFound(id int64) *apperr.AppError {
	return apperr.NotFoundf("Book with ID %d not found", id)
}
