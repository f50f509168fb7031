// Copyright (c) 2026 Librarium. All rights reserved.

package review

import (
	"github.com/librarium/librarium/internal/platform/apperr"
	"github.com/librarium/librarium/internal/platform/validate"
)

// Review is a rated comment scoped to exactly one book. The owning book is
// referenced by id; a review is only ever created against an existing book
// and is removed with it.
type Review struct {
	ID      int64  `json:"id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	BookID  int64  `json:"bookId"`
}

// BookRating pairs a book's title with the arithmetic mean of its review
// ratings. Only books with at least one review produce an entry.
type BookRating struct {
	BookTitle     string  `json:"bookTitle"`
	AverageRating float64 `json:"averageRating"`
}

// Draft carries the mutable review fields for create and update requests.
// Rating is a pointer so an omitted rating is distinguishable from zero.
type Draft struct {
	Rating  *int   `json:"rating"`
	Comment string `json:"comment"`
}

// Wire field name for validation errors.
const FieldRating = "rating"

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Validate checks the draft against the rating bounds. The comment is
// free-text and optional.
func (d Draft) Validate() error {
	v := &validate.Validator{}

	if d.Rating == nil {
		v.Custom(FieldRating, true, "Rating is required")
	} else {
		v.Min(FieldRating, *d.Rating, MinRating, "Rating must be at least 1")
		v.Max(FieldRating, *d.Rating, MaxRating, "Rating must be at most 5")
	}

	return v.Err()
}

// ErrNotFound is the canonical not-found failure for a review id.
func ErrNotFound(id int64) *apperr.AppError {
	return apperr.NotFoundf("Review with ID %d not found", id)
}
