// Copyright (c) 2026 Librarium. All rights reserved.

package review

import (
	"context"

	"github.com/librarium/librarium/internal/core/book"
)

// Store is the persistence contract for reviews.
//
// Implementations return [dberr.ErrNotFound] for missing rows; the service
// layer substitutes the resource-specific message.
type Store interface {
	Create(ctx context.Context, r *Review) error
	ListForBook(ctx context.Context, bookID int64) ([]Review, error)

	// Update overwrites rating and comment of an existing review and fills
	// in the unchanged owning book id.
	Update(ctx context.Context, r *Review) error

	Delete(ctx context.Context, id int64) error

	// AverageRatings returns one entry per book that has at least one
	// review, in a deterministic (book id) order.
	AverageRatings(ctx context.Context) ([]BookRating, error)
}

// BookStore is the slice of the book store the review service needs to
// verify that a parent book exists.
type BookStore interface {
	Get(ctx context.Context, id int64) (*book.Book, error)
}
