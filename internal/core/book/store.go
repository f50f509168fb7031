// Copyright (c) 2026 Librarium. All rights reserved.

package book

import (
	"context"

	"github.com/librarium/librarium/internal/directory"
)

// Store is the persistence contract for books.
//
// Implementations return [dberr.ErrNotFound] for missing rows; the service
// layer substitutes the resource-specific message.
type Store interface {
	Create(ctx context.Context, b *Book) error
	List(ctx context.Context) ([]Book, error)
	Get(ctx context.Context, id int64) (*Book, error)
	Update(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id int64) error

	// Search matches books whose title equals title OR whose author equals
	// author. A nil parameter matches nothing (it is not a wildcard).
	Search(ctx context.Context, title, author *string) ([]Book, error)

	// PublishedAfter returns books with publication_year strictly greater
	// than year.
	PublishedAfter(ctx context.Context, year int) ([]Book, error)

	// HighRatings returns books whose reviews average to 4.0 or better.
	// Books without reviews are excluded (no average, no membership).
	HighRatings(ctx context.Context) ([]Book, error)
}

// AuthorDirectory is the outbound collaborator resolving an author name to
// externally-sourced details. Satisfied by [directory.Client].
type AuthorDirectory interface {
	AuthorDetails(ctx context.Context, authorName string) (*directory.AuthorDetails, error)
}
