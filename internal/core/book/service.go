// Copyright (c) 2026 Librarium. All rights reserved.

package book

import (
	"context"
	"errors"
	"log/slog"

	"github.com/librarium/librarium/internal/directory"
	"github.com/librarium/librarium/internal/platform/apperr"
	"github.com/librarium/librarium/internal/platform/dberr"
)

// Service owns the book lifecycle, the catalog queries, and the author
// enrichment read path.
//
// Every list/search/aggregate operation treats an empty result as
// NotFound. That is a deliberate compatibility choice: the API this
// service replaces reported "nothing matched" as 404, and clients depend
// on it.
type Service struct {
	store   Store
	authors AuthorDirectory
	logger  *slog.Logger
}

func NewService(store Store, authors AuthorDirectory, logger *slog.Logger) *Service {
	return &Service{
		store:   store,
		authors: authors,
		logger:  logger,
	}
}

// Create persists a new book with a freshly assigned identity. There is no
// uniqueness constraint on title or author.
func (service *Service) Create(ctx context.Context, draft Draft) (*Book, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	b := &Book{
		Title:           draft.Title,
		Author:          draft.Author,
		PublicationYear: *draft.PublicationYear,
		AvailableCopies: *draft.AvailableCopies,
	}

	if err := service.store.Create(ctx, b); err != nil {
		return nil, err
	}

	service.logger.Info("book_created", slog.Int64("book_id", b.ID), slog.String("title", b.Title))
	return b, nil
}

// List returns every book.
func (service *Service) List(ctx context.Context) ([]Book, error) {
	books, err := service.store.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(books) == 0 {
		return nil, apperr.NotFound("Books not found")
	}
	return books, nil
}

// Get returns the book with the given id.
func (service *Service) Get(ctx context.Context, id int64) (*Book, error) {
	b, err := service.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, ErrNotFound(id)
		}
		return nil, err
	}
	return b, nil
}

// Update overwrites all mutable fields of an existing book. Updates are
// full-field replacement, never a partial patch; reviews are untouched.
func (service *Service) Update(ctx context.Context, id int64, draft Draft) (*Book, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	b := &Book{
		ID:              id,
		Title:           draft.Title,
		Author:          draft.Author,
		PublicationYear: *draft.PublicationYear,
		AvailableCopies: *draft.AvailableCopies,
	}

	if err := service.store.Update(ctx, b); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, ErrNotFound(id)
		}
		return nil, err
	}

	service.logger.Info("book_updated", slog.Int64("book_id", id))
	return b, nil
}

// Delete removes a book and, through the store's cascade, all its reviews.
// A review never outlives its book.
func (service *Service) Delete(ctx context.Context, id int64) error {
	if err := service.store.Delete(ctx, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return ErrNotFound(id)
		}
		return err
	}

	service.logger.Info("book_deleted", slog.Int64("book_id", id))
	return nil
}

// Search returns books whose title equals title or whose author equals
// author. An omitted parameter matches nothing; the failure message echoes
// the inputs, substituting placeholders for omitted ones.
func (service *Service) Search(ctx context.Context, title, author *string) ([]Book, error) {
	books, err := service.store.Search(ctx, title, author)
	if err != nil {
		return nil, err
	}

	if len(books) == 0 {
		titleShown := "Unknown title"
		if title != nil {
			titleShown = *title
		}
		authorShown := "Unknown author"
		if author != nil {
			authorShown = *author
		}
		return nil, apperr.NotFoundf("No books found for the given title '%s' or author '%s'", titleShown, authorShown)
	}
	return books, nil
}

// PublishedAfter returns books published strictly after the given year.
func (service *Service) PublishedAfter(ctx context.Context, year int) ([]Book, error) {
	books, err := service.store.PublishedAfter(ctx, year)
	if err != nil {
		return nil, err
	}

	if len(books) == 0 {
		return nil, apperr.NotFoundf("No books published after year %d", year)
	}
	return books, nil
}

// HighRatings returns books whose reviews average to 4.0 or better. Both
// legacy endpoint names resolve to this single aggregation.
func (service *Service) HighRatings(ctx context.Context) ([]Book, error) {
	books, err := service.store.HighRatings(ctx)
	if err != nil {
		return nil, err
	}

	if len(books) == 0 {
		return nil, apperr.NotFound("No book has an average rating of four or higher")
	}
	return books, nil
}

// GetWithAuthor composes a book with externally-fetched author details.
//
// This is the one path with a true external dependency, and the one place
// an external error code is translated into the domain taxonomy: the
// directory's not-found signal becomes the domain's own NotFound, while
// any other directory failure surfaces as internal.
func (service *Service) GetWithAuthor(ctx context.Context, id int64) (*EnrichedBook, error) {
	b, err := service.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	details, err := service.authors.AuthorDetails(ctx, b.Author)
	if err != nil {
		if errors.Is(err, directory.ErrAuthorNotFound) {
			return nil, apperr.NotFound("Author not found")
		}

		service.logger.Error("author_directory_failed",
			slog.Int64("book_id", id),
			slog.String("author", b.Author),
			slog.Any("error", err),
		)
		return nil, apperr.Internal(err)
	}

	return &EnrichedBook{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		PublicationYear: b.PublicationYear,
		AvailableCopies: b.AvailableCopies,
		AuthorDetails:   details,
	}, nil
}
