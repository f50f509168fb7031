// Copyright (c) 2026 Librarium. All rights reserved.

package review

import (
	"context"
	"errors"
	"log/slog"

	"github.com/librarium/librarium/internal/core/book"
	"github.com/librarium/librarium/internal/platform/apperr"
	"github.com/librarium/librarium/internal/platform/dberr"
)

// Service owns the review lifecycle and the rating aggregation.
type Service struct {
	store  Store
	books  BookStore
	logger *slog.Logger
}

func NewService(store Store, books BookStore, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		books:  books,
		logger: logger,
	}
}

// Add creates a review owned by the given book. The book must exist; there
// is no limit on review count per book.
func (service *Service) Add(ctx context.Context, bookID int64, draft Draft) (*Review, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	if _, err := service.books.Get(ctx, bookID); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, book.ErrNotFound(bookID)
		}
		return nil, err
	}

	r := &Review{
		Rating:  *draft.Rating,
		Comment: draft.Comment,
		BookID:  bookID,
	}

	if err := service.store.Create(ctx, r); err != nil {
		return nil, err
	}

	service.logger.Info("review_added",
		slog.Int64("review_id", r.ID),
		slog.Int64("book_id", bookID),
		slog.Int("rating", r.Rating),
	)
	return r, nil
}

// ListForBook returns every review of the given book. A missing book and a
// book without reviews are distinct not-found failures.
func (service *Service) ListForBook(ctx context.Context, bookID int64) ([]Review, error) {
	if _, err := service.books.Get(ctx, bookID); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, book.ErrNotFound(bookID)
		}
		return nil, err
	}

	reviews, err := service.store.ListForBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	if len(reviews) == 0 {
		return nil, apperr.NotFoundf("Reviews for book with ID %d not found", bookID)
	}
	return reviews, nil
}

// Update overwrites rating and comment of an existing review. The owning
// book reference is unchanged.
func (service *Service) Update(ctx context.Context, reviewID int64, draft Draft) (*Review, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	r := &Review{
		ID:      reviewID,
		Rating:  *draft.Rating,
		Comment: draft.Comment,
	}

	if err := service.store.Update(ctx, r); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, ErrNotFound(reviewID)
		}
		return nil, err
	}

	service.logger.Info("review_updated", slog.Int64("review_id", reviewID))
	return r, nil
}

// Delete removes a review.
func (service *Service) Delete(ctx context.Context, reviewID int64) error {
	if err := service.store.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return ErrNotFound(reviewID)
		}
		return err
	}

	service.logger.Info("review_deleted", slog.Int64("review_id", reviewID))
	return nil
}

// AverageRatings returns the mean rating per reviewed book. Books with no
// reviews are omitted, and a catalog where no book has any review at all
// is a not-found failure.
func (service *Service) AverageRatings(ctx context.Context) ([]BookRating, error) {
	ratings, err := service.store.AverageRatings(ctx)
	if err != nil {
		return nil, err
	}

	if len(ratings) == 0 {
		return nil, apperr.NotFound("No book has a rating")
	}
	return ratings, nil
}
