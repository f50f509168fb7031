// Copyright (c) 2026 Librarium. All rights reserved.

package review

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/librarium/librarium/internal/platform/dberr"
)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (store *PostgresStore) Create(ctx context.Context, r *Review) error {
	const query = `
		INSERT INTO reviews (rating, comment, book_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := store.db.QueryRow(ctx, query, r.Rating, r.Comment, r.BookID).Scan(&r.ID)
	return dberr.Wrap(err, "create_review")
}

func (store *PostgresStore) ListForBook(ctx context.Context, bookID int64) ([]Review, error) {
	const query = `
		SELECT id, rating, comment, book_id
		FROM reviews
		WHERE book_id = $1
		ORDER BY id
	`

	rows, err := store.db.Query(ctx, query, bookID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_reviews")
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		var r Review
		if err := rows.Scan(&r.ID, &r.Rating, &r.Comment, &r.BookID); err != nil {
			return nil, dberr.Wrap(err, "scan_review")
		}
		reviews = append(reviews, r)
	}

	return reviews, dberr.Wrap(rows.Err(), "scan_reviews")
}

func (store *PostgresStore) Update(ctx context.Context, r *Review) error {
	// book_id is deliberately not in the SET list: the owning book of a
	// review never changes.
	const query = `
		UPDATE reviews
		SET rating = $2, comment = $3
		WHERE id = $1
		RETURNING book_id
	`

	err := store.db.QueryRow(ctx, query, r.ID, r.Rating, r.Comment).Scan(&r.BookID)
	return dberr.Wrap(err, "update_review")
}

func (store *PostgresStore) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM reviews WHERE id = $1`

	cmd, err := store.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_review")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (store *PostgresStore) AverageRatings(ctx context.Context) ([]BookRating, error) {
	// AVG over an integer column yields numeric; cast so pgx scans a
	// float64 directly.
	const query = `
		SELECT b.title, AVG(r.rating)::float8
		FROM reviews r
		JOIN books b ON b.id = r.book_id
		GROUP BY b.id, b.title
		ORDER BY b.id
	`

	rows, err := store.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "average_ratings")
	}
	defer rows.Close()

	var ratings []BookRating
	for rows.Next() {
		var rating BookRating
		if err := rows.Scan(&rating.BookTitle, &rating.AverageRating); err != nil {
			return nil, dberr.Wrap(err, "scan_average_rating")
		}
		ratings = append(ratings, rating)
	}

	return ratings, dberr.Wrap(rows.Err(), "scan_average_ratings")
}
