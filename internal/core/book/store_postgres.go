// Copyright (c) 2026 Librarium. All rights reserved.

package book

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/librarium/librarium/internal/platform/dberr"
)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

const bookColumns = `id, title, author, publication_year, available_copies`

func (store *PostgresStore) Create(ctx context.Context, b *Book) error {
	const query = `
		INSERT INTO books (title, author, publication_year, available_copies)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := store.db.QueryRow(ctx, query, b.Title, b.Author, b.PublicationYear, b.AvailableCopies).Scan(&b.ID)
	return dberr.Wrap(err, "create_book")
}

func (store *PostgresStore) List(ctx context.Context) ([]Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM books ORDER BY id`

	rows, err := store.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_books")
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (store *PostgresStore) Get(ctx context.Context, id int64) (*Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	b := &Book{}
	err := store.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.PublicationYear, &b.AvailableCopies,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_book")
	}

	return b, nil
}

func (store *PostgresStore) Update(ctx context.Context, b *Book) error {
	const query = `
		UPDATE books
		SET title = $2, author = $3, publication_year = $4, available_copies = $5
		WHERE id = $1
	`

	cmd, err := store.db.Exec(ctx, query, b.ID, b.Title, b.Author, b.PublicationYear, b.AvailableCopies)
	if err != nil {
		return dberr.Wrap(err, "update_book")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (store *PostgresStore) Delete(ctx context.Context, id int64) error {
	// Owned reviews go with the book via the ON DELETE CASCADE foreign key,
	// so the delete and its cascade are one atomic statement.
	const query = `DELETE FROM books WHERE id = $1`

	cmd, err := store.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_book")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (store *PostgresStore) Search(ctx context.Context, title, author *string) ([]Book, error) {
	// NULL parameters never compare equal, so an omitted side of the OR
	// matches nothing rather than everything.
	const query = `SELECT ` + bookColumns + ` FROM books WHERE title = $1 OR author = $2 ORDER BY id`

	rows, err := store.db.Query(ctx, query, title, author)
	if err != nil {
		return nil, dberr.Wrap(err, "search_books")
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (store *PostgresStore) PublishedAfter(ctx context.Context, year int) ([]Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM books WHERE publication_year > $1 ORDER BY id`

	rows, err := store.db.Query(ctx, query, year)
	if err != nil {
		return nil, dberr.Wrap(err, "books_published_after")
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (store *PostgresStore) HighRatings(ctx context.Context) ([]Book, error) {
	// The inner join drops review-less books before grouping, so a book
	// with no reviews can never qualify.
	const query = `
		SELECT b.id, b.title, b.author, b.publication_year, b.available_copies
		FROM books b
		JOIN reviews r ON b.id = r.book_id
		GROUP BY b.id
		HAVING AVG(r.rating) >= 4
		ORDER BY b.id
	`

	rows, err := store.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "books_high_ratings")
	}
	defer rows.Close()

	return scanBooks(rows)
}

func scanBooks(rows pgx.Rows) ([]Book, error) {
	var books []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.PublicationYear, &b.AvailableCopies); err != nil {
			return nil, dberr.Wrap(err, "scan_book")
		}
		books = append(books, b)
	}

	return books, dberr.Wrap(rows.Err(), "scan_books")
}
