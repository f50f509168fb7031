// Copyright (c) 2026 Librarium. All rights reserved.

package book_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librarium/librarium/internal/core/book"
	"github.com/librarium/librarium/internal/directory"
	"github.com/librarium/librarium/internal/platform/apperr"
	"github.com/librarium/librarium/internal/platform/dberr"
)

// memStore is an in-memory [book.Store] that mirrors the Postgres store's
// matching semantics, so service tests exercise real query behaviour.
type memStore struct {
	books  map[int64]book.Book
	nextID int64
	high   []book.Book
}

func newMemStore() *memStore {
	return &memStore{books: map[int64]book.Book{}, nextID: 1}
}

func (s *memStore) Create(_ context.Context, b *book.Book) error {
	b.ID = s.nextID
	s.nextID++
	s.books[b.ID] = *b
	return nil
}

func (s *memStore) List(_ context.Context) ([]book.Book, error) {
	return s.sorted(func(book.Book) bool { return true }), nil
}

func (s *memStore) Get(_ context.Context, id int64) (*book.Book, error) {
	b, ok := s.books[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &b, nil
}

func (s *memStore) Update(_ context.Context, b *book.Book) error {
	if _, ok := s.books[b.ID]; !ok {
		return dberr.ErrNotFound
	}
	s.books[b.ID] = *b
	return nil
}

func (s *memStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.books[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(s.books, id)
	return nil
}

func (s *memStore) Search(_ context.Context, title, author *string) ([]book.Book, error) {
	return s.sorted(func(b book.Book) bool {
		// A nil parameter matches nothing, like SQL's NULL equality.
		return (title != nil && b.Title == *title) || (author != nil && b.Author == *author)
	}), nil
}

func (s *memStore) PublishedAfter(_ context.Context, year int) ([]book.Book, error) {
	return s.sorted(func(b book.Book) bool { return b.PublicationYear > year }), nil
}

func (s *memStore) HighRatings(_ context.Context) ([]book.Book, error) {
	return s.high, nil
}

func (s *memStore) sorted(keep func(book.Book) bool) []book.Book {
	var out []book.Book
	for _, b := range s.books {
		if keep(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// stubDirectory is a canned [book.AuthorDirectory].
type stubDirectory struct {
	details map[string]*directory.AuthorDetails
	err     error
}

func (d *stubDirectory) AuthorDetails(_ context.Context, name string) (*directory.AuthorDetails, error) {
	if d.err != nil {
		return nil, d.err
	}
	if details, ok := d.details[name]; ok {
		return details, nil
	}
	return nil, directory.ErrAuthorNotFound
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func newBookService(store book.Store, dir book.AuthorDirectory) *book.Service {
	return book.NewService(store, dir, testLogger())
}

func seedBook(t *testing.T, service *book.Service, title, author string, year, copies int) *book.Book {
	t.Helper()
	created, err := service.Create(context.Background(), book.Draft{
		Title:           title,
		Author:          author,
		PublicationYear: intPtr(year),
		AvailableCopies: intPtr(copies),
	})
	require.NoError(t, err)
	return created
}

func TestService_Create_AssignsIdentity(t *testing.T) {
	service := newBookService(newMemStore(), &stubDirectory{})

	created := seedBook(t, service, "Java Programming", "John Doe", 2023, 5)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Java Programming", created.Title)
	assert.Equal(t, "John Doe", created.Author)
	assert.Equal(t, 2023, created.PublicationYear)
	assert.Equal(t, 5, created.AvailableCopies)

	fetched, err := service.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name        string
		draft       book.Draft
		wantField   string
		wantMessage string
	}{
		{
			name: "missing_title",
			draft: book.Draft{
				Author:          "John Doe",
				PublicationYear: intPtr(2023),
				AvailableCopies: intPtr(5),
			},
			wantField:   "title",
			wantMessage: "Title is required",
		},
		{
			name: "missing_author",
			draft: book.Draft{
				Title:           "Java Programming",
				PublicationYear: intPtr(2023),
				AvailableCopies: intPtr(5),
			},
			wantField:   "author",
			wantMessage: "Author is required",
		},
		{
			name: "omitted_publication_year",
			draft: book.Draft{
				Title:           "Java Programming",
				Author:          "John Doe",
				AvailableCopies: intPtr(5),
			},
			wantField:   "publicationYear",
			wantMessage: "Publication year is required",
		},
		{
			name: "negative_publication_year",
			draft: book.Draft{
				Title:           "Java Programming",
				Author:          "John Doe",
				PublicationYear: intPtr(-1),
				AvailableCopies: intPtr(5),
			},
			wantField:   "publicationYear",
			wantMessage: "Publication year must be a positive number",
		},
		{
			name: "publication_year_in_future",
			draft: book.Draft{
				Title:           "Java Programming",
				Author:          "John Doe",
				PublicationYear: intPtr(2030),
				AvailableCopies: intPtr(5),
			},
			wantField:   "publicationYear",
			wantMessage: "Publication year must be at most 2025",
		},
		{
			name: "negative_available_copies",
			draft: book.Draft{
				Title:           "Java Programming",
				Author:          "John Doe",
				PublicationYear: intPtr(2023),
				AvailableCopies: intPtr(-2),
			},
			wantField:   "availableCopies",
			wantMessage: "Available copies must be a positive number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newBookService(newMemStore(), &stubDirectory{})

			_, err := service.Create(context.Background(), tt.draft)

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CategoryValidation, ae.Category)
			require.Len(t, ae.Fields, 1)
			assert.Equal(t, tt.wantField, ae.Fields[0].Field)
			assert.Equal(t, tt.wantMessage, ae.Fields[0].Message)
		})
	}
}

func TestService_List_EmptyCatalogIsNotFound(t *testing.T) {
	service := newBookService(newMemStore(), &stubDirectory{})

	_, err := service.List(context.Background())

	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Books not found", err.Error())
}

func TestService_Get_MissingBook(t *testing.T) {
	service := newBookService(newMemStore(), &stubDirectory{})

	_, err := service.Get(context.Background(), 42)

	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Book with ID 42 not found", err.Error())
}

func TestService_Update_ReplacesAllFields(t *testing.T) {
	store := newMemStore()
	service := newBookService(store, &stubDirectory{})
	created := seedBook(t, service, "Java Programming", "John Doe", 2023, 5)

	updated, err := service.Update(context.Background(), created.ID, book.Draft{
		Title:           "Advanced Java",
		Author:          "Jane Smith",
		PublicationYear: intPtr(2024),
		AvailableCopies: intPtr(2),
	})

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Advanced Java", updated.Title)
	assert.Equal(t, "Jane Smith", updated.Author)
	assert.Equal(t, 2024, updated.PublicationYear)
	assert.Equal(t, 2, updated.AvailableCopies)
}

func TestService_Update_MissingBook(t *testing.T) {
	service := newBookService(newMemStore(), &stubDirectory{})

	_, err := service.Update(context.Background(), 7, book.Draft{
		Title:           "Advanced Java",
		Author:          "Jane Smith",
		PublicationYear: intPtr(2024),
		AvailableCopies: intPtr(2),
	})

	require.Error(t, err)
	assert.Equal(t, "Book with ID 7 not found", err.Error())
}

func TestService_Delete(t *testing.T) {
	store := newMemStore()
	service := newBookService(store, &stubDirectory{})
	created := seedBook(t, service, "Java Programming", "John Doe", 2023, 5)

	require.NoError(t, service.Delete(context.Background(), created.ID))

	err := service.Delete(context.Background(), created.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestService_Search(t *testing.T) {
	store := newMemStore()
	service := newBookService(store, &stubDirectory{})
	seedBook(t, service, "Java Programming", "John Doe", 2023, 5)
	seedBook(t, service, "Go in Action", "Jane Smith", 2015, 3)

	t.Run("matches_title_or_author", func(t *testing.T) {
		books, err := service.Search(context.Background(), strPtr("Java Programming"), strPtr("Jane Smith"))
		require.NoError(t, err)
		require.Len(t, books, 2)
	})

	t.Run("omitted_parameter_matches_nothing", func(t *testing.T) {
		books, err := service.Search(context.Background(), nil, strPtr("Jane Smith"))
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "Go in Action", books[0].Title)
	})

	t.Run("no_match_echoes_inputs", func(t *testing.T) {
		_, err := service.Search(context.Background(), strPtr("Missing"), nil)
		require.Error(t, err)
		assert.Equal(t, "No books found for the given title 'Missing' or author 'Unknown author'", err.Error())
	})

	t.Run("both_omitted_uses_placeholders", func(t *testing.T) {
		_, err := service.Search(context.Background(), nil, nil)
		require.Error(t, err)
		assert.Equal(t, "No books found for the given title 'Unknown title' or author 'Unknown author'", err.Error())
	})
}

func TestService_PublishedAfter(t *testing.T) {
	store := newMemStore()
	service := newBookService(store, &stubDirectory{})
	seedBook(t, service, "Java Programming", "John Doe", 2023, 5)
	seedBook(t, service, "Go in Action", "Jane Smith", 2015, 3)

	t.Run("strictly_after", func(t *testing.T) {
		books, err := service.PublishedAfter(context.Background(), 2015)
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "Java Programming", books[0].Title)
	})

	t.Run("none_after", func(t *testing.T) {
		_, err := service.PublishedAfter(context.Background(), 2024)
		require.Error(t, err)
		assert.Equal(t, "No books published after year 2024", err.Error())
	})
}

func TestService_HighRatings_EmptyIsNotFound(t *testing.T) {
	service := newBookService(newMemStore(), &stubDirectory{})

	_, err := service.HighRatings(context.Background())

	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "No book has an average rating of four or higher", err.Error())
}

func TestService_GetWithAuthor(t *testing.T) {
	johnDoe := &directory.AuthorDetails{
		AuthorName:  "John Doe",
		Biography:   "A renowned Java developer and author of several programming books.",
		Nationality: "American",
	}

	t.Run("composes_enriched_book", func(t *testing.T) {
		store := newMemStore()
		service := newBookService(store, &stubDirectory{
			details: map[string]*directory.AuthorDetails{"John Doe": johnDoe},
		})
		created := seedBook(t, service, "Java Programming", "John Doe", 2023, 5)

		enriched, err := service.GetWithAuthor(context.Background(), created.ID)

		require.NoError(t, err)
		assert.Equal(t, created.ID, enriched.ID)
		assert.Equal(t, "Java Programming", enriched.Title)
		assert.Equal(t, johnDoe, enriched.AuthorDetails)
	})

	t.Run("unknown_author_is_not_found", func(t *testing.T) {
		store := newMemStore()
		service := newBookService(store, &stubDirectory{})
		created := seedBook(t, service, "Java Programming", "Nobody", 2023, 5)

		_, err := service.GetWithAuthor(context.Background(), created.ID)

		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
		assert.Equal(t, "Author not found", err.Error())
	})

	t.Run("directory_failure_is_internal", func(t *testing.T) {
		store := newMemStore()
		service := newBookService(store, &stubDirectory{err: errors.New("connection refused")})
		created := seedBook(t, service, "Java Programming", "John Doe", 2023, 5)

		_, err := service.GetWithAuthor(context.Background(), created.ID)

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, apperr.CategoryInternal, ae.Category)
	})

	t.Run("missing_book_short_circuits", func(t *testing.T) {
		service := newBookService(newMemStore(), &stubDirectory{err: errors.New("must not be called")})

		_, err := service.GetWithAuthor(context.Background(), 9)

		require.Error(t, err)
		assert.Equal(t, "Book with ID 9 not found", err.Error())
	})
}
