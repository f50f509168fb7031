// Copyright (c) 2026 Librarium. All rights reserved.

package book

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/librarium/librarium/internal/platform/request"
	"github.com/librarium/librarium/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /api/books router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.createBook)
	router.Get("/", handler.listBooks)
	router.Get("/search", handler.searchBooks)
	router.Get("/published-after", handler.publishedAfter)

	// Two historical names, one aggregation. Earlier releases ran two
	// equivalent query engines behind these routes; the names survive for
	// existing clients, the duplication does not.
	router.Get("/high-ratings-sql", handler.highRatings)
	router.Get("/high-ratings-jpql", handler.highRatings)

	router.Get("/{id}", handler.getBook)
	router.Put("/{id}", handler.updateBook)
	router.Delete("/{id}", handler.deleteBook)
	router.Get("/{id}/author-details", handler.getBookWithAuthor)

	return router
}

func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	var draft Draft
	if err := requestutil.DecodeJSON(request, &draft); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), draft)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	books, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, books)
}

func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	b, err := handler.service.Get(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, b)
}

func (handler *Handler) updateBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var draft Draft
	if err := requestutil.DecodeJSON(request, &draft); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), bookID, draft)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), bookID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) searchBooks(writer http.ResponseWriter, request *http.Request) {
	title := requestutil.OptionalQuery(request, "title")
	author := requestutil.OptionalQuery(request, "author")

	books, err := handler.service.Search(request.Context(), title, author)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, books)
}

func (handler *Handler) publishedAfter(writer http.ResponseWriter, request *http.Request) {
	year, err := requestutil.RequiredIntQuery(request, "year")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	books, err := handler.service.PublishedAfter(request.Context(), year)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, books)
}

func (handler *Handler) highRatings(writer http.ResponseWriter, request *http.Request) {
	books, err := handler.service.HighRatings(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, books)
}

func (handler *Handler) getBookWithAuthor(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	enriched, err := handler.service.GetWithAuthor(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, enriched)
}
