// Copyright (c) 2026 Librarium. All rights reserved.

package review

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

// Routes returns the /api/reviews router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/books/{bookId}", handler.addReview)
	router.Get("/books/{bookId}", handler.listReviewsForBook)
	router.Get("/average-ratings", handler.averageRatings)
	router.Put("/{reviewId}", handler.updateReview)
	router.Delete("/{reviewId}", handler.deleteReview)

	return router
}

func (handler *Handler) addReview(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "bookId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var draft Draft
	if err := requestutil.DecodeJSON(request, &draft); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Add(request.Context(), bookID, draft)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) listReviewsForBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "bookId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reviews, err := handler.service.ListForBook(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reviews)
}

func (handler *Handler) updateReview(writer http.ResponseWriter, request *http.Request) {
	reviewID, err := requestutil.IntID(request, "reviewId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var draft Draft
	if err := requestutil.DecodeJSON(request, &draft); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), reviewID, draft)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteReview(writer http.ResponseWriter, request *http.Request) {
	reviewID, err := requestutil.IntID(request, "reviewId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), reviewID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) averageRatings(writer http.ResponseWriter, request *http.Request) {
	ratings, err := handler.service.AverageRatings(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ratings)
}
