// Copyright (c) 2026 Librarium. All rights reserved.

package review_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librarium/librarium/internal/core/review"
)

func newReviewRouter() chi.Router {
	service, _ := newReviewService()
	router := chi.NewRouter()
	router.Mount("/api/reviews", review.NewHandler(service).Routes())
	return router
}

func doJSON(t *testing.T, router chi.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func decodeMap(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestReviewHandler_Add(t *testing.T) {
	t.Run("valid_payload", func(t *testing.T) {
		router := newReviewRouter()

		recorder := doJSON(t, router, http.MethodPost, "/api/reviews/books/1",
			`{"rating":5,"comment":"Excellent book!"}`)

		require.Equal(t, http.StatusCreated, recorder.Code)
		body := decodeMap(t, recorder)
		assert.Equal(t, float64(1), body["id"])
		assert.Equal(t, float64(5), body["rating"])
		assert.Equal(t, "Excellent book!", body["comment"])
		assert.Equal(t, float64(1), body["bookId"])
	})

	t.Run("rating_out_of_bounds", func(t *testing.T) {
		router := newReviewRouter()

		recorder := doJSON(t, router, http.MethodPost, "/api/reviews/books/1",
			`{"rating":6,"comment":"Too enthusiastic"}`)

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		body := decodeMap(t, recorder)
		assert.Equal(t, "Validation Failed", body["error"])
		assert.Equal(t, "Rating must be at most 5", body["rating"])
	})

	t.Run("missing_book", func(t *testing.T) {
		router := newReviewRouter()

		recorder := doJSON(t, router, http.MethodPost, "/api/reviews/books/99",
			`{"rating":5}`)

		require.Equal(t, http.StatusNotFound, recorder.Code)
		body := decodeMap(t, recorder)
		assert.Equal(t, "Not Found", body["error"])
		assert.Equal(t, "Book with ID 99 not found", body["message"])
	})
}

func TestReviewHandler_ListForBook_NoReviews(t *testing.T) {
	router := newReviewRouter()

	recorder := doJSON(t, router, http.MethodGet, "/api/reviews/books/1", "")

	require.Equal(t, http.StatusNotFound, recorder.Code)
	body := decodeMap(t, recorder)
	assert.Equal(t, "Reviews for book with ID 1 not found", body["message"])
}

func TestReviewHandler_AverageRatings(t *testing.T) {
	router := newReviewRouter()
	doJSON(t, router, http.MethodPost, "/api/reviews/books/1", `{"rating":5}`)
	doJSON(t, router, http.MethodPost, "/api/reviews/books/1", `{"rating":4}`)

	recorder := doJSON(t, router, http.MethodGet, "/api/reviews/average-ratings", "")

	require.Equal(t, http.StatusOK, recorder.Code)
	var ratings []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &ratings))
	require.Len(t, ratings, 1)
	assert.Equal(t, "Java Programming", ratings[0]["bookTitle"])
	assert.InDelta(t, 4.5, ratings[0]["averageRating"].(float64), 0.0001)
}

func TestReviewHandler_Delete_Missing(t *testing.T) {
	router := newReviewRouter()

	recorder := doJSON(t, router, http.MethodDelete, "/api/reviews/42", "")

	require.Equal(t, http.StatusNotFound, recorder.Code)
	body := decodeMap(t, recorder)
	assert.Equal(t, "Review with ID 42 not found", body["message"])
}
