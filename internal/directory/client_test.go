// Copyright (c) 2026 Librarium. All rights reserved.

package directory_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librarium/librarium/internal/directory"
)

func TestClient_AuthorDetails(t *testing.T) {
	johnDoe := directory.AuthorDetails{
		AuthorName:  "John Doe",
		Biography:   "A renowned Java developer and author of several programming books.",
		Nationality: "American",
	}

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/api/authors/John%20Doe", "/api/authors/John Doe":
			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(johnDoe)
		case "/api/authors/broken":
			writer.WriteHeader(http.StatusInternalServerError)
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := directory.NewClient(server.URL + "/api/authors")

	t.Run("known_author", func(t *testing.T) {
		details, err := client.AuthorDetails(context.Background(), "John Doe")

		require.NoError(t, err)
		assert.Equal(t, &johnDoe, details)
	})

	t.Run("unknown_author", func(t *testing.T) {
		_, err := client.AuthorDetails(context.Background(), "Nobody")

		require.ErrorIs(t, err, directory.ErrAuthorNotFound)
	})

	t.Run("server_error_is_not_a_not_found", func(t *testing.T) {
		_, err := client.AuthorDetails(context.Background(), "broken")

		require.Error(t, err)
		assert.NotErrorIs(t, err, directory.ErrAuthorNotFound)
		assert.Contains(t, err.Error(), "unexpected status code 500")
	})
}

func TestClient_AuthorDetails_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // refuse connections from here on

	client := directory.NewClient(server.URL + "/api/authors")

	_, err := client.AuthorDetails(context.Background(), "John Doe")

	require.Error(t, err)
	assert.NotErrorIs(t, err, directory.ErrAuthorNotFound)
}

func TestClient_Ping(t *testing.T) {
	t.Run("any_response_is_reachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := directory.NewClient(server.URL + "/api/authors")
		assert.NoError(t, client.Ping(context.Background()))
	})

	t.Run("transport_failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		client := directory.NewClient(server.URL + "/api/authors")
		assert.Error(t, client.Ping(context.Background()))
	})
}
