// Copyright (c) 2026 Librarium. All rights reserved.

// Command authordir is the standalone author directory service.
//
// It resolves author names to biography and nationality from a seeded
// in-memory table. The catalog API's enrichment path calls it over HTTP;
// unknown author names answer 404 with the standard error body. The lookup
// key is the verbatim author name — no case folding, no trimming.
package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/librarium/librarium/internal/directory"
	"github.com/librarium/librarium/internal/platform/apperr"
	"github.com/librarium/librarium/internal/platform/constants"
	"github.com/librarium/librarium/internal/platform/respond"
)

// seededAuthors is the directory's whole dataset. A real deployment would
// back this with its own store; the service exists so the enrichment path
// has a live collaborator in local and integration runs.
var seededAuthors = map[string]directory.AuthorDetails{
	"John Doe": {
		AuthorName:  "John Doe",
		Biography:   "A renowned Java developer and author of several programming books.",
		Nationality: "American",
	},
	"Jane Smith": {
		AuthorName:  "Jane Smith",
		Biography:   "A prolific tech writer covering software architecture.",
		Nationality: "British",
	},
}

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", "librarium-authordir"))
	slog.SetDefault(log)

	_ = godotenv.Load()

	port := os.Getenv("AUTHOR_DIRECTORY_PORT")
	if port == "" {
		port = "8081"
	}

	router := chi.NewRouter()
	router.Get("/health", func(writer http.ResponseWriter, request *http.Request) {
		respond.OK(writer, map[string]string{"status": "ok"})
	})
	router.Get("/api/authors/{authorName}", getAuthorDetails)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       constants.DefaultReadTimeout,
		WriteTimeout:      constants.DefaultWriteTimeout,
		IdleTimeout:       constants.DefaultIdleTimeout,
		ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
	}

	log.Info("author directory starting", slog.String("addr", server.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}

func getAuthorDetails(writer http.ResponseWriter, request *http.Request) {
	authorName := chi.URLParam(request, "authorName")

	details, found := seededAuthors[authorName]
	if !found {
		respond.Error(writer, request, apperr.NotFound("Author not found"))
		return
	}

	respond.OK(writer, details)
}
