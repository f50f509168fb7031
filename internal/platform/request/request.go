// Copyright (c) 2026 Librarium. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/librarium/librarium/internal/platform/apperr"
)

// ErrInvalidJSON is returned when the request body cannot be decoded.
var ErrInvalidJSON = apperr.BadRequest("Invalid JSON payload")

// DecodeJSON reads the request body and decodes it into the target
// structure. Returns [ErrInvalidJSON] if decoding fails.
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return ErrInvalidJSON
	}
	return nil
}

// IntID retrieves a named URL parameter and parses it as a positive
// integer identifier.
func IntID(request *http.Request, name string) (int64, error) {
	raw := chi.URLParam(request, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, apperr.BadRequest("Invalid parameter: " + name)
	}
	return id, nil
}

// OptionalQuery returns a pointer to the named query parameter's value, or
// nil when the parameter is absent. Present-but-empty is a value.
func OptionalQuery(request *http.Request, name string) *string {
	if !request.URL.Query().Has(name) {
		return nil
	}
	value := request.URL.Query().Get(name)
	return &value
}

// RequiredIntQuery parses the named query parameter as an integer.
// A missing parameter is a Bad Request, mirroring the behaviour of a
// mandatory query binding.
func RequiredIntQuery(request *http.Request, name string) (int, error) {
	if !request.URL.Query().Has(name) {
		return 0, apperr.BadRequest("Missing required parameter: " + name)
	}
	value, err := strconv.Atoi(request.URL.Query().Get(name))
	if err != nil {
		return 0, apperr.BadRequest("Invalid parameter: " + name)
	}
	return value, nil
}
