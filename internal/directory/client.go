// Copyright (c) 2026 Librarium. All rights reserved.

// Package directory provides the outbound client for the external author
// directory service.
//
// The directory resolves an author name to biography and nationality. The
// name is the lookup key and is passed verbatim (path-escaped only): two
// differently-cased or whitespace-varied author strings are different
// authors as far as the directory is concerned.
package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/librarium/librarium/internal/platform/constants"
)

// ErrAuthorNotFound is returned when the directory has no entry for the
// requested author name (its 404 signal). Callers translate it into the
// domain's own not-found failure; any other error from this client is a
// transport-level failure and must surface as internal.
var ErrAuthorNotFound = errors.New("directory: author not found")

// AuthorDetails is the directory's payload for a known author.
type AuthorDetails struct {
	AuthorName  string `json:"authorName"`
	Biography   string `json:"biography"`
	Nationality string `json:"nationality"`
}

// Client is an HTTP client for the author directory collaborator.
//
// Calls are synchronous and bounded by the client timeout. There is no
// caching and no retry: a slow or failing directory degrades only the
// enrichment path.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a directory client for the given base URL, which must
// include the collection path (e.g. "http://authors:8081/api/authors").
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: constants.AuthorDirectoryTimeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Ping probes the directory for reachability. Any HTTP response counts as
// reachable; only transport failures are errors.
func (c *Client) Ping(ctx context.Context) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("directory: build ping request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("directory: ping failed: %w", err)
	}
	_ = response.Body.Close()

	return nil
}

// AuthorDetails fetches the directory entry for the given author name.
//
// Returns [ErrAuthorNotFound] when the directory answers 404.
func (c *Client) AuthorDetails(ctx context.Context, authorName string) (*AuthorDetails, error) {
	lookupURL := c.baseURL + "/" + url.PathEscape(authorName)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("directory: build request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("directory: lookup %q: %w", authorName, err)
	}
	defer func() { _ = response.Body.Close() }()

	switch {
	case response.StatusCode == http.StatusOK:
		// fall through to decode
	case response.StatusCode == http.StatusNotFound:
		return nil, ErrAuthorNotFound
	default:
		return nil, fmt.Errorf("directory: lookup %q: unexpected status code %d", authorName, response.StatusCode)
	}

	var details AuthorDetails
	if err := json.NewDecoder(response.Body).Decode(&details); err != nil {
		return nil, fmt.Errorf("directory: decode response: %w", err)
	}

	return &details, nil
}
