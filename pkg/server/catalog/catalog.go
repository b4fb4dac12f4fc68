/* Copyright 2026 Shelfmark Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package catalog provides a client for the external book catalog. A search
// is a single outbound call with no retry or caching; failures surface
// directly to the caller.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

const (
	// DefaultBaseURL is the base URL of the Google Books API
	DefaultBaseURL = "https://www.googleapis.com/books/v1"

	maxResults = 20
)

var (
	// ErrMissingAPIKey is an error for a client without a configured API key
	ErrMissingAPIKey = errors.New("catalog API key is not configured")
	// ErrInvalidResponse is an error for an unparsable upstream response
	ErrInvalidResponse = errors.New("invalid response from catalog")
)

// UpstreamError is an error for a non-2xx response from the catalog
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("catalog responded with status %d", e.StatusCode)
}

// Result is a normalized candidate book from a catalog search
type Result struct {
	GoogleBooksID string   `json:"googleBooksId"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Description   string   `json:"description"`
	CoverImage    string   `json:"coverImage"`
	ISBN          string   `json:"isbn"`
}

// Client is a client for the book catalog
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a new catalog client with the given API key
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: DefaultBaseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// volume mirrors the subset of the Google Books volume payload in use
type volume struct {
	ID         string `json:"id"`
	VolumeInfo struct {
		Title      string   `json:"title"`
		Authors    []string `json:"authors"`
		Description string  `json:"description"`
		ImageLinks struct {
			Thumbnail string `json:"thumbnail"`
		} `json:"imageLinks"`
		IndustryIdentifiers []struct {
			Type       string `json:"type"`
			Identifier string `json:"identifier"`
		} `json:"industryIdentifiers"`
	} `json:"volumeInfo"`
}

type searchResponse struct {
	Items []volume `json:"items"`
}

// Search queries the catalog for the given term and returns a normalized
// list of candidate books. It returns ErrMissingAPIKey if the client has no
// API key configured.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	if c.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("maxResults", fmt.Sprintf("%d", maxResults))
	q.Set("key", c.APIKey)

	endpoint := fmt.Sprintf("%s/volumes?%s", c.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "constructing catalog request")
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "calling catalog")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading catalog response")
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: res.StatusCode}
	}

	var payload searchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, ErrInvalidResponse
	}

	results := []Result{}
	for _, item := range payload.Items {
		results = append(results, normalize(item))
	}

	return results, nil
}

func normalize(v volume) Result {
	title := v.VolumeInfo.Title
	if title == "" {
		title = "Unknown Title"
	}

	authors := v.VolumeInfo.Authors
	if authors == nil {
		authors = []string{}
	}

	var isbn string
	if len(v.VolumeInfo.IndustryIdentifiers) > 0 {
		isbn = v.VolumeInfo.IndustryIdentifiers[0].Identifier
	}

	return Result{
		GoogleBooksID: v.ID,
		Title:         title,
		Authors:       authors,
		Description:   v.VolumeInfo.Description,
		CoverImage:    v.VolumeInfo.ImageLinks.Thumbnail,
		ISBN:          isbn,
	}
}
