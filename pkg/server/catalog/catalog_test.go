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

package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/volumes", r.URL.Path)
		assert.Equal(t, "golang", r.URL.Query().Get("q"))
		assert.Equal(t, "20", r.URL.Query().Get("maxResults"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		fmt.Fprint(w, `{"items": [
			{
				"id": "vol-1",
				"volumeInfo": {
					"title": "The Go Programming Language",
					"authors": ["Alan Donovan", "Brian Kernighan"],
					"description": "A book about Go",
					"imageLinks": {"thumbnail": "https://example.com/cover.jpg"},
					"industryIdentifiers": [
						{"type": "ISBN_13", "identifier": "9780134190440"},
						{"type": "ISBN_10", "identifier": "0134190440"}
					]
				}
			}
		]}`)
	}))
	defer upstream.Close()

	c := NewClient("test-key")
	c.BaseURL = upstream.URL

	results, err := c.Search(context.Background(), "golang")
	require.NoError(t, err)

	expected := []Result{
		{
			GoogleBooksID: "vol-1",
			Title:         "The Go Programming Language",
			Authors:       []string{"Alan Donovan", "Brian Kernighan"},
			Description:   "A book about Go",
			CoverImage:    "https://example.com/cover.jpg",
			ISBN:          "9780134190440",
		},
	}
	assert.Equal(t, expected, results)
}

func TestSearch_Normalization(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items": [{"id": "vol-sparse", "volumeInfo": {}}]}`)
	}))
	defer upstream.Close()

	c := NewClient("test-key")
	c.BaseURL = upstream.URL

	results, err := c.Search(context.Background(), "anything")
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "Unknown Title", results[0].Title)
	assert.NotNil(t, results[0].Authors)
	assert.Empty(t, results[0].Authors)
	assert.Empty(t, results[0].ISBN)
}

func TestSearch_NoItems(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer upstream.Close()

	c := NewClient("test-key")
	c.BaseURL = upstream.URL

	results, err := c.Search(context.Background(), "obscure")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_MissingAPIKey(t *testing.T) {
	c := NewClient("")

	_, err := c.Search(context.Background(), "golang")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestSearch_UpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer upstream.Close()

	c := NewClient("test-key")
	c.BaseURL = upstream.URL

	_, err := c.Search(context.Background(), "golang")

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusForbidden, upstreamErr.StatusCode)
}

func TestSearch_InvalidResponse(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>not json</html>`)
	}))
	defer upstream.Close()

	c := NewClient("test-key")
	c.BaseURL = upstream.URL

	_, err := c.Search(context.Background(), "golang")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
