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

package controllers

import (
	"net/http"

	"github.com/shelfmark/shelfmark/pkg/server/app"
	"github.com/shelfmark/shelfmark/pkg/server/context"
	mw "github.com/shelfmark/shelfmark/pkg/server/middleware"
)

// NewSearch creates a new Search controller
func NewSearch(app *app.App) *Search {
	return &Search{app: app}
}

// Search is a controller proxying catalog lookups
type Search struct {
	app *app.App
}

// Books handles GET /search/books
func (c *Search) Books(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		mw.RespondUnauthorized(w)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		mw.RespondMessage(w, http.StatusBadRequest, "Search query is required")
		return
	}

	results, err := c.app.Catalog.Search(r.Context(), query)
	if err != nil {
		handleJSONError(w, err, "searching catalog")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"books": results,
	})
}
