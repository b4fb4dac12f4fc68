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
	"github.com/shelfmark/shelfmark/pkg/server/presenters"
)

// NewDiscover creates a new Discover controller
func NewDiscover(app *app.App) *Discover {
	return &Discover{app: app}
}

// Discover is a controller for the community feed and per-user stats
type Discover struct {
	app *app.App
}

// Feed handles GET /discover. The feed aggregates across all users and
// requires no authentication.
func (c *Discover) Feed(w http.ResponseWriter, r *http.Request) {
	feed, err := c.app.GetDiscoverFeed()
	if err != nil {
		handleJSONError(w, err, "building discover feed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"recentBooks":      presenters.PresentBooksWithOwner(feed.Recent),
		"highlyRatedBooks": presenters.PresentBooksWithOwner(feed.HighlyRated),
		"popularBooks":     presenters.PresentPopularBooks(feed.Popular),
	})
}

// Stats handles GET /stats
func (c *Discover) Stats(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		mw.RespondUnauthorized(w)
		return
	}

	stats, err := c.app.GetUserStats(*user)
	if err != nil {
		handleJSONError(w, err, "counting books")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
