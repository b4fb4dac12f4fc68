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

	"github.com/gorilla/mux"

	"github.com/shelfmark/shelfmark/pkg/server/app"
	"github.com/shelfmark/shelfmark/pkg/server/context"
	"github.com/shelfmark/shelfmark/pkg/server/database"
	mw "github.com/shelfmark/shelfmark/pkg/server/middleware"
	"github.com/shelfmark/shelfmark/pkg/server/presenters"
)

// NewReviews creates a new Reviews controller
func NewReviews(app *app.App) *Reviews {
	return &Reviews{app: app}
}

// Reviews is a review controller
type Reviews struct {
	app *app.App
}

// resolveUser authenticates the request if possible. Routes whose
// authentication requirement depends on the query cannot use the auth
// middleware, so they resolve the caller themselves.
func (c *Reviews) resolveUser(r *http.Request) (*database.User, error) {
	user, ok, err := mw.AuthWithSession(c.app.DB, r)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	return &user, nil
}

// Index handles GET /reviews. Listing public reviews requires no
// authentication; any other listing does.
func (c *Reviews) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := app.ReviewQuery{
		BookUUID:      q.Get("bookId"),
		GoogleBooksID: q.Get("googleBooksId"),
		UserUUID:      q.Get("userId"),
		PublicOnly:    q.Get("isPublic") == "true",
	}

	user, err := c.resolveUser(r)
	if err != nil {
		handleJSONError(w, err, "authenticating with session")
		return
	}

	if !query.PublicOnly && user == nil {
		mw.RespondUnauthorized(w)
		return
	}

	reviews, err := c.app.GetReviews(user, query)
	if err != nil {
		handleJSONError(w, err, "finding reviews")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"reviews": presenters.PresentReviews(reviews),
	})
}

// Show handles GET /reviews/{reviewID}. A public review requires no
// authentication; a private one is visible only to its owner.
func (c *Reviews) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reviewID := vars["reviewID"]

	user, err := c.resolveUser(r)
	if err != nil {
		handleJSONError(w, err, "authenticating with session")
		return
	}

	review, err := c.app.GetReview(user, reviewID)
	if err != nil {
		handleJSONError(w, err, "finding review")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"review": presenters.PresentReview(review),
	})
}

// CreateReviewPayload is the payload for creating a review
type CreateReviewPayload struct {
	GoogleBooksID string `json:"googleBooksId" schema:"googleBooksId"`
	Rating        *int   `json:"rating" schema:"rating" validate:"omitempty,min=1,max=5"`
	ReviewText    string `json:"reviewText" schema:"reviewText"`
	IsPublic      *bool  `json:"isPublic" schema:"isPublic"`
}

// Create handles POST /reviews
func (c *Reviews) Create(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		mw.RespondUnauthorized(w)
		return
	}

	var payload CreateReviewPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	review, err := c.app.CreateReview(*user, app.CreateReviewParams{
		GoogleBooksID: payload.GoogleBooksID,
		Rating:        payload.Rating,
		ReviewText:    payload.ReviewText,
		IsPublic:      payload.IsPublic,
	})
	if err != nil {
		handleJSONError(w, err, "creating review")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"review": presenters.PresentReview(review),
	})
}

// UpdateReviewPayload is the payload for updating a review. Only the
// rating, text and visibility are decoded.
type UpdateReviewPayload struct {
	Rating     *int    `json:"rating" schema:"rating" validate:"omitempty,min=1,max=5"`
	ReviewText *string `json:"reviewText" schema:"reviewText"`
	IsPublic   *bool   `json:"isPublic" schema:"isPublic"`
}

// Update handles PUT /reviews/{reviewID}
func (c *Reviews) Update(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		mw.RespondUnauthorized(w)
		return
	}

	vars := mux.Vars(r)
	reviewID := vars["reviewID"]

	var payload UpdateReviewPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	review, err := c.app.UpdateReview(*user, reviewID, app.UpdateReviewParams{
		Rating:     payload.Rating,
		ReviewText: payload.ReviewText,
		IsPublic:   payload.IsPublic,
	})
	if err != nil {
		handleJSONError(w, err, "updating review")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"review": presenters.PresentReview(review),
	})
}

// Delete handles DELETE /reviews/{reviewID}
func (c *Reviews) Delete(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		mw.RespondUnauthorized(w)
		return
	}

	vars := mux.Vars(r)
	reviewID := vars["reviewID"]

	if err := c.app.DeleteReview(*user, reviewID); err != nil {
		handleJSONError(w, err, "deleting review")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Review deleted successfully",
	})
}
