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
	mw "github.com/shelfmark/shelfmark/pkg/server/middleware"
	"github.com/shelfmark/shelfmark/pkg/server/presenters"
)

// NewBooks creates a new Books controller
func NewBooks(app *app.App) *Books {
	return &Books{app: app}
}

// Books is a shelf controller
type Books struct {
	app *app.App
}

// Index handles GET /books
func (b *Books) Index(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		mw.RespondUnauthorized(w)
		return
	}

	status := r.URL.Query().Get("status")

	books, err := b.app.GetBooks(*user, status)
	if err != nil {
		handleJSONError(w, err, "finding books")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"books": presenters.PresentBooks(books),
	})
}

// CreateBookPayload is the payload for adding a book to the shelf
type CreateBookPayload struct {
	GoogleBooksID string   `json:"googleBooksId" schema:"googleBooksId"`
	Title         string   `json:"title" schema:"title"`
	Authors       []string `json:"authors" schema:"authors"`
	Description   string   `json:"description" schema:"description"`
	CoverImage    string   `json:"coverImage" schema:"coverImage"`
	ISBN          string   `json:"isbn" schema:"isbn"`
	Status        string   `json:"status" schema:"status" validate:"omitempty,oneof=reading finished want-to-read"`
	Rating        *int     `json:"rating" schema:"rating" validate:"omitempty,min=1,max=5"`
	Notes         string   `json:"notes" schema:"notes"`
}

// Create handles POST /books
func (b *Books) Create(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		mw.RespondUnauthorized(w)
		return
	}

	var payload CreateBookPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	book, err := b.app.CreateBook(*user, app.CreateBookParams{
		GoogleBooksID: payload.GoogleBooksID,
		Title:         payload.Title,
		Authors:       payload.Authors,
		Description:   payload.Description,
		CoverImage:    payload.CoverImage,
		ISBN:          payload.ISBN,
		Status:        payload.Status,
		Rating:        payload.Rating,
		Notes:         payload.Notes,
	})
	if err != nil {
		handleJSONError(w, err, "creating book")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"book": presenters.PresentBook(book),
	})
}

// Show handles GET /books/{bookID}
func (b *Books) Show(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		mw.RespondUnauthorized(w)
		return
	}

	vars := mux.Vars(r)
	bookID := vars["bookID"]

	book, err := b.app.GetBook(*user, bookID)
	if err != nil {
		handleJSONError(w, err, "finding book")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"book": presenters.PresentBook(book),
	})
}

// UpdateBookPayload is the payload for updating a shelf entry. Fields other
// than status, rating and notes are deliberately not decoded.
type UpdateBookPayload struct {
	Status *string `json:"status" schema:"status" validate:"omitempty,oneof=reading finished want-to-read"`
	Rating *int    `json:"rating" schema:"rating" validate:"omitempty,min=1,max=5"`
	Notes  *string `json:"notes" schema:"notes"`
}

// Update handles PUT /books/{bookID}
func (b *Books) Update(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		mw.RespondUnauthorized(w)
		return
	}

	vars := mux.Vars(r)
	bookID := vars["bookID"]

	var payload UpdateBookPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	book, err := b.app.UpdateBook(*user, bookID, app.UpdateBookParams{
		Status: payload.Status,
		Rating: payload.Rating,
		Notes:  payload.Notes,
	})
	if err != nil {
		handleJSONError(w, err, "updating book")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"book": presenters.PresentBook(book),
	})
}

// Delete handles DELETE /books/{bookID}
func (b *Books) Delete(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		mw.RespondUnauthorized(w)
		return
	}

	vars := mux.Vars(r)
	bookID := vars["bookID"]

	if err := b.app.DeleteBook(*user, bookID); err != nil {
		handleJSONError(w, err, "deleting book")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Book removed successfully",
	})
}
