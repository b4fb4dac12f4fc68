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

package app

import (
	"errors"

	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/shelfmark/shelfmark/pkg/server/database"
	"github.com/shelfmark/shelfmark/pkg/server/helpers"
	"github.com/shelfmark/shelfmark/pkg/server/permissions"
)

// CreateBookParams is the parameters for adding a catalog title to a shelf
type CreateBookParams struct {
	GoogleBooksID string
	Title         string
	Authors       []string
	Description   string
	CoverImage    string
	ISBN          string
	Status        string
	Rating        *int
	Notes         string
}

func validRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

// CreateBook adds a catalog title to the user's shelf. A user cannot shelve
// the same title twice.
func (a *App) CreateBook(user database.User, p CreateBookParams) (database.Book, error) {
	if p.GoogleBooksID == "" {
		return database.Book{}, ErrCatalogIDRequired
	}
	if p.Title == "" {
		return database.Book{}, ErrTitleRequired
	}

	status := p.Status
	if status == "" {
		status = database.BookStatusWantToRead
	} else if !database.ValidBookStatus(status) {
		return database.Book{}, ErrInvalidStatus
	}

	if p.Rating != nil && !validRating(*p.Rating) {
		return database.Book{}, ErrInvalidRating
	}

	var count int64
	err := a.DB.Model(&database.Book{}).
		Where("user_id = ? AND google_books_id = ?", user.ID, p.GoogleBooksID).
		Count(&count).Error
	if err != nil {
		return database.Book{}, pkgErrors.Wrap(err, "counting existing books")
	}
	if count > 0 {
		return database.Book{}, ErrDuplicateBook
	}

	uuid, err := helpers.GenUUID()
	if err != nil {
		return database.Book{}, err
	}

	authors := p.Authors
	if authors == nil {
		authors = []string{}
	}

	book := database.Book{
		UUID:          uuid,
		UserID:        user.ID,
		GoogleBooksID: p.GoogleBooksID,
		Title:         p.Title,
		Authors:       authors,
		Description:   p.Description,
		CoverImage:    p.CoverImage,
		ISBN:          p.ISBN,
		Status:        status,
		Rating:        p.Rating,
		Notes:         p.Notes,
	}
	if err := a.DB.Create(&book).Error; err != nil {
		return database.Book{}, pkgErrors.Wrap(err, "inserting book")
	}

	return book, nil
}

// GetBooks returns the books on the user's shelf ordered by most recently
// updated first. An invalid status filter is ignored rather than rejected.
func (a *App) GetBooks(user database.User, status string) ([]database.Book, error) {
	conn := a.DB.Where("user_id = ?", user.ID)

	if database.ValidBookStatus(status) {
		conn = conn.Where("status = ?", status)
	}

	books := []database.Book{}
	if err := conn.Order("updated_at DESC").Find(&books).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding books")
	}

	return books, nil
}

// GetBook returns the book with the given uuid if the user owns it. An
// ownership mismatch is reported as not-found so that the existence of
// other users' records does not leak.
func (a *App) GetBook(user database.User, uuid string) (database.Book, error) {
	var book database.Book
	err := a.DB.Where("uuid = ?", uuid).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.Book{}, ErrNotFound
	} else if err != nil {
		return database.Book{}, pkgErrors.Wrap(err, "finding book")
	}

	if !permissions.Owns(&user, book) {
		return database.Book{}, ErrNotFound
	}

	return book, nil
}

// UpdateBookParams is the parameters for updating a shelf entry. Only the
// status, rating and notes of a shelf entry can change; other fields
// submitted by a client are ignored upstream.
type UpdateBookParams struct {
	Status *string
	Rating *int
	Notes  *string
}

// UpdateBook updates the user's own shelf entry with the given uuid
func (a *App) UpdateBook(user database.User, uuid string, p UpdateBookParams) (database.Book, error) {
	book, err := a.GetBook(user, uuid)
	if err != nil {
		return database.Book{}, err
	}

	if p.Status != nil {
		if !database.ValidBookStatus(*p.Status) {
			return database.Book{}, ErrInvalidStatus
		}
		book.Status = *p.Status
	}
	if p.Rating != nil {
		if !validRating(*p.Rating) {
			return database.Book{}, ErrInvalidRating
		}
		book.Rating = p.Rating
	}
	if p.Notes != nil {
		book.Notes = *p.Notes
	}

	if err := a.DB.Save(&book).Error; err != nil {
		return database.Book{}, pkgErrors.Wrap(err, "updating book")
	}

	return book, nil
}

// DeleteBook removes the user's own shelf entry with the given uuid
func (a *App) DeleteBook(user database.User, uuid string) error {
	book, err := a.GetBook(user, uuid)
	if err != nil {
		return err
	}

	if err := a.DB.Delete(&book).Error; err != nil {
		return pkgErrors.Wrap(err, "deleting book")
	}

	return nil
}
