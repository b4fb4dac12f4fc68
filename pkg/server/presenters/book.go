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

package presenters

import (
	"time"

	"github.com/shelfmark/shelfmark/pkg/server/app"
	"github.com/shelfmark/shelfmark/pkg/server/database"
)

// BookOwner is the owner information attached to cross-user book listings
type BookOwner struct {
	Name string `json:"name"`
}

// Book is a result of PresentBook
type Book struct {
	ID            string     `json:"id"`
	GoogleBooksID string     `json:"googleBooksId"`
	Title         string     `json:"title"`
	Authors       []string   `json:"authors"`
	Description   string     `json:"description"`
	CoverImage    string     `json:"coverImage"`
	ISBN          string     `json:"isbn"`
	Status        string     `json:"status"`
	Rating        *int       `json:"rating"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	User          *BookOwner `json:"user,omitempty"`
}

// PresentBook presents a shelf entry
func PresentBook(book database.Book) Book {
	authors := book.Authors
	if authors == nil {
		authors = []string{}
	}

	return Book{
		ID:            book.UUID,
		GoogleBooksID: book.GoogleBooksID,
		Title:         book.Title,
		Authors:       authors,
		Description:   book.Description,
		CoverImage:    book.CoverImage,
		ISBN:          book.ISBN,
		Status:        book.Status,
		Rating:        book.Rating,
		Notes:         book.Notes,
		CreatedAt:     FormatTS(book.CreatedAt),
		UpdatedAt:     FormatTS(book.UpdatedAt),
	}
}

// PresentBooks presents shelf entries
func PresentBooks(books []database.Book) []Book {
	ret := []Book{}

	for _, book := range books {
		ret = append(ret, PresentBook(book))
	}

	return ret
}

// PresentBookWithOwner presents a shelf entry with the owner's name attached
func PresentBookWithOwner(book database.Book) Book {
	p := PresentBook(book)
	p.User = &BookOwner{Name: book.User.Name}

	return p
}

// PresentBooksWithOwner presents shelf entries with owner names attached
func PresentBooksWithOwner(books []database.Book) []Book {
	ret := []Book{}

	for _, book := range books {
		ret = append(ret, PresentBookWithOwner(book))
	}

	return ret
}

// PopularBook is a result of PresentPopularBooks
type PopularBook struct {
	Book
	ReviewCount int64   `json:"reviewCount"`
	AvgRating   float64 `json:"avgRating"`
}

// PresentPopularBooks presents the most-reviewed titles with their tallies
func PresentPopularBooks(popular []app.PopularBook) []PopularBook {
	ret := []PopularBook{}

	for _, item := range popular {
		ret = append(ret, PopularBook{
			Book:        PresentBookWithOwner(item.Book),
			ReviewCount: item.ReviewCount,
			AvgRating:   item.AvgRating,
		})
	}

	return ret
}
