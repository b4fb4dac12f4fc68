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

package database

import (
	"time"
)

// Model is the base model definition
type Model struct {
	ID        int       `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// User is a model for a user
type User struct {
	Model
	UUID        string `json:"uuid" gorm:"uniqueIndex;type:text"`
	Name        string `json:"name"`
	Email       string `json:"email" gorm:"uniqueIndex"`
	Password    string `json:"-"`
	Image       string `json:"image"`
	LastLoginAt *time.Time `json:"-"`
}

// Session represents a user session
type Session struct {
	Model
	UserID     int    `gorm:"index"`
	Key        string `gorm:"index"`
	LastUsedAt time.Time
	ExpiresAt  time.Time
}

// Book is a model for a shelf entry: one user's relationship to a catalog
// title. A user can shelve a given catalog title at most once.
type Book struct {
	Model
	UUID          string   `json:"uuid" gorm:"uniqueIndex;type:text"`
	UserID        int      `json:"user_id" gorm:"uniqueIndex:idx_books_user_catalog"`
	User          User     `json:"-"`
	GoogleBooksID string   `json:"google_books_id" gorm:"uniqueIndex:idx_books_user_catalog;index"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors" gorm:"serializer:json"`
	Description   string   `json:"description"`
	CoverImage    string   `json:"cover_image"`
	ISBN          string   `json:"isbn"`
	Status        string   `json:"status" gorm:"default:want-to-read"`
	Rating        *int     `json:"rating"`
	Notes         string   `json:"notes"`
}

// OwnerID returns the id of the user that owns the book
func (b Book) OwnerID() int {
	return b.UserID
}

// Review is a model for a user's opinion of a shelved title. A user can
// review a given shelf entry at most once.
type Review struct {
	Model
	UUID          string `json:"uuid" gorm:"uniqueIndex;type:text"`
	UserID        int    `json:"user_id" gorm:"uniqueIndex:idx_reviews_user_book"`
	User          User   `json:"user"`
	BookID        int    `json:"book_id" gorm:"uniqueIndex:idx_reviews_user_book"`
	Book          Book   `json:"-"`
	GoogleBooksID string `json:"google_books_id" gorm:"index"`
	Rating        int    `json:"rating"`
	ReviewText    string `json:"review_text"`
	// No column default on purpose. gorm skips zero-valued fields that carry
	// a default tag, which would turn an explicit false into true on insert.
	// Public-by-default is applied when the review is created.
	IsPublic bool `json:"is_public"`
}

// OwnerID returns the id of the user that owns the review
func (r Review) OwnerID() int {
	return r.UserID
}
