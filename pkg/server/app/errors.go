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

import "github.com/pkg/errors"

var (
	// ErrNotFound is an error for a nonexistent record, or a record the
	// caller must not learn the existence of
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is an error for an operation on a record owned by
	// a different user
	ErrUnauthorized = errors.New("unauthorized")
	// ErrLoginInvalid is an error for an invalid login attempt
	ErrLoginInvalid = errors.New("wrong email and password combination")

	// ErrNameRequired is an error for a missing name
	ErrNameRequired = errors.New("name is required")
	// ErrEmailRequired is an error for a missing email
	ErrEmailRequired = errors.New("email is required")
	// ErrPasswordRequired is an error for a missing password
	ErrPasswordRequired = errors.New("password is required")
	// ErrPasswordTooShort is an error for a password that is too short
	ErrPasswordTooShort = errors.New("password should be at least 6 characters")
	// ErrDuplicateEmail is an error for a registration with an email that is taken
	ErrDuplicateEmail = errors.New("user already exists")

	// ErrCatalogIDRequired is an error for a missing catalog identifier
	ErrCatalogIDRequired = errors.New("googleBooksId is required")
	// ErrTitleRequired is an error for a missing title
	ErrTitleRequired = errors.New("title is required")
	// ErrInvalidStatus is an error for an invalid book status
	ErrInvalidStatus = errors.New("invalid book status")
	// ErrInvalidRating is an error for a rating outside the 1-5 range
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrDuplicateBook is an error for shelving the same catalog title twice
	ErrDuplicateBook = errors.New("book already exists in your shelf")

	// ErrRatingRequired is an error for a missing review rating
	ErrRatingRequired = errors.New("rating is required")
	// ErrReviewTextRequired is an error for missing review text
	ErrReviewTextRequired = errors.New("review text is required")
	// ErrBookNotOwned is an error for reviewing a title absent from the
	// caller's own shelf
	ErrBookNotOwned = errors.New("you can only review books in your shelf")
	// ErrDuplicateReview is an error for reviewing the same shelf entry twice
	ErrDuplicateReview = errors.New("you have already reviewed this book")
)
