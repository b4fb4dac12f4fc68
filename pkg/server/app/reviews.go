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

// ReviewQuery is a filter for listing reviews
type ReviewQuery struct {
	BookUUID      string
	GoogleBooksID string
	UserUUID      string
	PublicOnly    bool
}

// scopeToCaller is the policy for defaulting a non-public review listing to
// the caller's own reviews. Without an explicit user filter, a private
// listing never widens beyond the caller.
func scopeToCaller(user *database.User, q ReviewQuery) bool {
	return !q.PublicOnly && q.UserUUID == ""
}

// GetReviews returns reviews matching the given query, newest first, each
// with the reviewing user's public profile attached. A non-public listing
// requires an authenticated caller.
func (a *App) GetReviews(user *database.User, q ReviewQuery) ([]database.Review, error) {
	if !q.PublicOnly && user == nil {
		return nil, ErrUnauthorized
	}

	conn := a.DB.Model(&database.Review{})

	if q.BookUUID != "" {
		var book database.Book
		err := a.DB.Where("uuid = ?", q.BookUUID).First(&book).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []database.Review{}, nil
		} else if err != nil {
			return nil, pkgErrors.Wrap(err, "finding book")
		}

		conn = conn.Where("book_id = ?", book.ID)
	}
	if q.GoogleBooksID != "" {
		conn = conn.Where("google_books_id = ?", q.GoogleBooksID)
	}
	if q.PublicOnly {
		conn = conn.Where("is_public = ?", true)
	}

	if q.UserUUID != "" {
		var reviewer database.User
		err := a.DB.Where("uuid = ?", q.UserUUID).First(&reviewer).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []database.Review{}, nil
		} else if err != nil {
			return nil, pkgErrors.Wrap(err, "finding reviewer")
		}

		conn = conn.Where("user_id = ?", reviewer.ID)
	} else if scopeToCaller(user, q) {
		conn = conn.Where("user_id = ?", user.ID)
	}

	reviews := []database.Review{}
	if err := conn.Preload("User").Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding reviews")
	}

	return reviews, nil
}

// GetReview returns the review with the given uuid. A private review is
// only visible to its owner.
func (a *App) GetReview(user *database.User, uuid string) (database.Review, error) {
	var review database.Review
	err := a.DB.Preload("User").Where("uuid = ?", uuid).First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.Review{}, ErrNotFound
	} else if err != nil {
		return database.Review{}, pkgErrors.Wrap(err, "finding review")
	}

	if !permissions.ViewReview(user, review) {
		return database.Review{}, ErrUnauthorized
	}

	return review, nil
}

// CreateReviewParams is the parameters for creating a review
type CreateReviewParams struct {
	GoogleBooksID string
	Rating        *int
	ReviewText    string
	IsPublic      *bool
}

// CreateReview creates a review for a title on the user's own shelf and
// mirrors the rating onto the shelf entry.
func (a *App) CreateReview(user database.User, p CreateReviewParams) (database.Review, error) {
	if p.GoogleBooksID == "" {
		return database.Review{}, ErrCatalogIDRequired
	}
	if p.Rating == nil {
		return database.Review{}, ErrRatingRequired
	}
	if !validRating(*p.Rating) {
		return database.Review{}, ErrInvalidRating
	}
	if p.ReviewText == "" {
		return database.Review{}, ErrReviewTextRequired
	}

	var book database.Book
	err := a.DB.Where("user_id = ? AND google_books_id = ?", user.ID, p.GoogleBooksID).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.Review{}, ErrBookNotOwned
	} else if err != nil {
		return database.Review{}, pkgErrors.Wrap(err, "finding book")
	}

	var count int64
	err = a.DB.Model(&database.Review{}).
		Where("user_id = ? AND book_id = ?", user.ID, book.ID).
		Count(&count).Error
	if err != nil {
		return database.Review{}, pkgErrors.Wrap(err, "counting existing reviews")
	}
	if count > 0 {
		return database.Review{}, ErrDuplicateReview
	}

	uuid, err := helpers.GenUUID()
	if err != nil {
		return database.Review{}, err
	}

	isPublic := true
	if p.IsPublic != nil {
		isPublic = *p.IsPublic
	}

	review := database.Review{
		UUID:          uuid,
		UserID:        user.ID,
		BookID:        book.ID,
		GoogleBooksID: p.GoogleBooksID,
		Rating:        *p.Rating,
		ReviewText:    p.ReviewText,
		IsPublic:      isPublic,
	}

	tx := a.DB.Begin()
	if err := tx.Create(&review).Error; err != nil {
		tx.Rollback()
		return database.Review{}, pkgErrors.Wrap(err, "inserting review")
	}

	if err := tx.Model(&book).Update("rating", *p.Rating).Error; err != nil {
		tx.Rollback()
		return database.Review{}, pkgErrors.Wrap(err, "mirroring rating onto book")
	}
	tx.Commit()

	review.User = user

	return review, nil
}

// UpdateReviewParams is the parameters for updating a review. Only the
// rating, text and visibility of a review can change.
type UpdateReviewParams struct {
	Rating     *int
	ReviewText *string
	IsPublic   *bool
}

// UpdateReview updates the user's own review with the given uuid. A rating
// change is re-synchronized onto the linked shelf entry, but only if that
// entry is still owned by the same user.
func (a *App) UpdateReview(user database.User, uuid string, p UpdateReviewParams) (database.Review, error) {
	var review database.Review
	err := a.DB.Where("uuid = ?", uuid).First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.Review{}, ErrNotFound
	} else if err != nil {
		return database.Review{}, pkgErrors.Wrap(err, "finding review")
	}

	if !permissions.Owns(&user, review) {
		return database.Review{}, ErrUnauthorized
	}

	ratingChanged := false
	if p.Rating != nil {
		if !validRating(*p.Rating) {
			return database.Review{}, ErrInvalidRating
		}
		ratingChanged = *p.Rating != review.Rating
		review.Rating = *p.Rating
	}
	if p.ReviewText != nil {
		if *p.ReviewText == "" {
			return database.Review{}, ErrReviewTextRequired
		}
		review.ReviewText = *p.ReviewText
	}
	if p.IsPublic != nil {
		review.IsPublic = *p.IsPublic
	}

	tx := a.DB.Begin()
	if err := tx.Save(&review).Error; err != nil {
		tx.Rollback()
		return database.Review{}, pkgErrors.Wrap(err, "updating review")
	}

	if ratingChanged {
		var book database.Book
		err := tx.Where("id = ?", review.BookID).First(&book).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			tx.Rollback()
			return database.Review{}, pkgErrors.Wrap(err, "finding linked book")
		}

		if err == nil && permissions.Owns(&user, book) {
			if err := tx.Model(&book).Update("rating", review.Rating).Error; err != nil {
				tx.Rollback()
				return database.Review{}, pkgErrors.Wrap(err, "re-syncing book rating")
			}
		}
	}
	tx.Commit()

	review.User = user

	return review, nil
}

// DeleteReview removes the user's own review with the given uuid. The
// linked shelf entry keeps its last synced rating.
func (a *App) DeleteReview(user database.User, uuid string) error {
	var review database.Review
	err := a.DB.Where("uuid = ?", uuid).First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	} else if err != nil {
		return pkgErrors.Wrap(err, "finding review")
	}

	if !permissions.Owns(&user, review) {
		return ErrUnauthorized
	}

	if err := a.DB.Delete(&review).Error; err != nil {
		return pkgErrors.Wrap(err, "deleting review")
	}

	return nil
}
