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

	"github.com/shelfmark/shelfmark/pkg/server/database"
)

// ReviewUser is the reviewing user's public profile attached to a review
type ReviewUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image"`
}

// Review is a result of PresentReview
type Review struct {
	ID            string     `json:"id"`
	GoogleBooksID string     `json:"googleBooksId"`
	Rating        int        `json:"rating"`
	ReviewText    string     `json:"reviewText"`
	IsPublic      bool       `json:"isPublic"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	User          ReviewUser `json:"user"`
}

// PresentReview presents a review with the reviewer's public profile
func PresentReview(review database.Review) Review {
	return Review{
		ID:            review.UUID,
		GoogleBooksID: review.GoogleBooksID,
		Rating:        review.Rating,
		ReviewText:    review.ReviewText,
		IsPublic:      review.IsPublic,
		CreatedAt:     FormatTS(review.CreatedAt),
		UpdatedAt:     FormatTS(review.UpdatedAt),
		User: ReviewUser{
			ID:    review.User.UUID,
			Name:  review.User.Name,
			Email: review.User.Email,
			Image: review.User.Image,
		},
	}
}

// PresentReviews presents reviews
func PresentReviews(reviews []database.Review) []Review {
	ret := []Review{}

	for _, review := range reviews {
		ret = append(ret, PresentReview(review))
	}

	return ret
}
