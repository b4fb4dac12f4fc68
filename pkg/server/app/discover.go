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
)

const discoverLimit = 10

// PopularBook is a representative shelf entry for a catalog title, together
// with the title's public review tallies.
type PopularBook struct {
	Book        database.Book
	ReviewCount int64
	AvgRating   float64
}

// DiscoverFeed is a cross-user aggregation of recent, highly-rated and
// most-reviewed titles.
type DiscoverFeed struct {
	Recent      []database.Book
	HighlyRated []database.Book
	Popular     []PopularBook
}

// GetDiscoverFeed computes the discover feed across all users. It requires
// no authentication.
func (a *App) GetDiscoverFeed() (DiscoverFeed, error) {
	recent := []database.Book{}
	err := a.DB.Preload("User").
		Order("created_at DESC").
		Limit(discoverLimit).
		Find(&recent).Error
	if err != nil {
		return DiscoverFeed{}, pkgErrors.Wrap(err, "finding recent books")
	}

	highlyRated := []database.Book{}
	err = a.DB.Preload("User").
		Where("rating >= ?", 4).
		Order("rating DESC").
		Limit(discoverLimit).
		Find(&highlyRated).Error
	if err != nil {
		return DiscoverFeed{}, pkgErrors.Wrap(err, "finding highly rated books")
	}

	popular, err := a.getPopularBooks()
	if err != nil {
		return DiscoverFeed{}, err
	}

	return DiscoverFeed{
		Recent:      recent,
		HighlyRated: highlyRated,
		Popular:     popular,
	}, nil
}

type reviewGroup struct {
	GoogleBooksID string
	ReviewCount   int64
	AvgRating     float64
}

// getPopularBooks groups public reviews by catalog title and resolves each
// of the top titles back to a representative shelf entry. Titles with no
// resolvable entry are dropped.
func (a *App) getPopularBooks() ([]PopularBook, error) {
	groups := []reviewGroup{}
	err := a.DB.Model(&database.Review{}).
		Select("google_books_id, COUNT(*) AS review_count, AVG(rating) AS avg_rating").
		Where("is_public = ?", true).
		Group("google_books_id").
		Order("review_count DESC").
		Limit(discoverLimit).
		Scan(&groups).Error
	if err != nil {
		return nil, pkgErrors.Wrap(err, "grouping public reviews")
	}

	ret := []PopularBook{}
	for _, group := range groups {
		var book database.Book
		err := a.DB.Preload("User").
			Where("google_books_id = ?", group.GoogleBooksID).
			First(&book).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		} else if err != nil {
			return nil, pkgErrors.Wrap(err, "resolving representative book")
		}

		ret = append(ret, PopularBook{
			Book:        book,
			ReviewCount: group.ReviewCount,
			AvgRating:   group.AvgRating,
		})
	}

	return ret, nil
}

// Stats is the count of a user's books in each status bucket
type Stats struct {
	Reading    int64 `json:"reading"`
	Finished   int64 `json:"finished"`
	WantToRead int64 `json:"wantToRead"`
	Total      int64 `json:"total"`
}

// GetUserStats counts the given user's books by status. The scope is always
// the caller, never another user.
func (a *App) GetUserStats(user database.User) (Stats, error) {
	countByStatus := func(status string) (int64, error) {
		var count int64
		err := a.DB.Model(&database.Book{}).
			Where("user_id = ? AND status = ?", user.ID, status).
			Count(&count).Error
		if err != nil {
			return 0, pkgErrors.Wrapf(err, "counting %s books", status)
		}

		return count, nil
	}

	reading, err := countByStatus(database.BookStatusReading)
	if err != nil {
		return Stats{}, err
	}
	finished, err := countByStatus(database.BookStatusFinished)
	if err != nil {
		return Stats{}, err
	}
	wantToRead, err := countByStatus(database.BookStatusWantToRead)
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		Reading:    reading,
		Finished:   finished,
		WantToRead: wantToRead,
		Total:      reading + finished + wantToRead,
	}, nil
}
