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
	"testing"

	"github.com/pkg/errors"

	"github.com/shelfmark/shelfmark/pkg/assert"
	"github.com/shelfmark/shelfmark/pkg/server/database"
	"github.com/shelfmark/shelfmark/pkg/server/testutils"
)

func TestGetDiscoverFeed_Empty(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	a := NewTest()
	a.DB = db

	feed, err := a.GetDiscoverFeed()
	if err != nil {
		t.Fatal(errors.Wrap(err, "building feed"))
	}

	assert.Equal(t, len(feed.Recent), 0, "recent should be empty")
	assert.Equal(t, len(feed.HighlyRated), 0, "highly rated should be empty")
	assert.Equal(t, len(feed.Popular), 0, "popular should be empty")
}

func TestGetDiscoverFeed(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	a := NewTest()
	a.DB = db

	alice := testutils.SetupUserData(db, "alice", "alice@example.com", "secret1")
	bob := testutils.SetupUserData(db, "bob", "bob@example.com", "secret1")

	b1 := testutils.SetupBookData(db, alice, "vol-1", "First", database.BookStatusFinished)
	b2 := testutils.SetupBookData(db, bob, "vol-1", "First", database.BookStatusReading)
	b3 := testutils.SetupBookData(db, bob, "vol-2", "Second", database.BookStatusFinished)

	rating := 5
	testutils.MustExec(t, db.Model(&b1).Update("rating", rating), "rating b1")
	lowRating := 2
	testutils.MustExec(t, db.Model(&b3).Update("rating", lowRating), "rating b3")

	// two public reviews for vol-1, one private for vol-2
	testutils.SetupReviewData(db, alice, b1, 5, true)
	testutils.SetupReviewData(db, bob, b2, 3, true)
	testutils.SetupReviewData(db, bob, b3, 2, false)

	feed, err := a.GetDiscoverFeed()
	if err != nil {
		t.Fatal(errors.Wrap(err, "building feed"))
	}

	assert.Equal(t, len(feed.Recent), 3, "recent count mismatch")
	assert.Equal(t, feed.Recent[0].User.Name, "bob", "recent owner should be preloaded")

	assert.Equal(t, len(feed.HighlyRated), 1, "highly rated count mismatch")
	assert.Equal(t, feed.HighlyRated[0].UUID, b1.UUID, "highly rated mismatch")

	// only vol-1 has public reviews
	assert.Equal(t, len(feed.Popular), 1, "popular count mismatch")
	assert.Equal(t, feed.Popular[0].Book.GoogleBooksID, "vol-1", "popular title mismatch")
	assert.Equal(t, feed.Popular[0].ReviewCount, int64(2), "review count mismatch")
	assert.Equal(t, feed.Popular[0].AvgRating, 4.0, "average rating mismatch")
}

func TestGetUserStats(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	a := NewTest()
	a.DB = db

	user := testutils.SetupUserData(db, "alice", "alice@example.com", "secret1")
	anotherUser := testutils.SetupUserData(db, "bob", "bob@example.com", "secret1")

	testutils.SetupBookData(db, user, "vol-1", "First", database.BookStatusReading)
	testutils.SetupBookData(db, user, "vol-2", "Second", database.BookStatusReading)
	testutils.SetupBookData(db, user, "vol-3", "Third", database.BookStatusFinished)
	testutils.SetupBookData(db, anotherUser, "vol-4", "Fourth", database.BookStatusWantToRead)

	stats, err := a.GetUserStats(user)
	if err != nil {
		t.Fatal(errors.Wrap(err, "counting books"))
	}

	expected := Stats{Reading: 2, Finished: 1, WantToRead: 0, Total: 3}
	assert.DeepEqual(t, stats, expected, "stats mismatch")
}

func TestGetUserStats_Empty(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	a := NewTest()
	a.DB = db

	user := testutils.SetupUserData(db, "alice", "alice@example.com", "secret1")

	stats, err := a.GetUserStats(user)
	if err != nil {
		t.Fatal(errors.Wrap(err, "counting books"))
	}

	expected := Stats{}
	assert.DeepEqual(t, stats, expected, "stats mismatch")
}
