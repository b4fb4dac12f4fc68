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
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"

	"github.com/shelfmark/shelfmark/pkg/assert"
	"github.com/shelfmark/shelfmark/pkg/server/app"
	"github.com/shelfmark/shelfmark/pkg/server/database"
	"github.com/shelfmark/shelfmark/pkg/server/presenters"
	"github.com/shelfmark/shelfmark/pkg/server/testutils"
)

func TestGetReviews_PublicListing(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	// Setup
	a := app.NewTest()
	a.DB = db
	server := MustNewServer(t, &a)
	defer server.Close()

	alice := testutils.SetupUserData(db, "alice", "alice@example.com", "secret1")
	bob := testutils.SetupUserData(db, "bob", "bob@example.com", "secret1")

	aliceBook := testutils.SetupBookData(db, alice, "vol-1", "Some Title", database.BookStatusFinished)
	bobBook := testutils.SetupBookData(db, bob, "vol-1", "Some Title", database.BookStatusFinished)

	publicReview := testutils.SetupReviewData(db, alice, aliceBook, 4, true)
	testutils.SetupReviewData(db, bob, bobBook, 2, false)

	// Execute: no authentication
	req := testutils.MakeReq(server.URL, "GET", "/reviews?isPublic=true", "")
	res := testutils.HTTPDo(t, req)

	// Test
	assert.StatusCodeEquals(t, res, http.StatusOK, "")

	var payload struct {
		Reviews []presenters.Review `json:"reviews"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatal(errors.Wrap(err, "decoding payload"))
	}

	assert.Equal(t, len(payload.Reviews), 1, "review count mismatch")
	assert.Equal(t, payload.Reviews[0].ID, publicReview.UUID, "review mismatch")
	assert.Equal(t, payload.Reviews[0].User.Name, "alice", "reviewer mismatch")
}

func TestGetReviews_PrivateListingGuest(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	// Setup
	a := app.NewTest()
	a.DB = db
	server := MustNewServer(t, &a)
	defer server.Close()

	// Execute: a non-public listing without authentication
	req := testutils.MakeReq(server.URL, "GET", "/reviews", "")
	res := testutils.HTTPDo(t, req)

	// Test
	assert.StatusCodeEquals(t, res, http.StatusUnauthorized, "")
}

func TestGetReviews_OwnListing(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	// Setup
	a := app.NewTest()
	a.DB = db
	server := MustNewServer(t, &a)
	defer server.Close()

	alice := testutils.SetupUserData(db, "alice", "alice@example.com", "secret1")
	bob := testutils.SetupUserData(db, "bob", "bob@example.com", "secret1")

	aliceBook := testutils.SetupBookData(db, alice, "vol-1", "Some Title", database.BookStatusFinished)
	bobBook := testutils.SetupBookData(db, bob, "vol-1", "Some Title", database.BookStatusFinished)

	ownReview := testutils.SetupReviewData(db, alice, aliceBook, 3, false)
	testutils.SetupReviewData(db, bob, bobBook, 5, true)

	// Execute
	req := testutils.MakeReq(server.URL, "GET", "/reviews", "")
	res := testutils.HTTPAuthDo(t, db, req, alice)

	// Test: the listing scopes to the caller
	assert.StatusCodeEquals(t, res, http.StatusOK, "")

	var payload struct {
		Reviews []presenters.Review `json:"reviews"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatal(errors.Wrap(err, "decoding payload"))
	}

	assert.Equal(t, len(payload.Reviews), 1, "review count mismatch")
	assert.Equal(t, payload.Reviews[0].ID, ownReview.UUID, "review mismatch")
}

func TestCreateReview(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	// Setup
	a := app.NewTest()
	a.DB = db
	server := MustNewServer(t, &a)
	defer server.Close()

	user := testutils.SetupUserData(db, "alice", "alice@example.com", "secret1")
	book := testutils.SetupBookData(db, user, "vol-1", "Some Title", database.BookStatusFinished)

	// Execute
	body := `{"googleBooksId": "vol-1", "rating": 4, "reviewText": "a fine read"}`
	req := testutils.MakeReq(server.URL, "POST", "/reviews", body)
	req.Header.Set("Content-Type", "application/json")
	res := testutils.HTTPAuthDo(t, db, req, user)

	// Test
	assert.StatusCodeEquals(t, res, http.StatusCreated, "")

	var payload struct {
		Review presenters.Review `json:"review"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatal(errors.Wrap(err, "decoding payload"))
	}

	assert.Equal(t, payload.Review.Rating, 4, "rating mismatch")
	assert.Equal(t, payload.Review.IsPublic, true, "visibility should default to public")

	var bookRecord database.Book
	testutils.MustExec(t, db.Where("id = ?", book.ID).First(&bookRecord), "finding book")
	if bookRecord.Rating == nil {
		t.Fatal("book rating should be set")
	}
	assert.Equal(t, *bookRecord.Rating, 4, "book rating should mirror the review rating")
}

func TestCreateReview_TitleNotOnShelf(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	// Setup
	a := app.NewTest()
	a.DB = db
	server := MustNewServer(t, &a)
	defer server.Close()

	user := testutils.SetupUserData(db, "alice", "alice@example.com", "secret1")

	// Execute
	body := `{"googleBooksId": "vol-9", "rating": 4, "reviewText": "a fine read"}`
	req := testutils.MakeReq(server.URL, "POST", "/reviews", body)
	req.Header.Set("Content-Type", "application/json")
	res := testutils.HTTPAuthDo(t, db, req, user)

	// Test
	assert.StatusCodeEquals(t, res, http.StatusBadRequest, "")

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatal(errors.Wrap(err, "decoding payload"))
	}

	assert.Equal(t, payload.Message, "you can only review books in your shelf", "message mismatch")
}

func TestCreateReview_Guest(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	// Setup
	a := app.NewTest()
	a.DB = db
	server := MustNewServer(t, &a)
	defer server.Close()

	// Execute
	body := `{"googleBooksId": "vol-1", "rating": 4, "reviewText": "a fine read"}`
	req := testutils.MakeReq(server.URL, "POST", "/reviews", body)
	req.Header.Set("Content-Type", "application/json")
	res := testutils.HTTPDo(t, req)

	// Test
	assert.StatusCodeEquals(t, res, http.StatusUnauthorized, "")
}

func TestGetReview_Public(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	// Setup
	a := app.NewTest()
	a.DB = db
	server := MustNewServer(t, &a)
	defer server.Close()

	user := testutils.SetupUserData(db, "alice", "alice@example.com", "secret1")
	book := testutils.SetupBookData(db, user, "vol-1", "Some Title", database.BookStatusFinished)
	review := testutils.SetupReviewData(db, user, book, 4, true)

	// Execute: no authentication
	req := testutils.MakeReq(server.URL, "GET", fmt.Sprintf("/reviews/%s", review.UUID), "")
	res := testutils.HTTPDo(t, req)

	// Test
	assert.StatusCodeEquals(t, res, http.StatusOK, "")

	var payload struct {
		Review presenters.Review `json:"review"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatal(errors.Wrap(err, "decoding payload"))
	}

	assert.Equal(t, payload.Review.ID, review.UUID, "review mismatch")
}

func TestGetReview_Private(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	// Setup
	a := app.NewTest()
	a.DB = db
	server := MustNewServer(t, &a)
	defer server.Close()

	alice := testutils.SetupUserData(db, "alice", "alice@example.com", "secret1")
	bob := testutils.SetupUserData(db, "bob", "bob@example.com", "secret1")

	book := testutils.SetupBookData(db, alice, "vol-1", "Some Title", database.BookStatusFinished)
	review := testutils.SetupReviewData(db, alice, book, 4, false)

	t.Run("guest", func(t *testing.T) {
		req := testutils.MakeReq(server.URL, "GET", fmt.Sprintf("/reviews/%s", review.UUID), "")
		res := testutils.HTTPDo(t, req)

		assert.StatusCodeEquals(t, res, http.StatusUnauthorized, "")
	})

	t.Run("non-owner", func(t *testing.T) {
		req := testutils.MakeReq(server.URL, "GET", fmt.Sprintf("/reviews/%s", review.UUID), "")
		res := testutils.HTTPAuthDo(t, db, req, bob)

		assert.StatusCodeEquals(t, res, http.StatusUnauthorized, "")
	})

	t.Run("owner", func(t *testing.T) {
		req := testutils.MakeReq(server.URL, "GET", fmt.Sprintf("/reviews/%s", review.UUID), "")
		res := testutils.HTTPAuthDo(t, db, req, alice)

		assert.StatusCodeEquals(t, res, http.StatusOK, "")
	})
}

func TestUpdateReview(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	// Setup
	a := app.NewTest()
	a.DB = db
	server := MustNewServer(t, &a)
	defer server.Close()

	user := testutils.SetupUserData(db, "alice", "alice@example.com", "secret1")
	book := testutils.SetupBookData(db, user, "vol-1", "Some Title", database.BookStatusFinished)
	review := testutils.SetupReviewData(db, user, book, 4, true)

	// Execute
	body := `{"rating": 2, "reviewText": "changed my mind", "isPublic": false}`
	req := testutils.MakeReq(server.URL, "PUT", fmt.Sprintf("/reviews/%s", review.UUID), body)
	req.Header.Set("Content-Type", "application/json")
	res := testutils.HTTPAuthDo(t, db, req, user)

	// Test
	assert.StatusCodeEquals(t, res, http.StatusOK, "")

	var record database.Review
	testutils.MustExec(t, db.Where("id = ?", review.ID).First(&record), "finding review")

	assert.Equal(t, record.Rating, 2, "rating mismatch")
	assert.Equal(t, record.ReviewText, "changed my mind", "text mismatch")
	assert.Equal(t, record.IsPublic, false, "visibility mismatch")

	var bookRecord database.Book
	testutils.MustExec(t, db.Where("id = ?", book.ID).First(&bookRecord), "finding book")
	if bookRecord.Rating == nil {
		t.Fatal("book rating should be set")
	}
	assert.Equal(t, *bookRecord.Rating, 2, "book rating should re-sync")
}

func TestUpdateReview_NotOwned(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	// Setup
	a := app.NewTest()
	a.DB = db
	server := MustNewServer(t, &a)
	defer server.Close()

	alice := testutils.SetupUserData(db, "alice", "alice@example.com", "secret1")
	bob := testutils.SetupUserData(db, "bob", "bob@example.com", "secret1")

	book := testutils.SetupBookData(db, alice, "vol-1", "Some Title", database.BookStatusFinished)
	review := testutils.SetupReviewData(db, alice, book, 4, true)

	// Execute
	body := `{"rating": 1}`
	req := testutils.MakeReq(server.URL, "PUT", fmt.Sprintf("/reviews/%s", review.UUID), body)
	req.Header.Set("Content-Type", "application/json")
	res := testutils.HTTPAuthDo(t, db, req, bob)

	// Test
	assert.StatusCodeEquals(t, res, http.StatusUnauthorized, "")

	var record database.Review
	testutils.MustExec(t, db.Where("id = ?", review.ID).First(&record), "finding review")
	assert.Equal(t, record.Rating, 4, "rating should be unchanged")
}

func TestDeleteReview(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	// Setup
	a := app.NewTest()
	a.DB = db
	server := MustNewServer(t, &a)
	defer server.Close()

	user := testutils.SetupUserData(db, "alice", "alice@example.com", "secret1")
	book := testutils.SetupBookData(db, user, "vol-1", "Some Title", database.BookStatusFinished)
	review := testutils.SetupReviewData(db, user, book, 4, true)

	// Execute
	req := testutils.MakeReq(server.URL, "DELETE", fmt.Sprintf("/reviews/%s", review.UUID), "")
	res := testutils.HTTPAuthDo(t, db, req, user)

	// Test
	assert.StatusCodeEquals(t, res, http.StatusOK, "")

	var count int64
	testutils.MustExec(t, db.Model(&database.Review{}).Count(&count), "counting reviews")
	assert.Equal(t, count, int64(0), "review should be deleted")
}
