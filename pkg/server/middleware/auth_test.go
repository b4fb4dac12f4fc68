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

package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shelfmark/shelfmark/pkg/assert"
	"github.com/shelfmark/shelfmark/pkg/server/database"
	"github.com/shelfmark/shelfmark/pkg/server/testutils"
)

func TestAuthWithSession(t *testing.T) {
	// Setup
	db := testutils.InitMemoryDB(t)

	user := testutils.SetupUserData(db, "alice", "alice@example.com", "pass1234")
	session := testutils.SetupSession(db, user)

	expiredUser := testutils.SetupUserData(db, "bob", "bob@example.com", "pass1234")
	expiredSession := database.Session{
		UserID:    expiredUser.ID,
		Key:       "expired-session-key",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	testutils.MustExec(t, db.Create(&expiredSession), "preparing expired session")

	t.Run("valid session", func(t *testing.T) {
		// Setup
		req, err := http.NewRequest("GET", "/api/books", nil)
		if err != nil {
			t.Fatal(err, "constructing request")
		}
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", session.Key))

		// Execute
		got, ok, err := AuthWithSession(db, req)
		if err != nil {
			t.Fatal(err, "authenticating")
		}

		// Test
		assert.Equal(t, ok, true, "ok mismatch")
		assert.Equal(t, got.ID, user.ID, "user id mismatch")
	})

	t.Run("expired session", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/api/books", nil)
		if err != nil {
			t.Fatal(err, "constructing request")
		}
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", expiredSession.Key))

		_, ok, err := AuthWithSession(db, req)
		if err != nil {
			t.Fatal(err, "authenticating")
		}

		assert.Equal(t, ok, false, "expired session should not authenticate")
	})

	t.Run("unknown session key", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/api/books", nil)
		if err != nil {
			t.Fatal(err, "constructing request")
		}
		req.Header.Set("Authorization", "Bearer no-such-key")

		_, ok, err := AuthWithSession(db, req)
		if err != nil {
			t.Fatal(err, "authenticating")
		}

		assert.Equal(t, ok, false, "unknown key should not authenticate")
	})

	t.Run("no credential", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/api/books", nil)
		if err != nil {
			t.Fatal(err, "constructing request")
		}

		_, ok, err := AuthWithSession(db, req)
		if err != nil {
			t.Fatal(err, "authenticating")
		}

		assert.Equal(t, ok, false, "missing credential should not authenticate")
	})
}

func TestAuth(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	user := testutils.SetupUserData(db, "alice", "alice@example.com", "pass1234")
	session := testutils.SetupSession(db, user)

	handler := Auth(db, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, nil)

	t.Run("authenticated", func(t *testing.T) {
		// Setup
		req := httptest.NewRequest("GET", "/api/books", nil)
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", session.Key))
		w := httptest.NewRecorder()

		// Execute
		handler.ServeHTTP(w, req)

		// Test
		assert.Equal(t, w.Code, http.StatusOK, "status code mismatch")
	})

	t.Run("guest", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/books", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, w.Code, http.StatusUnauthorized, "status code mismatch")
	})

	t.Run("guest with redirect", func(t *testing.T) {
		redirecting := Auth(db, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}, &AuthParams{RedirectGuestsToLogin: true})

		req := httptest.NewRequest("GET", "/dashboard", nil)
		w := httptest.NewRecorder()

		redirecting.ServeHTTP(w, req)

		assert.Equal(t, w.Code, http.StatusFound, "status code mismatch")
		assert.Equal(t, w.Header().Get("Location"), "/login?callbackUrl=%2Fdashboard", "redirect location mismatch")
	})
}

func TestGuestOnly(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	user := testutils.SetupUserData(db, "alice", "alice@example.com", "pass1234")
	session := testutils.SetupSession(db, user)

	handler := GuestOnly(db, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("guest passes through", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/login", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, w.Code, http.StatusOK, "status code mismatch")
	})

	t.Run("authenticated user is redirected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/login", nil)
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", session.Key))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, w.Code, http.StatusFound, "status code mismatch")
		assert.Equal(t, w.Header().Get("Location"), "/dashboard", "redirect location mismatch")
	})
}
