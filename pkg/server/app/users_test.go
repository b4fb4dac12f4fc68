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
	"golang.org/x/crypto/bcrypt"

	"github.com/shelfmark/shelfmark/pkg/assert"
	"github.com/shelfmark/shelfmark/pkg/server/database"
	"github.com/shelfmark/shelfmark/pkg/server/testutils"
)

func TestCreateUser(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	a := NewTest()
	a.DB = db

	user, err := a.CreateUser("alice", "alice@example.com", "secret1")
	if err != nil {
		t.Fatal(errors.Wrap(err, "creating user"))
	}

	assert.Equal(t, user.Name, "alice", "name mismatch")
	assert.Equal(t, user.Email, "alice@example.com", "email mismatch")
	assert.NotEqual(t, user.UUID, "", "uuid should be set")
	assert.NotEqual(t, user.Password, "secret1", "password should not be stored in plaintext")

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret1")); err != nil {
		t.Errorf("stored password should match the given password: %v", err)
	}

	var count int64
	testutils.MustExec(t, db.Model(&database.User{}).Count(&count), "counting users")
	assert.Equal(t, count, int64(1), "user count mismatch")
}

func TestCreateUser_MissingFields(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	a := NewTest()
	a.DB = db

	testCases := []struct {
		name        string
		userName    string
		email       string
		password    string
		expectedErr error
	}{
		{"missing name", "", "alice@example.com", "secret1", ErrNameRequired},
		{"missing email", "alice", "", "secret1", ErrEmailRequired},
		{"missing password", "alice", "alice@example.com", "", ErrPasswordRequired},
		{"short password", "alice", "alice@example.com", "abc", ErrPasswordTooShort},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := a.CreateUser(tc.userName, tc.email, tc.password)
			assert.Equal(t, err, tc.expectedErr, "error mismatch")
		})
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	a := NewTest()
	a.DB = db

	testutils.SetupUserData(db, "alice", "alice@example.com", "secret1")

	_, err := a.CreateUser("alice again", "alice@example.com", "secret1")
	assert.Equal(t, err, ErrDuplicateEmail, "error mismatch")

	var count int64
	testutils.MustExec(t, db.Model(&database.User{}).Count(&count), "counting users")
	assert.Equal(t, count, int64(1), "no second user should have been created")
}

func TestAuthenticate(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	a := NewTest()
	a.DB = db

	setup := testutils.SetupUserData(db, "alice", "alice@example.com", "secret1")

	t.Run("correct password", func(t *testing.T) {
		user, err := a.Authenticate("alice@example.com", "secret1")
		if err != nil {
			t.Fatal(errors.Wrap(err, "authenticating"))
		}

		assert.Equal(t, user.ID, setup.ID, "user id mismatch")
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := a.Authenticate("alice@example.com", "wrongpass")
		assert.Equal(t, err, ErrLoginInvalid, "error mismatch")
	})

	t.Run("nonexistent email", func(t *testing.T) {
		_, err := a.Authenticate("bob@example.com", "secret1")
		assert.Equal(t, err, ErrNotFound, "error mismatch")
	})
}

func TestUpdateProfile(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	a := NewTest()
	a.DB = db

	user := testutils.SetupUserData(db, "alice", "alice@example.com", "secret1")

	image := "https://example.com/avatar.png"
	updated, err := a.UpdateProfile(user, UpdateProfileParams{Name: "alice b", Image: &image})
	if err != nil {
		t.Fatal(errors.Wrap(err, "updating profile"))
	}

	assert.Equal(t, updated.Name, "alice b", "name mismatch")
	assert.Equal(t, updated.Image, image, "image mismatch")
	// email stays
	assert.Equal(t, updated.Email, "alice@example.com", "email should be unchanged")
}

func TestUpdateProfile_MissingName(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	a := NewTest()
	a.DB = db

	user := testutils.SetupUserData(db, "alice", "alice@example.com", "secret1")

	_, err := a.UpdateProfile(user, UpdateProfileParams{Name: ""})
	assert.Equal(t, err, ErrNameRequired, "error mismatch")
}

func TestResetPassword(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	a := NewTest()
	a.DB = db

	user := testutils.SetupUserData(db, "alice", "alice@example.com", "secret1")
	testutils.SetupSession(db, user)

	if err := a.ResetPassword("alice@example.com", "newsecret"); err != nil {
		t.Fatal(errors.Wrap(err, "resetting password"))
	}

	var record database.User
	testutils.MustExec(t, db.Where("id = ?", user.ID).First(&record), "finding user")

	if err := bcrypt.CompareHashAndPassword([]byte(record.Password), []byte("newsecret")); err != nil {
		t.Errorf("stored password should match the new password: %v", err)
	}

	var sessionCount int64
	testutils.MustExec(t, db.Model(&database.Session{}).Where("user_id = ?", user.ID).Count(&sessionCount), "counting sessions")
	assert.Equal(t, sessionCount, int64(0), "existing sessions should be invalidated")
}

func TestResetPassword_NotFound(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	a := NewTest()
	a.DB = db

	err := a.ResetPassword("nobody@example.com", "newsecret")
	assert.Equal(t, err, ErrNotFound, "error mismatch")
}
