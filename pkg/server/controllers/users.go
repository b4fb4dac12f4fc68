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
	"net/http"

	"github.com/gorilla/mux"
	pkgErrors "github.com/pkg/errors"

	"github.com/shelfmark/shelfmark/pkg/server/app"
	"github.com/shelfmark/shelfmark/pkg/server/context"
	"github.com/shelfmark/shelfmark/pkg/server/database"
	mw "github.com/shelfmark/shelfmark/pkg/server/middleware"
	"github.com/shelfmark/shelfmark/pkg/server/presenters"
)

// NewUsers creates a new Users controller
func NewUsers(app *app.App) *Users {
	return &Users{app: app}
}

// Users is a user controller
type Users struct {
	app *app.App
}

// RegistrationForm is the payload for registering
type RegistrationForm struct {
	Name     string `json:"name" schema:"name"`
	Email    string `json:"email" schema:"email" validate:"omitempty,email"`
	Password string `json:"password" schema:"password"`
}

// Register handles POST /register
func (u *Users) Register(w http.ResponseWriter, r *http.Request) {
	var form RegistrationForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	user, err := u.app.CreateUser(form.Name, form.Email, form.Password)
	if err != nil {
		handleJSONError(w, err, "creating user")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"user": presenters.PresentRegisteredUser(user),
	})
}

// LoginForm is the payload for logging in
type LoginForm struct {
	Email    string `json:"email" schema:"email"`
	Password string `json:"password" schema:"password"`
}

func (u *Users) login(form LoginForm) (*database.Session, error) {
	if form.Email == "" {
		return nil, app.ErrEmailRequired
	}
	if form.Password == "" {
		return nil, app.ErrPasswordRequired
	}

	user, err := u.app.Authenticate(form.Email, form.Password)
	if err != nil {
		// If the user is not found, treat it as invalid login
		if pkgErrors.Is(err, app.ErrNotFound) {
			return nil, app.ErrLoginInvalid
		}

		return nil, err
	}

	return u.app.SignIn(user)
}

// Login handles POST /login
func (u *Users) Login(w http.ResponseWriter, r *http.Request) {
	var form LoginForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	session, err := u.login(form)
	if err != nil {
		handleJSONError(w, err, "logging in user")
		return
	}

	respondWithSession(w, http.StatusOK, session)
}

// Logout handles POST /logout
func (u *Users) Logout(w http.ResponseWriter, r *http.Request) {
	key, err := mw.GetCredential(r)
	if err != nil {
		handleJSONError(w, err, "getting credential")
		return
	}

	if key != "" {
		if err := u.app.DeleteSession(key); err != nil {
			handleJSONError(w, err, "deleting session")
			return
		}
	}

	unsetSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /profile
func (u *Users) Me(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		mw.RespondUnauthorized(w)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"user": presenters.PresentUser(*user),
	})
}

// ProfileForm is the payload for updating a profile. The email is immutable
// and not accepted.
type ProfileForm struct {
	Name  string  `json:"name" schema:"name"`
	Image *string `json:"image" schema:"image"`
}

// UpdateProfile handles PUT /profile
func (u *Users) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		mw.RespondUnauthorized(w)
		return
	}

	var form ProfileForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	updated, err := u.app.UpdateProfile(*user, app.UpdateProfileParams{
		Name:  form.Name,
		Image: form.Image,
	})
	if err != nil {
		handleJSONError(w, err, "updating profile")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"user": presenters.PresentUser(updated),
	})
}

// Show handles GET /users/{userID}. It is a public profile lookup.
func (u *Users) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userID"]

	user, err := u.app.GetUserByUUID(userID)
	if err != nil {
		handleJSONError(w, err, "finding user")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"user": presenters.PresentUser(user),
	})
}
