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
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	pkgErrors "github.com/pkg/errors"

	"github.com/shelfmark/shelfmark/pkg/server/app"
	"github.com/shelfmark/shelfmark/pkg/server/catalog"
	"github.com/shelfmark/shelfmark/pkg/server/database"
	"github.com/shelfmark/shelfmark/pkg/server/log"
	mw "github.com/shelfmark/shelfmark/pkg/server/middleware"
)

var formDecoder = schema.NewDecoder()

var validate = validator.New()

func init() {
	formDecoder.IgnoreUnknownKeys(true)
}

// parseForm parses the request form body into the given destination
func parseForm(r *http.Request, dst interface{}) error {
	if err := r.ParseForm(); err != nil {
		return pkgErrors.Wrap(err, "parsing form")
	}

	if err := formDecoder.Decode(dst, r.PostForm); err != nil {
		return pkgErrors.Wrap(err, "decoding form")
	}

	return nil
}

// parseRequestData decodes the request payload into the given destination
// based on the request content type, and validates it.
func parseRequestData(r *http.Request, dst interface{}) error {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") {
		if err := parseForm(r, dst); err != nil {
			return err
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return pkgErrors.Wrap(err, "decoding json")
		}
	}

	return validate.Struct(dst)
}

func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ErrorWrap(err, "encoding response")
	}
}

// statusCodeForError translates a known application error into an HTTP
// status code. Unknown errors map to 500.
func statusCodeForError(err error) int {
	switch {
	case isValidationError(err):
		return http.StatusBadRequest
	case pkgErrors.Is(err, app.ErrLoginInvalid),
		pkgErrors.Is(err, app.ErrUnauthorized):
		return http.StatusUnauthorized
	case pkgErrors.Is(err, app.ErrNotFound):
		return http.StatusNotFound
	case pkgErrors.Is(err, app.ErrDuplicateEmail),
		pkgErrors.Is(err, app.ErrDuplicateBook),
		pkgErrors.Is(err, app.ErrDuplicateReview):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func isValidationError(err error) bool {
	var fieldErrors validator.ValidationErrors
	if pkgErrors.As(err, &fieldErrors) {
		return true
	}

	switch {
	case pkgErrors.Is(err, app.ErrNameRequired),
		pkgErrors.Is(err, app.ErrEmailRequired),
		pkgErrors.Is(err, app.ErrPasswordRequired),
		pkgErrors.Is(err, app.ErrPasswordTooShort),
		pkgErrors.Is(err, app.ErrCatalogIDRequired),
		pkgErrors.Is(err, app.ErrTitleRequired),
		pkgErrors.Is(err, app.ErrInvalidStatus),
		pkgErrors.Is(err, app.ErrInvalidRating),
		pkgErrors.Is(err, app.ErrRatingRequired),
		pkgErrors.Is(err, app.ErrReviewTextRequired),
		pkgErrors.Is(err, app.ErrBookNotOwned):
		return true
	}

	return false
}

// handleJSONError converts a failure into a JSON error body and status
// code. Expected failures carry their own message; unexpected ones log the
// diagnostic detail and return a generic message.
func handleJSONError(w http.ResponseWriter, err error, msg string) {
	var upstreamErr *catalog.UpstreamError
	if pkgErrors.As(err, &upstreamErr) {
		mw.RespondMessage(w, upstreamErr.StatusCode, upstreamErr.Error())
		return
	}
	if pkgErrors.Is(err, catalog.ErrMissingAPIKey) {
		mw.DoError(w, msg, err, http.StatusInternalServerError)
		return
	}
	if pkgErrors.Is(err, catalog.ErrInvalidResponse) {
		mw.RespondMessage(w, http.StatusInternalServerError, catalog.ErrInvalidResponse.Error())
		return
	}

	statusCode := statusCodeForError(err)
	if statusCode == http.StatusInternalServerError {
		mw.DoError(w, msg, err, statusCode)
		return
	}

	mw.RespondMessage(w, statusCode, errorMessage(err))
}

func errorMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if pkgErrors.As(err, &fieldErrors) {
		return "Missing or invalid fields"
	}

	return pkgErrors.Cause(err).Error()
}

// sessionResponse is the JSON payload describing a signed-in session
type sessionResponse struct {
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func respondWithSession(w http.ResponseWriter, statusCode int, session *database.Session) {
	setSessionCookie(w, session.Key, session.ExpiresAt)

	respondJSON(w, statusCode, sessionResponse{
		Key:       session.Key,
		ExpiresAt: session.ExpiresAt,
	})
}

func setSessionCookie(w http.ResponseWriter, key string, expires time.Time) {
	cookie := http.Cookie{
		Name:     mw.SessionCookieName,
		Value:    key,
		Expires:  expires,
		Path:     "/",
		HttpOnly: true,
	}
	http.SetCookie(w, &cookie)
}

func unsetSessionCookie(w http.ResponseWriter) {
	expires := time.Now().Add(time.Hour * -24)
	cookie := http.Cookie{
		Name:     mw.SessionCookieName,
		Value:    "",
		Expires:  expires,
		Path:     "/",
		HttpOnly: true,
	}

	w.Header().Set("Cache-Control", "no-cache")
	http.SetCookie(w, &cookie)
}
