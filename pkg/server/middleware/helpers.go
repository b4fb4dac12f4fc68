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
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shelfmark/shelfmark/pkg/server/log"
)

// SessionCookieName is the name of the cookie holding the session key
const SessionCookieName = "id"

// GetCredential extracts the session key from the request. The Authorization
// header takes precedence over the session cookie.
func GetCredential(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1], nil
		}
	}

	cookie, err := r.Cookie(SessionCookieName)
	if err == http.ErrNoCookie {
		return "", nil
	} else if err != nil {
		return "", err
	}

	return cookie.Value, nil
}

type errorResponse struct {
	Message string `json:"message"`
}

// RespondUnauthorized responds with a 401 for a request without a valid session
func RespondUnauthorized(w http.ResponseWriter) {
	RespondMessage(w, http.StatusUnauthorized, "Unauthorized")
}

// RespondMessage writes a JSON error body with the given message and status code
func RespondMessage(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(errorResponse{Message: message}); err != nil {
		log.ErrorWrap(err, "encoding error response")
	}
}

// DoError logs the given error and responds with a generic message. The
// diagnostic detail stays server-side.
func DoError(w http.ResponseWriter, msg string, err error, statusCode int) {
	log.WithFields(log.Fields{
		"statusCode": statusCode,
		"error":      err,
	}).Error(msg)

	RespondMessage(w, statusCode, "Server error")
}
