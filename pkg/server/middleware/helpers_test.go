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
	"net/http"
	"testing"

	"github.com/shelfmark/shelfmark/pkg/assert"
)

func TestGetCredential(t *testing.T) {
	testCases := []struct {
		name       string
		authHeader string
		cookie     *http.Cookie
		expected   string
	}{
		{
			name:     "no credential",
			expected: "",
		},
		{
			name:       "bearer header",
			authHeader: "Bearer some-session-key",
			expected:   "some-session-key",
		},
		{
			name:     "cookie",
			cookie:   &http.Cookie{Name: SessionCookieName, Value: "cookie-session-key"},
			expected: "cookie-session-key",
		},
		{
			name:       "header takes precedence over cookie",
			authHeader: "Bearer header-session-key",
			cookie:     &http.Cookie{Name: SessionCookieName, Value: "cookie-session-key"},
			expected:   "header-session-key",
		},
		{
			name:       "malformed header falls back to cookie",
			authHeader: "some-session-key",
			cookie:     &http.Cookie{Name: SessionCookieName, Value: "cookie-session-key"},
			expected:   "cookie-session-key",
		},
		{
			name:     "unrelated cookie",
			cookie:   &http.Cookie{Name: "other", Value: "cookie-session-key"},
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			req, err := http.NewRequest("GET", "/api/books", nil)
			if err != nil {
				t.Fatal(err, "constructing request")
			}
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			if tc.cookie != nil {
				req.AddCookie(tc.cookie)
			}

			// Execute
			credential, err := GetCredential(req)
			if err != nil {
				t.Fatal(err, "getting credential")
			}

			// Test
			assert.Equal(t, credential, tc.expected, "credential mismatch")
		})
	}
}
