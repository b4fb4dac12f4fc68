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
	"fmt"
	"net/http"

	"github.com/shelfmark/shelfmark/pkg/server/buildinfo"
	"github.com/shelfmark/shelfmark/pkg/server/log"
)

// NewHealth creates a new Health controller
func NewHealth() *Health {
	return &Health{}
}

// Health is a controller for health checks
type Health struct {
}

// Index handles GET /health
func (c *Health) Index(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprintf(w, "ok (version: %s)", buildinfo.Version); err != nil {
		log.ErrorWrap(err, "writing health response")
	}
}
