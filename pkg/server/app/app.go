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
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/shelfmark/shelfmark/pkg/clock"
	"github.com/shelfmark/shelfmark/pkg/server/catalog"
)

var (
	// ErrEmptyDB is an error for missing database connection in the app configuration
	ErrEmptyDB = errors.New("No database connection was provided")
	// ErrEmptyClock is an error for missing clock in the app configuration
	ErrEmptyClock = errors.New("No clock was provided")
	// ErrEmptyWebURL is an error for missing WebURL in the app configuration
	ErrEmptyWebURL = errors.New("No WebURL was provided")
	// ErrEmptyCatalog is an error for missing catalog client in the app configuration
	ErrEmptyCatalog = errors.New("No catalog client was provided")
)

// App is an application context
type App struct {
	DB                  *gorm.DB
	Clock               clock.Clock
	Catalog             *catalog.Client
	WebURL              string
	Port                string
	DisableRegistration bool
}

// Validate validates the app configuration
func (a *App) Validate() error {
	if a.DB == nil {
		return ErrEmptyDB
	}
	if a.Clock == nil {
		return ErrEmptyClock
	}
	if a.Catalog == nil {
		return ErrEmptyCatalog
	}
	if a.WebURL == "" {
		return ErrEmptyWebURL
	}

	return nil
}
