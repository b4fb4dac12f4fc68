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

package presenters

import (
	"time"

	"github.com/shelfmark/shelfmark/pkg/server/database"
)

// User is a result of PresentUser. The credential is never present.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

// PresentUser presents a user's public profile
func PresentUser(user database.User) User {
	return User{
		ID:        user.UUID,
		Name:      user.Name,
		Email:     user.Email,
		Image:     user.Image,
		CreatedAt: FormatTS(user.CreatedAt),
	}
}

// RegisteredUser is a result of PresentRegisteredUser
type RegisteredUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PresentRegisteredUser presents a freshly registered user
func PresentRegisteredUser(user database.User) RegisteredUser {
	return RegisteredUser{
		ID:    user.UUID,
		Name:  user.Name,
		Email: user.Email,
	}
}
