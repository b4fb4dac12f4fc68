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

// Package permissions provides the authorization predicate applied before
// every mutating or private-read operation on an owned record.
package permissions

import (
	"github.com/shelfmark/shelfmark/pkg/server/database"
)

// Owned is a record that belongs to a single user
type Owned interface {
	OwnerID() int
}

// Owns checks if the given user owns the given record
func Owns(user *database.User, record Owned) bool {
	if user == nil {
		return false
	}
	if record.OwnerID() == 0 {
		return false
	}

	return record.OwnerID() == user.ID
}

// ViewReview checks if the given user can view the given review. Public
// reviews are visible to anyone, including guests.
func ViewReview(user *database.User, review database.Review) bool {
	if review.IsPublic {
		return true
	}

	return Owns(user, review)
}
