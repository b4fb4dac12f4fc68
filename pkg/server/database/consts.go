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

package database

const (
	// BookStatusReading indicates a book that the user is currently reading
	BookStatusReading = "reading"
	// BookStatusFinished indicates a book that the user has finished
	BookStatusFinished = "finished"
	// BookStatusWantToRead indicates a book that the user intends to read
	BookStatusWantToRead = "want-to-read"
)

// BookStatuses is the set of valid book statuses
var BookStatuses = []string{BookStatusReading, BookStatusFinished, BookStatusWantToRead}

// ValidBookStatus checks if the given status is one of the valid book statuses
func ValidBookStatus(status string) bool {
	for _, s := range BookStatuses {
		if s == status {
			return true
		}
	}

	return false
}
