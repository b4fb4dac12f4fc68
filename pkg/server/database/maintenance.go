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

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CheckpointWAL truncates the SQLite write-ahead log so that it does not
// grow unbounded. It is a no-op for other drivers.
func CheckpointWAL(db *gorm.DB) error {
	if db.Dialector.Name() != DriverSQLite {
		return nil
	}

	if err := db.Exec("PRAGMA wal_checkpoint(TRUNCATE);").Error; err != nil {
		return errors.Wrap(err, "checkpointing WAL")
	}

	return nil
}

// Vacuum reclaims unused space and defragments the SQLite database file.
// It is a no-op for other drivers.
func Vacuum(db *gorm.DB) error {
	if db.Dialector.Name() != DriverSQLite {
		return nil
	}

	if err := db.Exec("VACUUM;").Error; err != nil {
		return errors.Wrap(err, "vacuuming database")
	}

	return nil
}
