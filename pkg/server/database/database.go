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
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	// DriverSQLite is the driver name for a file-backed SQLite database
	DriverSQLite = "sqlite"
	// DriverPostgres is the driver name for a PostgreSQL database
	DriverPostgres = "postgres"
)

// InitSchema migrates the database schema to reflect the latest model definition
func InitSchema(db *gorm.DB) {
	if err := db.AutoMigrate(
		&User{},
		&Session{},
		&Book{},
		&Review{},
	); err != nil {
		panic(err)
	}
}

// Open initializes the database connection for the given driver. For the
// sqlite driver, dsn is a path to the database file and the containing
// directory is created if missing. For the postgres driver, dsn is a
// connection string.
func Open(driver, dsn string) *gorm.DB {
	var dialector gorm.Dialector

	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dir := filepath.Dir(dsn)
		if err := os.MkdirAll(dir, 0755); err != nil {
			panic(errors.Wrapf(err, "creating database directory at %s", dir))
		}

		dialector = sqlite.Open(dsn)
	default:
		panic(errors.Errorf("unsupported database driver %s", driver))
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		panic(errors.Wrap(err, "opening database connection"))
	}

	return db
}
