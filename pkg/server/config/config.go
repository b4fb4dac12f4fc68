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

package config

import (
	"net/url"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/shelfmark/shelfmark/pkg/server/database"
)

const (
	// AppEnvProduction represents an app environment for production.
	AppEnvProduction string = "PRODUCTION"
	// DefaultDBDir is the default directory name for Shelfmark data
	DefaultDBDir = "data"
	// DefaultDBFilename is the default database filename
	DefaultDBFilename = "shelfmark.db"
)

var (
	// DefaultDBPath is the default path to the SQLite database file
	DefaultDBPath = filepath.Join(DefaultDBDir, DefaultDBFilename)
)

var (
	// ErrDBMissingPath is an error for an incomplete configuration missing the database path
	ErrDBMissingPath = errors.New("DB Path is empty")
	// ErrDBMissingURL is an error for a postgres configuration missing the connection string
	ErrDBMissingURL = errors.New("DATABASE_URL is empty")
	// ErrDBDriverInvalid is an error for an unsupported database driver
	ErrDBDriverInvalid = errors.New("Invalid DB driver")
	// ErrWebURLInvalid is an error for an incomplete configuration with invalid web url
	ErrWebURLInvalid = errors.New("Invalid WebURL")
	// ErrPortInvalid is an error for an incomplete configuration with invalid port
	ErrPortInvalid = errors.New("Invalid Port")
)

// LoadDotEnv loads environment variables from a .env file if one exists in
// the working directory. Missing files are not an error.
func LoadDotEnv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}

	_ = godotenv.Load()
}

func readBoolEnv(name string) bool {
	return os.Getenv(name) == "true"
}

// getOrEnv returns value if non-empty, otherwise env var, otherwise default
func getOrEnv(value, envKey, defaultVal string) string {
	if value != "" {
		return value
	}
	if env := os.Getenv(envKey); env != "" {
		return env
	}
	return defaultVal
}

// Config is an application configuration
type Config struct {
	AppEnv              string
	WebURL              string
	Port                string
	DBDriver            string
	DBPath              string
	DatabaseURL         string
	GoogleBooksAPIKey   string
	DisableRegistration bool
	LogLevel            string
}

// Params are the configuration parameters for creating a new Config
type Params struct {
	AppEnv              string
	Port                string
	WebURL              string
	DBDriver            string
	DBPath              string
	DatabaseURL         string
	GoogleBooksAPIKey   string
	DisableRegistration bool
	LogLevel            string
}

// New constructs and returns a new validated config.
// Empty string params will fall back to environment variables and defaults.
func New(p Params) (Config, error) {
	c := Config{
		AppEnv:              getOrEnv(p.AppEnv, "APP_ENV", AppEnvProduction),
		Port:                getOrEnv(p.Port, "PORT", "3001"),
		WebURL:              getOrEnv(p.WebURL, "WebURL", "http://localhost:3001"),
		DBDriver:            getOrEnv(p.DBDriver, "DB_DRIVER", database.DriverSQLite),
		DBPath:              getOrEnv(p.DBPath, "DBPath", DefaultDBPath),
		DatabaseURL:         getOrEnv(p.DatabaseURL, "DATABASE_URL", ""),
		GoogleBooksAPIKey:   getOrEnv(p.GoogleBooksAPIKey, "GOOGLE_BOOKS_API_KEY", ""),
		DisableRegistration: p.DisableRegistration || readBoolEnv("DisableRegistration"),
		LogLevel:            getOrEnv(p.LogLevel, "LOG_LEVEL", "info"),
	}

	if err := validate(c); err != nil {
		return Config{}, err
	}

	return c, nil
}

// IsProd checks if the app environment is configured to be production.
func (c Config) IsProd() bool {
	return c.AppEnv == AppEnvProduction
}

// DSN returns the data source name for the configured database driver.
func (c Config) DSN() string {
	if c.DBDriver == database.DriverPostgres {
		return c.DatabaseURL
	}

	return c.DBPath
}

func validate(c Config) error {
	if _, err := url.ParseRequestURI(c.WebURL); err != nil {
		return errors.Wrapf(ErrWebURLInvalid, "'%s'", c.WebURL)
	}
	if c.Port == "" {
		return ErrPortInvalid
	}

	switch c.DBDriver {
	case database.DriverSQLite:
		if c.DBPath == "" {
			return ErrDBMissingPath
		}
	case database.DriverPostgres:
		if c.DatabaseURL == "" {
			return ErrDBMissingURL
		}
	default:
		return errors.Wrapf(ErrDBDriverInvalid, "'%s'", c.DBDriver)
	}

	return nil
}
