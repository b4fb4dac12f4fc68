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

package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/pkg/errors"
	"github.com/robfig/cron"

	"github.com/shelfmark/shelfmark/pkg/server/app"
	"github.com/shelfmark/shelfmark/pkg/server/buildinfo"
	"github.com/shelfmark/shelfmark/pkg/server/config"
	"github.com/shelfmark/shelfmark/pkg/server/controllers"
	"github.com/shelfmark/shelfmark/pkg/server/database"
	"github.com/shelfmark/shelfmark/pkg/server/log"
)

// scheduleJobs registers the recurring maintenance jobs and starts the
// scheduler
func scheduleJobs(a *app.App, cfg config.Config) *cron.Cron {
	c := cron.New()

	c.AddFunc("@hourly", func() {
		if err := a.DeleteExpiredSessions(); err != nil {
			log.ErrorWrap(err, "purging expired sessions")
		}
	})

	if cfg.DBDriver == database.DriverSQLite {
		// Keep the WAL file from growing unbounded
		c.AddFunc("@every 5m", func() {
			if err := database.CheckpointWAL(a.DB); err != nil {
				log.ErrorWrap(err, "checkpointing WAL")
			}
		})

		// Reclaim space and defragment
		c.AddFunc("@daily", func() {
			if err := database.Vacuum(a.DB); err != nil {
				log.ErrorWrap(err, "vacuuming database")
			}
		})
	}

	c.Start()

	return c
}

func startCmd(args []string) {
	fs := setupFlagSet("start", "shelfmark-server start")

	port := fs.String("port", "", "Server port (env: PORT, default: 3001)")
	webURL := fs.String("webUrl", "", "Full URL to server without trailing slash (env: WebURL, default: http://localhost:3001)")
	dbDriver := fs.String("dbDriver", "", "Database driver: sqlite or postgres (env: DB_DRIVER, default: sqlite)")
	dbPath := fs.String("dbPath", "", "Path to SQLite database file (env: DBPath, default: data/shelfmark.db)")
	databaseURL := fs.String("databaseUrl", "", "Postgres connection string (env: DATABASE_URL)")
	googleBooksAPIKey := fs.String("googleBooksApiKey", "", "API key for the Google Books API (env: GOOGLE_BOOKS_API_KEY)")
	disableRegistration := fs.Bool("disableRegistration", false, "Disable user registration (env: DisableRegistration, default: false)")
	logLevel := fs.String("logLevel", "", "Log level: debug, info, warn, or error (env: LOG_LEVEL, default: info)")

	fs.Parse(args)

	config.LoadDotEnv()

	cfg, err := config.New(config.Params{
		Port:                *port,
		WebURL:              *webURL,
		DBDriver:            *dbDriver,
		DBPath:              *dbPath,
		DatabaseURL:         *databaseURL,
		GoogleBooksAPIKey:   *googleBooksAPIKey,
		DisableRegistration: *disableRegistration,
		LogLevel:            *logLevel,
	})
	if err != nil {
		fmt.Printf("Error: %s\n\n", err)
		fs.Usage()
		os.Exit(1)
	}

	// Set log level
	log.SetLevel(cfg.LogLevel)

	app := initApp(cfg)
	defer func() {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}()

	scheduler := scheduleJobs(&app, cfg)
	defer scheduler.Stop()

	ctl := controllers.New(&app)
	rc := controllers.RouteConfig{
		WebRoutes:   controllers.NewWebRoutes(&app, ctl),
		APIRoutes:   controllers.NewAPIRoutes(&app, ctl),
		Controllers: ctl,
	}

	r, err := controllers.NewRouter(&app, rc)
	if err != nil {
		panic(errors.Wrap(err, "initializing router"))
	}

	log.WithFields(log.Fields{
		"version": buildinfo.Version,
		"port":    cfg.Port,
	}).Info("Shelfmark server starting")

	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.ErrorWrap(err, "server failed")
		os.Exit(1)
	}
}
