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
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/shelfmark/shelfmark/pkg/server/app"
	mw "github.com/shelfmark/shelfmark/pkg/server/middleware"
)

// Route represents a single route
type Route struct {
	Method    string
	Pattern   string
	Handler   http.HandlerFunc
	RateLimit bool
}

// RouteConfig is the configuration for routes
type RouteConfig struct {
	Controllers *Controllers
	WebRoutes   []Route
	APIRoutes   []Route
}

// NewWebRoutes returns a new web routes
func NewWebRoutes(a *app.App, c *Controllers) []Route {
	redirectGuest := &mw.AuthParams{RedirectGuestsToLogin: true}

	ret := []Route{
		{"GET", "/", c.Pages.Home, true},
		{"GET", "/login", mw.GuestOnly(a.DB, c.Pages.Login), true},
		{"GET", "/dashboard", mw.Auth(a.DB, c.Pages.Dashboard, redirectGuest), true},
		{"GET", "/my-books", mw.Auth(a.DB, c.Pages.MyBooks, redirectGuest), true},

		{"GET", "/health", c.Health.Index, true},
	}

	if !a.DisableRegistration {
		ret = append(ret, Route{"GET", "/register", mw.GuestOnly(a.DB, c.Pages.Register), true})
	}

	return ret
}

// NewAPIRoutes returns a new api routes
func NewAPIRoutes(a *app.App, c *Controllers) []Route {
	ret := []Route{
		{"POST", "/login", c.Users.Login, true},
		{"POST", "/logout", c.Users.Logout, true},
		{"GET", "/profile", mw.Auth(a.DB, c.Users.Me, nil), true},
		{"PUT", "/profile", mw.Auth(a.DB, c.Users.UpdateProfile, nil), true},
		{"GET", "/users/{userID}", c.Users.Show, true},

		{"GET", "/books", mw.Auth(a.DB, c.Books.Index, nil), true},
		{"POST", "/books", mw.Auth(a.DB, c.Books.Create, nil), true},
		{"GET", "/books/{bookID}", mw.Auth(a.DB, c.Books.Show, nil), true},
		{"PUT", "/books/{bookID}", mw.Auth(a.DB, c.Books.Update, nil), true},
		{"DELETE", "/books/{bookID}", mw.Auth(a.DB, c.Books.Delete, nil), true},

		// The reviews listing and show gate access per review visibility,
		// so they authenticate in the handler.
		{"GET", "/reviews", c.Reviews.Index, true},
		{"POST", "/reviews", mw.Auth(a.DB, c.Reviews.Create, nil), true},
		{"GET", "/reviews/{reviewID}", c.Reviews.Show, true},
		{"PUT", "/reviews/{reviewID}", mw.Auth(a.DB, c.Reviews.Update, nil), true},
		{"DELETE", "/reviews/{reviewID}", mw.Auth(a.DB, c.Reviews.Delete, nil), true},

		{"GET", "/discover", c.Discover.Feed, true},
		{"GET", "/stats", mw.Auth(a.DB, c.Discover.Stats, nil), true},
		{"GET", "/search/books", mw.Auth(a.DB, c.Search.Books, nil), true},
	}

	if !a.DisableRegistration {
		ret = append(ret, Route{"POST", "/register", c.Users.Register, true})
	}

	return ret
}

func registerRoutes(router *mux.Router, wrapper mw.Middleware, app *app.App, routes []Route) {
	for _, route := range routes {
		wrappedHandler := wrapper(route.Handler, app, route.RateLimit)

		router.
			Handle(route.Pattern, wrappedHandler).
			Methods(route.Method)
	}
}

// NewRouter creates and returns a new router
func NewRouter(app *app.App, rc RouteConfig) (http.Handler, error) {
	if err := app.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating the app parameters")
	}

	router := mux.NewRouter().StrictSlash(true)

	registerRoutes(router, mw.WebMw, app, rc.WebRoutes)
	registerRoutes(router, mw.APIMw, app, rc.APIRoutes)

	router.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("User-agent: *\nAllow: /"))
	})

	// catch-all
	router.PathPrefix("/").HandlerFunc(rc.Controllers.Pages.NotFound)

	return mw.Global(router), nil
}
