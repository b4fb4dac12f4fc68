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
	"html/template"
	"net/http"
	"strings"

	"github.com/shelfmark/shelfmark/pkg/server/log"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.Title}} - Shelfmark</title></head>
<body><h1>{{.Title}}</h1></body>
</html>
`))

type pageData struct {
	Title string
}

// NewPages creates a new Pages controller
func NewPages() *Pages {
	return &Pages{}
}

// Pages is a controller serving the server-rendered pages. The client
// application fills these in; the server's job is gating access to them.
type Pages struct {
}

func (c *Pages) render(w http.ResponseWriter, title string, statusCode int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := pageTmpl.Execute(w, pageData{Title: title}); err != nil {
		log.ErrorWrap(err, "rendering page")
	}
}

// Home handles GET /
func (c *Pages) Home(w http.ResponseWriter, r *http.Request) {
	c.render(w, "Shelfmark", http.StatusOK)
}

// Login handles GET /login
func (c *Pages) Login(w http.ResponseWriter, r *http.Request) {
	c.render(w, "Sign In", http.StatusOK)
}

// Register handles GET /register
func (c *Pages) Register(w http.ResponseWriter, r *http.Request) {
	c.render(w, "Join", http.StatusOK)
}

// Dashboard handles GET /dashboard
func (c *Pages) Dashboard(w http.ResponseWriter, r *http.Request) {
	c.render(w, "Dashboard", http.StatusOK)
}

// MyBooks handles GET /my-books
func (c *Pages) MyBooks(w http.ResponseWriter, r *http.Request) {
	c.render(w, "My Books", http.StatusOK)
}

// NotFound is a catch-all handler for requests with no matching handler
func (c *Pages) NotFound(w http.ResponseWriter, r *http.Request) {
	accept := r.Header.Get("Accept")

	if strings.Contains(accept, "text/html") {
		c.render(w, "Not Found", http.StatusNotFound)
	} else {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(http.StatusText(http.StatusNotFound)))
	}
}
