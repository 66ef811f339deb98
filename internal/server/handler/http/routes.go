// Package http provides HTTP routing and middleware configuration
// for the plot pages.
package http

import (
	"net/http"

	"github.com/atinyakov/PlotKeeper/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Credentials is the static admin username/password pair.
type Credentials struct {
	Username string
	Password string
}

// NewRouter constructs and returns an HTTP handler that serves the plot pages.
//
// Routes:
//
//	GET  /ping             → healthHandler.Ping (no auth)
//	GET  /                 → redirect to /plots
//	GET  /plots            → plotHandler.List
//	GET  /plots/new        → plotHandler.New
//	GET  /plots/{id}/edit  → plotHandler.Edit
//	POST /plots/save       → plotHandler.Save
//
// Middleware chain (applied in order):
//  1. Recoverer              — turns panics into 500 responses
//  2. StripSlashes           — /plots/ is served as /plots
//  3. WithRequestLogging     — logs incoming requests
//  4. AdminAuth (plot pages) — static Basic auth
func NewRouter(
	plotHandler *PlotHandler,
	healthHandler *HealthHandler,
	creds Credentials,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.StripSlashes)
	r.Use(middleware.WithRequestLogging(logger))

	r.Get("/ping", healthHandler.Ping)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminAuth("plots", creds.Username, creds.Password))

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/plots", http.StatusFound)
		})

		r.Route("/plots", func(r chi.Router) {
			r.Get("/", plotHandler.List)
			r.Get("/new", plotHandler.New)
			r.Get("/{id}/edit", plotHandler.Edit)
			r.Post("/save", plotHandler.Save)
		})
	})

	return r
}
