// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/consignly/cliparse"
	"github.com/danielhkuo/consignly/directory"
	"github.com/danielhkuo/consignly/handlers"
	"github.com/danielhkuo/consignly/middleware"
	"github.com/danielhkuo/consignly/notify"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	var dir *directory.Client
	if cfg.DirectoryURL != "" {
		dir = directory.New(cfg.DirectoryURL, cfg.DirectoryToken)
	}

	var dispatcher notify.Dispatcher = notify.LogDispatcher{}
	if cfg.NotifyURL != "" {
		dispatcher = notify.NewWebhookDispatcher(cfg.NotifyURL)
	}

	// Initialize handlers
	subHandler := handlers.NewSubmissionHandler(db, cfg, dispatcher)
	adminHandler := handlers.NewAdminHandler(db, cfg, dir, dispatcher)
	searchHandler := handlers.NewSearchHandler(cfg, dir)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public submission workflow
	mux.HandleFunc("POST /submissions", middleware.WithLogging(subHandler.Create))
	mux.HandleFunc("GET /submissions/{id}", middleware.WithLogging(subHandler.Get))
	mux.HandleFunc("PUT /submissions/{id}", middleware.WithLogging(subHandler.Update))

	// Admin review surface
	mux.HandleFunc("GET /admin/submissions", middleware.WithLogging(adminHandler.List))
	mux.HandleFunc("POST /admin/submissions", middleware.WithLogging(adminHandler.Create))
	mux.HandleFunc("GET /admin/submissions/{id}", middleware.WithLogging(adminHandler.Get))

	// Directory lookups for the review UI
	mux.HandleFunc("GET /admin/artists", middleware.WithLogging(searchHandler.MatchArtists))
	mux.HandleFunc("GET /admin/users", middleware.WithLogging(searchHandler.MatchUsers))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("consignly API v1"))
	})

	return mux
}
