// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/consignly/cliparse"
	"github.com/danielhkuo/consignly/directory"
	"github.com/danielhkuo/consignly/middleware"
)

// SearchHandler proxies admin match-by-term lookups to the external
// directory, for artist and user pickers in the review UI.
type SearchHandler struct {
	cfg       cliparse.Config
	directory *directory.Client
}

func NewSearchHandler(cfg cliparse.Config, dir *directory.Client) *SearchHandler {
	return &SearchHandler{cfg: cfg, directory: dir}
}

// MatchArtists handles GET /admin/artists?term=
func (h *SearchHandler) MatchArtists(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r, h.cfg); !ok {
		return
	}

	term := r.URL.Query().Get("term")
	if term == "" {
		middleware.JSONResponse(w, http.StatusOK, []directory.Artist{})
		return
	}
	if h.directory == nil {
		middleware.ErrorResponse(w, http.StatusBadGateway, "directory unavailable")
		return
	}

	artists, err := h.directory.Artists(r.Context(), term)
	if err != nil {
		slog.Warn("artist search failed", "term", term, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "directory unavailable")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, artists)
}

// MatchUsers handles GET /admin/users?term=
func (h *SearchHandler) MatchUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r, h.cfg); !ok {
		return
	}

	term := r.URL.Query().Get("term")
	if term == "" {
		middleware.JSONResponse(w, http.StatusOK, []directory.User{})
		return
	}
	if h.directory == nil {
		middleware.ErrorResponse(w, http.StatusBadGateway, "directory unavailable")
		return
	}

	users, err := h.directory.Users(r.Context(), term)
	if err != nil {
		slog.Warn("user search failed", "term", term, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "directory unavailable")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, users)
}
