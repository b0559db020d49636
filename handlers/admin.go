// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/danielhkuo/consignly/auth"
	"github.com/danielhkuo/consignly/cliparse"
	"github.com/danielhkuo/consignly/directory"
	"github.com/danielhkuo/consignly/middleware"
	"github.com/danielhkuo/consignly/models"
	"github.com/danielhkuo/consignly/notify"
)

type AdminHandler struct {
	db         *sql.DB
	cfg        cliparse.Config
	directory  *directory.Client
	dispatcher notify.Dispatcher
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config, dir *directory.Client, dispatcher notify.Dispatcher) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg, directory: dir, dispatcher: dispatcher}
}

// requireAdmin resolves the request principal and rejects non-admins.
func requireAdmin(w http.ResponseWriter, r *http.Request, cfg cliparse.Config) (auth.Principal, bool) {
	p := auth.ResolvePrincipal(cfg.JWTSecret, middleware.BearerToken(r), "")
	if p.Kind != auth.KindAdmin {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "admin access required")
		return p, false
	}
	return p, true
}

// List handles GET /admin/submissions
// Filterable by state; defaults to completed (non-draft) submissions, the
// reviewer's working set. Always carries per-state counts.
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r, h.cfg); !ok {
		return
	}

	stateFilter := r.URL.Query().Get("state")
	if stateFilter != "" && !models.ValidState(stateFilter) {
		middleware.FieldErrorResponse(w, http.StatusUnprocessableEntity, "state", "invalid state: "+stateFilter)
		return
	}

	page := queryInt(r, "page", 1)
	size := queryInt(r, "size", 20)
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}

	counts, err := h.stateCounts()
	if err != nil {
		slog.Error("failed to count submissions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	total := 0
	for state, n := range counts {
		if state != models.StateDraft {
			total += n
		}
	}
	completed := total
	if stateFilter != "" {
		total = counts[stateFilter]
	}

	where := `state != 'draft'`
	args := []any{size, (page - 1) * size}
	if stateFilter != "" {
		where = `state = $1`
		args = []any{stateFilter, size, (page - 1) * size}
	}
	query := `SELECT ` + submissionColumns + ` FROM submission WHERE ` + where +
		` ORDER BY id DESC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := h.db.Query(query, args...)
	if err != nil {
		slog.Error("failed to query submissions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	items := []models.SubmissionListItem{}
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			slog.Error("failed to scan submission", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		items = append(items, models.SubmissionListItem{
			Submission: *sub,
			Received:   humanize.Time(sub.CreatedAt),
		})
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate submissions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SubmissionListResponse{
		Submissions:    items,
		Total:          total,
		Page:           page,
		Size:           size,
		Counts:         counts,
		CompletedCount: completed,
	})
}

// Create handles POST /admin/submissions
// Admin-entered submissions skip draft and land directly in submitted.
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	_, ok := requireAdmin(w, r, h.cfg)
	if !ok {
		return
	}

	var req models.CreateSubmissionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ArtistID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "artist_id is required")
		return
	}
	if req.Category != nil && !models.ValidCategory(*req.Category) {
		middleware.FieldErrorResponse(w, http.StatusUnprocessableEntity, "category", "invalid category: "+*req.Category)
		return
	}

	sub := submissionFromCreate(&req)
	sub.ExternalID = uuid.New().String()
	sub.State = models.StateSubmitted
	sub.UserID = req.UserID
	now := time.Now()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	if err := insertSubmission(h.db, sub); err != nil {
		slog.Error("failed to insert submission", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create submission")
		return
	}

	slog.Info("submission created by admin", "submission_id", sub.ID, "external_id", sub.ExternalID)

	dispatchTransition(r.Context(), h.dispatcher, sub)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSubmissionResponse{Submission: sub})
}

// Get handles GET /admin/submissions/{id}
// The detail view enriches notified partner routings with display details
// from the external directory. Directory failure degrades to a warning.
func (h *AdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r, h.cfg); !ok {
		return
	}

	identifier := r.PathValue("id")
	sub, err := findSubmission(h.db, identifier)
	if err != nil {
		slog.Error("failed to query submission", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if sub == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Submission Not Found")
		return
	}

	partners, err := notifiedPartnerSubmissions(h.db, sub.ID)
	if err != nil {
		slog.Error("failed to query partner submissions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp := models.AdminSubmissionDetailResponse{
		Submission:         sub,
		PartnerSubmissions: make([]models.NotifiedPartnerSubmission, 0, len(partners)),
	}

	var details map[string]directory.Partner
	if len(partners) > 0 && h.directory != nil {
		ids := make([]string, 0, len(partners))
		for _, p := range partners {
			ids = append(ids, p.PartnerID)
		}
		details, err = h.directory.Partners(r.Context(), ids)
		if err != nil {
			slog.Warn("partner details lookup failed", "submission_id", sub.ID, "error", err)
			resp.Warning = "Error fetching some partner details."
		}
	}

	for _, p := range partners {
		view := models.NotifiedPartnerSubmission{
			PartnerID:  p.PartnerID,
			NotifiedAt: p.NotifiedAt,
		}
		if d, ok := details[p.PartnerID]; ok {
			view.Partner = &models.PartnerDetails{ID: d.ID, Name: d.Name, Email: d.Email}
		}
		resp.PartnerSubmissions = append(resp.PartnerSubmissions, view)
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

func (h *AdminHandler) stateCounts() (map[string]int, error) {
	rows, err := h.db.Query(`SELECT state, COUNT(*) FROM submission GROUP BY state`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var state string
		var n int
		if err := rows.Scan(&state, &n); err != nil {
			return nil, err
		}
		counts[state] = n
	}
	return counts, rows.Err()
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
