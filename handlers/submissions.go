// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/consignly/auth"
	"github.com/danielhkuo/consignly/cliparse"
	"github.com/danielhkuo/consignly/middleware"
	"github.com/danielhkuo/consignly/models"
	"github.com/danielhkuo/consignly/notify"
)

type SubmissionHandler struct {
	db         *sql.DB
	cfg        cliparse.Config
	dispatcher notify.Dispatcher
}

func NewSubmissionHandler(db *sql.DB, cfg cliparse.Config, dispatcher notify.Dispatcher) *SubmissionHandler {
	return &SubmissionHandler{db: db, cfg: cfg, dispatcher: dispatcher}
}

// resolvePrincipal derives the acting principal for a request. A session
// token supplied in the body wins over the X-Session-ID header.
func resolvePrincipal(r *http.Request, cfg cliparse.Config, bodySessionID string) auth.Principal {
	session := r.Header.Get("X-Session-ID")
	if bodySessionID != "" {
		session = bodySessionID
	}
	return auth.ResolvePrincipal(cfg.JWTSecret, middleware.BearerToken(r), session)
}

// Create handles POST /submissions
func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSubmissionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ArtistID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "artist_id is required")
		return
	}

	p := resolvePrincipal(r, h.cfg, req.SessionID)

	state := models.StateDraft
	if req.State != nil {
		state = strings.ToLower(strings.TrimSpace(*req.State))
		if !models.ValidState(state) {
			middleware.FieldErrorResponse(w, http.StatusUnprocessableEntity, "state", "invalid state: "+*req.State)
			return
		}
		if p.Kind != auth.KindAdmin && state != models.StateDraft && state != models.StateSubmitted {
			middleware.FieldErrorResponse(w, http.StatusUnprocessableEntity, "state", "submissions start as draft or submitted")
			return
		}
	}
	if req.Category != nil && !models.ValidCategory(*req.Category) {
		middleware.FieldErrorResponse(w, http.StatusUnprocessableEntity, "category", "invalid category: "+*req.Category)
		return
	}

	sub := submissionFromCreate(&req)
	sub.ExternalID = uuid.New().String()
	sub.State = state
	now := time.Now()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	// Ownership is fixed here and never changes: an authenticated creator
	// owns by user id, an anonymous one by session token. When an anonymous
	// creator supplies no token we mint one and hand it back so they can
	// keep editing their draft.
	mintedSession := ""
	switch p.Kind {
	case auth.KindUser:
		sub.UserID = &p.UserID
	case auth.KindAdmin:
		if req.UserID != nil {
			sub.UserID = req.UserID
		} else {
			sub.UserID = &p.UserID
		}
	case auth.KindAnonymous:
		token := p.SessionToken
		if token == "" {
			var err error
			token, err = auth.GenerateSessionToken()
			if err != nil {
				slog.Error("failed to generate session token", "error", err)
				middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create submission")
				return
			}
			mintedSession = token
		}
		sub.SessionID = &token
	}

	if err := insertSubmission(h.db, sub); err != nil {
		slog.Error("failed to insert submission", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create submission")
		return
	}

	slog.Info("submission created",
		"submission_id", sub.ID,
		"external_id", sub.ExternalID,
		"state", sub.State,
	)

	// Submissions created directly in submitted state still owe the
	// submitter a receipt.
	if sub.State == models.StateSubmitted {
		dispatchTransition(r.Context(), h.dispatcher, sub)
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSubmissionResponse{
		Submission: sub,
		SessionID:  mintedSession,
	})
}

// Get handles GET /submissions/{id}
// The identifier may be the internal numeric id or the external UUID.
func (h *SubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	identifier := r.PathValue("id")
	if identifier == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	p := resolvePrincipal(r, h.cfg, "")

	sub, err := findSubmission(h.db, identifier)
	if err != nil {
		slog.Error("failed to query submission", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	// Absent and forbidden are deliberately the same answer.
	if sub == nil || !auth.CanView(p, sub) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Submission Not Found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, sub)
}

// Update handles PUT /submissions/{id}
func (h *SubmissionHandler) Update(w http.ResponseWriter, r *http.Request) {
	identifier := r.PathValue("id")
	if identifier == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var req models.UpdateSubmissionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	p := resolvePrincipal(r, h.cfg, req.SessionID)

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

	if err := ApplyUpdate(r.Context(), h.db, h.dispatcher, p, sub, &req); err != nil {
		var vErr *models.ValidationError
		switch {
		case errors.Is(err, auth.ErrSubmissionNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, "Submission Not Found")
		case errors.As(err, &vErr):
			middleware.FieldErrorResponse(w, http.StatusUnprocessableEntity, vErr.Field, vErr.Message)
		default:
			slog.Error("failed to update submission", "submission_id", sub.ID, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update submission")
		}
		return
	}

	slog.Info("submission updated", "submission_id", sub.ID, "state", sub.State)

	middleware.JSONResponse(w, http.StatusOK, sub)
}

func submissionFromCreate(req *models.CreateSubmissionRequest) *models.Submission {
	artistID := req.ArtistID
	return &models.Submission{
		ArtistID:                &artistID,
		Category:                req.Category,
		Title:                   req.Title,
		Medium:                  req.Medium,
		Year:                    req.Year,
		Height:                  req.Height,
		Width:                   req.Width,
		Depth:                   req.Depth,
		DimensionsMetric:        lowered(req.DimensionsMetric),
		EditionNumber:           req.EditionNumber,
		EditionSize:             req.EditionSize,
		LocationCity:            req.LocationCity,
		LocationState:           req.LocationState,
		LocationCountry:         req.LocationCountry,
		LocationPostalCode:      req.LocationPostalCode,
		LocationCountryCode:     req.LocationCountryCode,
		Provenance:              req.Provenance,
		Signature:               req.Signature,
		AuthenticityCertificate: req.AuthenticityCertificate,
		PrimaryImageID:          req.PrimaryImageID,
		MinimumPriceDollars:     req.MinimumPriceDollars,
		Currency:                req.Currency,
		UserEmail:               req.UserEmail,
		UserName:                req.UserName,
		UserPhone:               req.UserPhone,
	}
}

func lowered(s *string) *string {
	if s == nil {
		return nil
	}
	l := strings.ToLower(*s)
	return &l
}
