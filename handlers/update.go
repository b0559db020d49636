// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/danielhkuo/consignly/auth"
	"github.com/danielhkuo/consignly/models"
	"github.com/danielhkuo/consignly/notify"
)

// ApplyUpdate is the transition/update service: it authorizes the
// requested change, validates it, merges the partial field set onto the
// submission, persists it atomically, and fires the lifecycle notification
// when the state actually changed.
//
// On any error the submission row is untouched. Validation runs completely
// before the first field is merged, so a rejected request never leaves sub
// half-mutated either.
func ApplyUpdate(ctx context.Context, db *sql.DB, dispatcher notify.Dispatcher, p auth.Principal, sub *models.Submission, req *models.UpdateSubmissionRequest) error {
	if err := auth.Authorize(p, sub); err != nil {
		return err
	}

	newState, err := validateState(p, req.State)
	if err != nil {
		return err
	}
	if err := validateFields(p, req); err != nil {
		return err
	}

	oldState := sub.State
	if newState != "" {
		sub.State = newState
	}
	mergeFields(sub, req)
	sub.UpdatedAt = time.Now()

	if err := updateSubmissionRow(db, sub); err != nil {
		return fmt.Errorf("failed to persist submission: %w", err)
	}

	if sub.State != oldState {
		dispatchTransition(ctx, dispatcher, sub)
	}
	return nil
}

// validateState checks a requested state change without applying it.
// Returns the normalized target state, or "" when none was requested.
//
// Non-admin owners only ever hold drafts at this point (the gate already
// blocked everything else), and the single transition open to them is
// draft → submitted. Admins may set any valid state directly.
func validateState(p auth.Principal, state models.Opt[string]) (string, error) {
	if !state.Present {
		return "", nil
	}
	if state.Null {
		return "", &models.ValidationError{Field: "state", Message: "state cannot be null"}
	}
	newState := strings.ToLower(strings.TrimSpace(state.Value))
	if !models.ValidState(newState) {
		return "", &models.ValidationError{Field: "state", Message: "invalid state: " + state.Value}
	}
	if p.Kind != auth.KindAdmin && newState != models.StateDraft && newState != models.StateSubmitted {
		return "", &models.ValidationError{Field: "state", Message: "only draft submissions may be submitted"}
	}
	return newState, nil
}

func validateFields(p auth.Principal, req *models.UpdateSubmissionRequest) error {
	if req.RejectionReason.Present {
		if p.Kind != auth.KindAdmin {
			return &models.ValidationError{Field: "rejection_reason", Message: "reserved for administrators"}
		}
		if !req.RejectionReason.Null && !models.ValidRejectionReason(req.RejectionReason.Value) {
			return &models.ValidationError{Field: "rejection_reason", Message: "invalid rejection reason: " + req.RejectionReason.Value}
		}
	}
	if req.Category.Present && !req.Category.Null && !models.ValidCategory(req.Category.Value) {
		return &models.ValidationError{Field: "category", Message: "invalid category: " + req.Category.Value}
	}
	if req.DimensionsMetric.Present && !req.DimensionsMetric.Null {
		metric := strings.ToLower(req.DimensionsMetric.Value)
		if metric != models.MetricInches && metric != models.MetricCentimeters {
			return &models.ValidationError{Field: "dimensions_metric", Message: "must be in or cm"}
		}
	}
	return nil
}

func mergeFields(sub *models.Submission, req *models.UpdateSubmissionRequest) {
	req.RejectionReason.Apply(&sub.RejectionReason)
	req.ArtistID.Apply(&sub.ArtistID)
	req.Category.Apply(&sub.Category)
	req.Title.Apply(&sub.Title)
	req.Medium.Apply(&sub.Medium)
	req.Year.Apply(&sub.Year)
	req.Height.Apply(&sub.Height)
	req.Width.Apply(&sub.Width)
	req.Depth.Apply(&sub.Depth)

	metric := req.DimensionsMetric
	metric.Value = strings.ToLower(metric.Value)
	metric.Apply(&sub.DimensionsMetric)

	req.EditionNumber.Apply(&sub.EditionNumber)
	req.EditionSize.Apply(&sub.EditionSize)
	req.LocationCity.Apply(&sub.LocationCity)
	req.LocationState.Apply(&sub.LocationState)
	req.LocationCountry.Apply(&sub.LocationCountry)
	req.LocationPostalCode.Apply(&sub.LocationPostalCode)
	req.LocationCountryCode.Apply(&sub.LocationCountryCode)
	req.Provenance.Apply(&sub.Provenance)
	req.Signature.Apply(&sub.Signature)
	req.AuthenticityCertificate.Apply(&sub.AuthenticityCertificate)
	req.PrimaryImageID.Apply(&sub.PrimaryImageID)
	req.MinimumPriceDollars.Apply(&sub.MinimumPriceDollars)
	req.Currency.Apply(&sub.Currency)
	req.UserEmail.Apply(&sub.UserEmail)
	req.UserName.Apply(&sub.UserName)
	req.UserPhone.Apply(&sub.UserPhone)
}

// dispatchTransition fires the lifecycle notification for a submission
// that just changed state. Fire-and-forget: failures are logged, never
// propagated, since the state change is already committed.
func dispatchTransition(ctx context.Context, dispatcher notify.Dispatcher, sub *models.Submission) {
	if dispatcher == nil {
		return
	}
	reason := ""
	if sub.RejectionReason != nil {
		reason = *sub.RejectionReason
	}
	template := notify.TemplateFor(sub.State, reason)
	if template == "" {
		return
	}

	n := notify.Notification{
		Template:     template,
		SubmissionID: sub.ID,
		ExternalID:   sub.ExternalID,
		State:        sub.State,
	}
	if sub.UserID != nil {
		n.UserID = *sub.UserID
	}
	if sub.UserEmail != nil {
		n.UserEmail = *sub.UserEmail
	}
	if sub.ArtistID != nil {
		n.ArtistID = *sub.ArtistID
	}

	if err := dispatcher.Dispatch(ctx, n); err != nil {
		slog.Warn("notification dispatch failed",
			"template", template,
			"submission_id", sub.ID,
			"error", err,
		)
	}
}
