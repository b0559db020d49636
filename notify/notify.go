// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/consignly/models"
)

// Lifecycle notification templates
const (
	TemplateSubmissionReceipt  = "submission_receipt"
	TemplateSubmissionApproved = "submission_approved"
	TemplateArtistRejected     = "artist_submission_rejected"
	TemplateFakeRejected       = "fake_submission_rejected"
	TemplateNsvBsvRejected     = "nsv_bsv_submission_rejected"
	TemplateOtherRejected      = "other_submission_rejected"
)

// Notification names a template plus the submission context a downstream
// mailer needs to render it. Template content and delivery live elsewhere.
type Notification struct {
	Template     string `json:"template"`
	SubmissionID int64  `json:"submission_id"`
	ExternalID   string `json:"external_id"`
	State        string `json:"state"`
	UserID       string `json:"user_id,omitempty"`
	UserEmail    string `json:"user_email,omitempty"`
	ArtistID     string `json:"artist_id,omitempty"`
}

// Dispatcher delivers lifecycle notifications. Dispatch is fire-and-forget
// relative to persistence: a failed dispatch never rolls back the state
// change that triggered it.
type Dispatcher interface {
	Dispatch(ctx context.Context, n Notification) error
}

// TemplateFor maps a state transition to its notification template.
// Returns "" for transitions that carry no notification (e.g. an admin
// moving a submission back to draft).
func TemplateFor(state, rejectionReason string) string {
	switch state {
	case models.StateSubmitted:
		return TemplateSubmissionReceipt
	case models.StateApproved:
		return TemplateSubmissionApproved
	case models.StateRejected:
		switch rejectionReason {
		case models.RejectionFake:
			return TemplateFakeRejected
		case models.RejectionNsvBsv:
			return TemplateNsvBsvRejected
		case models.RejectionOther:
			return TemplateOtherRejected
		}
		return TemplateArtistRejected
	}
	return ""
}

// LogDispatcher records notifications in the log. Used when no webhook URL
// is configured, and in development.
type LogDispatcher struct{}

func (LogDispatcher) Dispatch(_ context.Context, n Notification) error {
	slog.Info("notification dispatched",
		"template", n.Template,
		"submission_id", n.SubmissionID,
		"state", n.State,
	)
	return nil
}

// WebhookDispatcher posts notifications to the mailer service as JSON.
type WebhookDispatcher struct {
	URL  string
	HTTP *http.Client
}

func NewWebhookDispatcher(url string) *WebhookDispatcher {
	return &WebhookDispatcher{
		URL:  url,
		HTTP: &http.Client{Timeout: 10 * time.Second},
	}
}

func (d *WebhookDispatcher) Dispatch(ctx context.Context, n Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := d.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("notify webhook returned %d", resp.StatusCode)
	}
	return nil
}
