// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"
	"time"
)

// Submission lifecycle states
const (
	StateDraft     = "draft"
	StateSubmitted = "submitted"
	StateApproved  = "approved"
	StateRejected  = "rejected"
)

// Rejection reasons (attribute on a rejected submission, not separate states)
const (
	RejectionFake   = "fake"
	RejectionNsvBsv = "nsv_bsv"
	RejectionOther  = "other"
)

// Dimension units
const (
	MetricInches      = "in"
	MetricCentimeters = "cm"
)

// Categories accepted for consignment
var Categories = []string{
	"Painting",
	"Sculpture",
	"Photography",
	"Print",
	"Drawing, Collage or other Work on Paper",
	"Mixed Media",
	"Performance Art",
	"Installation",
	"Video/Film/Animation",
	"Architecture",
	"Fashion Design and Wearable Art",
	"Jewelry",
	"Design/Decorative Art",
	"Textile Arts",
	"Other",
}

func ValidState(state string) bool {
	switch state {
	case StateDraft, StateSubmitted, StateApproved, StateRejected:
		return true
	}
	return false
}

// TerminalState reports whether a submission has reached the end of its
// lifecycle. Only admins touch approved or rejected submissions.
func TerminalState(state string) bool {
	return state == StateApproved || state == StateRejected
}

func ValidRejectionReason(reason string) bool {
	switch reason {
	case RejectionFake, RejectionNsvBsv, RejectionOther:
		return true
	}
	return false
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ValidationError is a field-scoped input error. The submission is never
// modified when one is returned.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Domain types

type Submission struct {
	ID              int64   `json:"id"`
	ExternalID      string  `json:"external_id"`
	UserID          *string `json:"user_id,omitempty"`
	SessionID       *string `json:"-"` // Never expose in JSON
	State           string  `json:"state"`
	RejectionReason *string `json:"rejection_reason,omitempty"`

	ArtistID                *string `json:"artist_id,omitempty"`
	Category                *string `json:"category,omitempty"`
	Title                   *string `json:"title,omitempty"`
	Medium                  *string `json:"medium,omitempty"`
	Year                    *string `json:"year,omitempty"`
	Height                  *string `json:"height,omitempty"`
	Width                   *string `json:"width,omitempty"`
	Depth                   *string `json:"depth,omitempty"`
	DimensionsMetric        *string `json:"dimensions_metric,omitempty"`
	EditionNumber           *string `json:"edition_number,omitempty"`
	EditionSize             *int64  `json:"edition_size,omitempty"`
	LocationCity            *string `json:"location_city,omitempty"`
	LocationState           *string `json:"location_state,omitempty"`
	LocationCountry         *string `json:"location_country,omitempty"`
	LocationPostalCode      *string `json:"location_postal_code,omitempty"`
	LocationCountryCode     *string `json:"location_country_code,omitempty"`
	Provenance              *string `json:"provenance,omitempty"`
	Signature               *bool   `json:"signature,omitempty"`
	AuthenticityCertificate *bool   `json:"authenticity_certificate,omitempty"`
	PrimaryImageID          *string `json:"primary_image_id,omitempty"`
	MinimumPriceDollars     *int64  `json:"minimum_price_dollars,omitempty"`
	Currency                *string `json:"currency,omitempty"`

	UserEmail *string `json:"user_email,omitempty"`
	UserName  *string `json:"user_name,omitempty"`
	UserPhone *string `json:"user_phone,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PartnerSubmission records that a submission was routed to a partner
// gallery or institution. NotifiedAt is set once the partner was told.
type PartnerSubmission struct {
	ID           int64      `json:"id"`
	SubmissionID int64      `json:"submission_id"`
	PartnerID    string     `json:"partner_id"`
	NotifiedAt   *time.Time `json:"notified_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Request types

type CreateSubmissionRequest struct {
	ArtistID string  `json:"artist_id"`
	State    *string `json:"state,omitempty"`

	Category                *string `json:"category,omitempty"`
	Title                   *string `json:"title,omitempty"`
	Medium                  *string `json:"medium,omitempty"`
	Year                    *string `json:"year,omitempty"`
	Height                  *string `json:"height,omitempty"`
	Width                   *string `json:"width,omitempty"`
	Depth                   *string `json:"depth,omitempty"`
	DimensionsMetric        *string `json:"dimensions_metric,omitempty"`
	EditionNumber           *string `json:"edition_number,omitempty"`
	EditionSize             *int64  `json:"edition_size,omitempty"`
	LocationCity            *string `json:"location_city,omitempty"`
	LocationState           *string `json:"location_state,omitempty"`
	LocationCountry         *string `json:"location_country,omitempty"`
	LocationPostalCode      *string `json:"location_postal_code,omitempty"`
	LocationCountryCode     *string `json:"location_country_code,omitempty"`
	Provenance              *string `json:"provenance,omitempty"`
	Signature               *bool   `json:"signature,omitempty"`
	AuthenticityCertificate *bool   `json:"authenticity_certificate,omitempty"`
	PrimaryImageID          *string `json:"primary_image_id,omitempty"`
	MinimumPriceDollars     *int64  `json:"minimum_price_dollars,omitempty"`
	Currency                *string `json:"currency,omitempty"`

	UserID    *string `json:"user_id,omitempty"` // admin create on behalf of a user
	UserEmail *string `json:"user_email,omitempty"`
	UserName  *string `json:"user_name,omitempty"`
	UserPhone *string `json:"user_phone,omitempty"`

	SessionID string `json:"session_id,omitempty"`
}

// UpdateSubmissionRequest carries a partial field set. Every field uses the
// Opt wrapper so that "clear this field" (explicit null) and "don't touch
// this field" (absent) stay distinguishable after JSON decoding.
type UpdateSubmissionRequest struct {
	State           Opt[string] `json:"state"`
	RejectionReason Opt[string] `json:"rejection_reason"`

	ArtistID                Opt[string] `json:"artist_id"`
	Category                Opt[string] `json:"category"`
	Title                   Opt[string] `json:"title"`
	Medium                  Opt[string] `json:"medium"`
	Year                    Opt[string] `json:"year"`
	Height                  Opt[string] `json:"height"`
	Width                   Opt[string] `json:"width"`
	Depth                   Opt[string] `json:"depth"`
	DimensionsMetric        Opt[string] `json:"dimensions_metric"`
	EditionNumber           Opt[string] `json:"edition_number"`
	EditionSize             Opt[int64]  `json:"edition_size"`
	LocationCity            Opt[string] `json:"location_city"`
	LocationState           Opt[string] `json:"location_state"`
	LocationCountry         Opt[string] `json:"location_country"`
	LocationPostalCode      Opt[string] `json:"location_postal_code"`
	LocationCountryCode     Opt[string] `json:"location_country_code"`
	Provenance              Opt[string] `json:"provenance"`
	Signature               Opt[bool]   `json:"signature"`
	AuthenticityCertificate Opt[bool]   `json:"authenticity_certificate"`
	PrimaryImageID          Opt[string] `json:"primary_image_id"`
	MinimumPriceDollars     Opt[int64]  `json:"minimum_price_dollars"`
	Currency                Opt[string] `json:"currency"`

	UserEmail Opt[string] `json:"user_email"`
	UserName  Opt[string] `json:"user_name"`
	UserPhone Opt[string] `json:"user_phone"`

	SessionID string `json:"session_id,omitempty"` // credential, never a field change
}

// Response types

type CreateSubmissionResponse struct {
	Submission *Submission `json:"submission"`
	// Set when the server minted a session token for an anonymous creator.
	SessionID string `json:"session_id,omitempty"`
}

type SubmissionListItem struct {
	Submission
	Received string `json:"received"` // e.g. "3 days ago"
}

type SubmissionListResponse struct {
	Submissions    []SubmissionListItem `json:"submissions"`
	Total          int                  `json:"total"`
	Page           int                  `json:"page"`
	Size           int                  `json:"size"`
	Counts         map[string]int       `json:"counts"`
	CompletedCount int                  `json:"completed_count"`
}

// PartnerDetails is the directory projection shown on the admin detail view.
type PartnerDetails struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type NotifiedPartnerSubmission struct {
	PartnerID  string          `json:"partner_id"`
	NotifiedAt time.Time       `json:"notified_at"`
	Partner    *PartnerDetails `json:"partner,omitempty"`
}

type AdminSubmissionDetailResponse struct {
	Submission         *Submission                 `json:"submission"`
	PartnerSubmissions []NotifiedPartnerSubmission `json:"partner_submissions"`
	// Set when some partner details could not be fetched from the directory.
	Warning string `json:"warning,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
}
