// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/danielhkuo/consignly/models"
)

// Column list shared by every submission SELECT; scanSubmission must stay
// in sync with it.
const submissionColumns = `id, external_id, user_id, session_id, state, rejection_reason,
	artist_id, category, title, medium, year, height, width, depth, dimensions_metric,
	edition_number, edition_size, location_city, location_state, location_country,
	location_postal_code, location_country_code, provenance, signature,
	authenticity_certificate, primary_image_id, minimum_price_dollars, currency,
	user_email, user_name, user_phone, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (*models.Submission, error) {
	var s models.Submission
	err := row.Scan(
		&s.ID, &s.ExternalID, &s.UserID, &s.SessionID, &s.State, &s.RejectionReason,
		&s.ArtistID, &s.Category, &s.Title, &s.Medium, &s.Year, &s.Height, &s.Width,
		&s.Depth, &s.DimensionsMetric, &s.EditionNumber, &s.EditionSize,
		&s.LocationCity, &s.LocationState, &s.LocationCountry, &s.LocationPostalCode,
		&s.LocationCountryCode, &s.Provenance, &s.Signature, &s.AuthenticityCertificate,
		&s.PrimaryImageID, &s.MinimumPriceDollars, &s.Currency,
		&s.UserEmail, &s.UserName, &s.UserPhone, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// findSubmission looks a submission up by internal numeric id or external
// UUID, whichever the identifier parses as. Returns (nil, nil) when no row
// matches.
func findSubmission(db *sql.DB, identifier string) (*models.Submission, error) {
	var row *sql.Row
	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		row = db.QueryRow(`SELECT `+submissionColumns+` FROM submission WHERE id = $1`, id)
	} else {
		row = db.QueryRow(`SELECT `+submissionColumns+` FROM submission WHERE external_id = $1`, identifier)
	}

	sub, err := scanSubmission(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func insertSubmission(db *sql.DB, s *models.Submission) error {
	return db.QueryRow(`
		INSERT INTO submission (
			external_id, user_id, session_id, state, rejection_reason,
			artist_id, category, title, medium, year, height, width, depth, dimensions_metric,
			edition_number, edition_size, location_city, location_state, location_country,
			location_postal_code, location_country_code, provenance, signature,
			authenticity_certificate, primary_image_id, minimum_price_dollars, currency,
			user_email, user_name, user_phone, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32
		) RETURNING id
	`,
		s.ExternalID, s.UserID, s.SessionID, s.State, s.RejectionReason,
		s.ArtistID, s.Category, s.Title, s.Medium, s.Year, s.Height, s.Width, s.Depth,
		s.DimensionsMetric, s.EditionNumber, s.EditionSize, s.LocationCity, s.LocationState,
		s.LocationCountry, s.LocationPostalCode, s.LocationCountryCode, s.Provenance,
		s.Signature, s.AuthenticityCertificate, s.PrimaryImageID, s.MinimumPriceDollars,
		s.Currency, s.UserEmail, s.UserName, s.UserPhone, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
}

// updateSubmissionRow persists the merged record with a single atomic
// UPDATE. Ownership columns (user_id, session_id) are deliberately absent:
// the owning principal is immutable after creation.
func updateSubmissionRow(db *sql.DB, s *models.Submission) error {
	_, err := db.Exec(`
		UPDATE submission SET
			state = $1, rejection_reason = $2, artist_id = $3, category = $4,
			title = $5, medium = $6, year = $7, height = $8, width = $9, depth = $10,
			dimensions_metric = $11, edition_number = $12, edition_size = $13,
			location_city = $14, location_state = $15, location_country = $16,
			location_postal_code = $17, location_country_code = $18, provenance = $19,
			signature = $20, authenticity_certificate = $21, primary_image_id = $22,
			minimum_price_dollars = $23, currency = $24,
			user_email = $25, user_name = $26, user_phone = $27, updated_at = $28
		WHERE id = $29
	`,
		s.State, s.RejectionReason, s.ArtistID, s.Category,
		s.Title, s.Medium, s.Year, s.Height, s.Width, s.Depth,
		s.DimensionsMetric, s.EditionNumber, s.EditionSize,
		s.LocationCity, s.LocationState, s.LocationCountry,
		s.LocationPostalCode, s.LocationCountryCode, s.Provenance,
		s.Signature, s.AuthenticityCertificate, s.PrimaryImageID,
		s.MinimumPriceDollars, s.Currency,
		s.UserEmail, s.UserName, s.UserPhone, s.UpdatedAt, s.ID,
	)
	return err
}

type notifiedPartner struct {
	PartnerID  string
	NotifiedAt time.Time
}

// notifiedPartnerSubmissions returns the distinct partners a submission has
// been routed to, restricted to routings that were actually notified.
func notifiedPartnerSubmissions(db *sql.DB, submissionID int64) ([]notifiedPartner, error) {
	rows, err := db.Query(`
		SELECT partner_id, notified_at
		FROM partner_submission
		WHERE submission_id = $1 AND notified_at IS NOT NULL
		ORDER BY notified_at
	`, submissionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partners := []notifiedPartner{}
	for rows.Next() {
		var p notifiedPartner
		if err := rows.Scan(&p.PartnerID, &p.NotifiedAt); err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}
	return partners, rows.Err()
}
