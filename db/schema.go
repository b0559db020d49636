// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
//
// databaseType selects the DDL dialect: "postgres" (production) or
// "sqlite" (development and tests).
func CreateSchema(db *sql.DB, databaseType string) error {
	schema := postgresSchema
	if databaseType == "sqlite" {
		schema = sqliteSchema
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const postgresSchema = `
-- Submissions
CREATE TABLE IF NOT EXISTS submission (
    id BIGSERIAL PRIMARY KEY,
    external_id TEXT NOT NULL UNIQUE,
    user_id TEXT,
    session_id TEXT,
    state TEXT NOT NULL DEFAULT 'draft' CHECK (state IN ('draft', 'submitted', 'approved', 'rejected')),
    rejection_reason TEXT,
    artist_id TEXT,
    category TEXT,
    title TEXT,
    medium TEXT,
    year TEXT,
    height TEXT,
    width TEXT,
    depth TEXT,
    dimensions_metric TEXT,
    edition_number TEXT,
    edition_size BIGINT,
    location_city TEXT,
    location_state TEXT,
    location_country TEXT,
    location_postal_code TEXT,
    location_country_code TEXT,
    provenance TEXT,
    signature BOOLEAN,
    authenticity_certificate BOOLEAN,
    primary_image_id TEXT,
    minimum_price_dollars BIGINT,
    currency TEXT,
    user_email TEXT,
    user_name TEXT,
    user_phone TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_submission_external_id ON submission(external_id);
CREATE INDEX IF NOT EXISTS idx_submission_state ON submission(state);
CREATE INDEX IF NOT EXISTS idx_submission_user_id ON submission(user_id);

-- Partner routings
CREATE TABLE IF NOT EXISTS partner_submission (
    id BIGSERIAL PRIMARY KEY,
    submission_id BIGINT NOT NULL REFERENCES submission(id) ON DELETE CASCADE,
    partner_id TEXT NOT NULL,
    notified_at TIMESTAMP,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    UNIQUE (submission_id, partner_id)
);

CREATE INDEX IF NOT EXISTS idx_partner_submission_submission ON partner_submission(submission_id);
`

const sqliteSchema = `
-- Submissions
CREATE TABLE IF NOT EXISTS submission (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    external_id TEXT NOT NULL UNIQUE,
    user_id TEXT,
    session_id TEXT,
    state TEXT NOT NULL DEFAULT 'draft' CHECK (state IN ('draft', 'submitted', 'approved', 'rejected')),
    rejection_reason TEXT,
    artist_id TEXT,
    category TEXT,
    title TEXT,
    medium TEXT,
    year TEXT,
    height TEXT,
    width TEXT,
    depth TEXT,
    dimensions_metric TEXT,
    edition_number TEXT,
    edition_size INTEGER,
    location_city TEXT,
    location_state TEXT,
    location_country TEXT,
    location_postal_code TEXT,
    location_country_code TEXT,
    provenance TEXT,
    signature BOOLEAN,
    authenticity_certificate BOOLEAN,
    primary_image_id TEXT,
    minimum_price_dollars INTEGER,
    currency TEXT,
    user_email TEXT,
    user_name TEXT,
    user_phone TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_submission_external_id ON submission(external_id);
CREATE INDEX IF NOT EXISTS idx_submission_state ON submission(state);
CREATE INDEX IF NOT EXISTS idx_submission_user_id ON submission(user_id);

-- Partner routings
CREATE TABLE IF NOT EXISTS partner_submission (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    submission_id INTEGER NOT NULL REFERENCES submission(id) ON DELETE CASCADE,
    partner_id TEXT NOT NULL,
    notified_at TIMESTAMP,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (submission_id, partner_id)
);

CREATE INDEX IF NOT EXISTS idx_partner_submission_submission ON partner_submission(submission_id);
`
