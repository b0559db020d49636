// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/consignly/auth"
	"github.com/danielhkuo/consignly/cliparse"
	"github.com/danielhkuo/consignly/db"
)

// TestJWTSecret is the shared signing secret used across the test suite
const TestJWTSecret = "test-jwt-secret"

// SetupTestDB creates a fresh sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "consignly_test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3418,
		DatabaseURL:  "file:test.db",
		DatabaseType: "sqlite",
		JWTSecret:    TestJWTSecret,
	}
}

// UserToken mints a signed token with the "user" role
func UserToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := auth.GenerateToken(TestJWTSecret, userID, "user")
	if err != nil {
		t.Fatalf("Failed to generate user token: %v", err)
	}
	return token
}

// AdminToken mints a signed token with the "admin" role
func AdminToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := auth.GenerateToken(TestJWTSecret, userID, "admin")
	if err != nil {
		t.Fatalf("Failed to generate admin token: %v", err)
	}
	return token
}

// CreateTestSubmission inserts a submission owned by userID and/or
// sessionID (pass nil for whichever does not apply) and returns its
// internal id and external UUID. Descriptive fields default to the
// canonical fixture: abbas-kiarostami / Painting / "rain".
func CreateTestSubmission(t *testing.T, conn *sql.DB, state string, userID, sessionID *string) (int64, string) {
	t.Helper()

	externalID := uuid.New().String()
	now := time.Now()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO submission (external_id, user_id, session_id, state, artist_id, category, title, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'abbas-kiarostami', 'Painting', 'rain', $5, $6)
		RETURNING id
	`, externalID, userID, sessionID, state, now, now).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test submission: %v", err)
	}

	return id, externalID
}

// AddTestPartnerSubmission routes a submission to a partner, optionally
// marking it notified
func AddTestPartnerSubmission(t *testing.T, conn *sql.DB, submissionID int64, partnerID string, notifiedAt *time.Time) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO partner_submission (submission_id, partner_id, notified_at, created_at)
		VALUES ($1, $2, $3, $4)
	`, submissionID, partnerID, notifiedAt, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test partner submission: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// Ptr returns a pointer to v; handy for optional fixture fields
func Ptr[T any](v T) *T {
	return &v
}
