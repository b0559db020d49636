// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/danielhkuo/consignly/directory"
	"github.com/danielhkuo/consignly/models"
	"github.com/danielhkuo/consignly/notify"
	"github.com/danielhkuo/consignly/testutil"
)

func TestAdminListRequiresAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(db, cfg, nil, &recordingDispatcher{})

	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"no credentials", nil},
		{"user token", map[string]string{"Authorization": "Bearer " + testutil.UserToken(t, "user-1")}},
		{"session token", map[string]string{"X-Session-ID": "some-token"}},
		{"garbage token", map[string]string{"Authorization": "Bearer nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/admin/submissions", nil, tt.headers)
			w := httptest.NewRecorder()

			handler.List(w, req)

			testutil.AssertStatus(t, w, http.StatusUnauthorized)
		})
	}
}

func TestAdminList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(db, cfg, nil, &recordingDispatcher{})
	adminHeaders := map[string]string{"Authorization": "Bearer " + testutil.AdminToken(t, "admin-1")}

	userID := "user-1"
	for i := 0; i < 2; i++ {
		testutil.CreateTestSubmission(t, db, models.StateDraft, &userID, nil)
	}
	for i := 0; i < 3; i++ {
		testutil.CreateTestSubmission(t, db, models.StateSubmitted, &userID, nil)
	}
	testutil.CreateTestSubmission(t, db, models.StateApproved, &userID, nil)
	testutil.CreateTestSubmission(t, db, models.StateRejected, &userID, nil)

	t.Run("default hides drafts", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/admin/submissions", nil, adminHeaders)
		w := httptest.NewRecorder()
		handler.List(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.SubmissionListResponse
		testutil.AssertJSON(t, w, &resp)

		if resp.Total != 5 {
			t.Errorf("Expected total 5 non-draft submissions, got %d", resp.Total)
		}
		if len(resp.Submissions) != 5 {
			t.Errorf("Expected 5 listed submissions, got %d", len(resp.Submissions))
		}
		for _, item := range resp.Submissions {
			if item.State == models.StateDraft {
				t.Error("Default listing must not include drafts")
			}
			if item.Received == "" {
				t.Error("Expected a humanized received timestamp")
			}
		}

		if resp.Counts[models.StateDraft] != 2 || resp.Counts[models.StateSubmitted] != 3 {
			t.Errorf("Unexpected counts: %+v", resp.Counts)
		}
		if resp.CompletedCount != 5 {
			t.Errorf("Expected completed count 5, got %d", resp.CompletedCount)
		}
	})

	t.Run("state filter", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/admin/submissions?state=draft", nil, adminHeaders)
		w := httptest.NewRecorder()
		handler.List(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.SubmissionListResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Total != 2 || len(resp.Submissions) != 2 {
			t.Errorf("Expected 2 drafts, got total=%d listed=%d", resp.Total, len(resp.Submissions))
		}
		// Counts always cover every state, whatever the filter
		if resp.Counts[models.StateSubmitted] != 3 {
			t.Errorf("Expected counts to cover all states: %+v", resp.Counts)
		}
	})

	t.Run("invalid state filter", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/admin/submissions?state=pending", nil, adminHeaders)
		w := httptest.NewRecorder()
		handler.List(w, req)
		testutil.AssertStatus(t, w, http.StatusUnprocessableEntity)
	})

	t.Run("pagination", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/admin/submissions?state=submitted&page=2&size=2", nil, adminHeaders)
		w := httptest.NewRecorder()
		handler.List(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.SubmissionListResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Page != 2 || resp.Size != 2 {
			t.Errorf("Expected page=2 size=2, got page=%d size=%d", resp.Page, resp.Size)
		}
		if resp.Total != 3 {
			t.Errorf("Expected total 3, got %d", resp.Total)
		}
		if len(resp.Submissions) != 1 {
			t.Errorf("Expected 1 submission on the last page, got %d", len(resp.Submissions))
		}
	})

	t.Run("nonsense paging falls back to defaults", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/admin/submissions?page=-3&size=disco", nil, adminHeaders)
		w := httptest.NewRecorder()
		handler.List(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.SubmissionListResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Page != 1 || resp.Size != 20 {
			t.Errorf("Expected defaults page=1 size=20, got page=%d size=%d", resp.Page, resp.Size)
		}
	})
}

func TestAdminCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	dispatcher := &recordingDispatcher{}
	handler := NewAdminHandler(db, cfg, nil, dispatcher)
	adminHeaders := map[string]string{"Authorization": "Bearer " + testutil.AdminToken(t, "admin-1")}

	t.Run("requires admin", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/admin/submissions", models.CreateSubmissionRequest{
			ArtistID: "abbas-kiarostami",
		}, map[string]string{"Authorization": "Bearer " + testutil.UserToken(t, "user-1")})
		w := httptest.NewRecorder()
		handler.Create(w, req)
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("lands directly in submitted", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/admin/submissions", models.CreateSubmissionRequest{
			ArtistID:  "abbas-kiarostami",
			UserID:    testutil.Ptr("user-7"),
			UserEmail: testutil.Ptr("collector@example.com"),
		}, adminHeaders)
		w := httptest.NewRecorder()
		handler.Create(w, req)
		testutil.AssertStatus(t, w, http.StatusCreated)

		var resp models.CreateSubmissionResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Submission.State != models.StateSubmitted {
			t.Errorf("Expected state 'submitted', got '%s'", resp.Submission.State)
		}
		if resp.Submission.UserID == nil || *resp.Submission.UserID != "user-7" {
			t.Error("Expected the submission attributed to the named user")
		}

		if len(dispatcher.notifications) != 1 || dispatcher.notifications[0].Template != notify.TemplateSubmissionReceipt {
			t.Errorf("Expected a receipt notification, got %+v", dispatcher.notifications)
		}
	})

	t.Run("missing artist_id", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/admin/submissions", models.CreateSubmissionRequest{}, adminHeaders)
		w := httptest.NewRecorder()
		handler.Create(w, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestAdminGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	adminHeaders := map[string]string{"Authorization": "Bearer " + testutil.AdminToken(t, "admin-1")}

	userID := "user-1"
	id, _ := testutil.CreateTestSubmission(t, db, models.StateApproved, &userID, nil)
	notified := time.Now().Add(-time.Hour)
	testutil.AddTestPartnerSubmission(t, db, id, "p1", &notified)
	testutil.AddTestPartnerSubmission(t, db, id, "p2", &notified)
	testutil.AddTestPartnerSubmission(t, db, id, "p3", nil) // routed but never notified

	adminGet := func(t *testing.T, handler *AdminHandler, identifier string) *httptest.ResponseRecorder {
		t.Helper()
		req := testutil.MakeRequest("GET", "/admin/submissions/"+identifier, nil, adminHeaders)
		req.SetPathValue("id", identifier)
		w := httptest.NewRecorder()
		handler.Get(w, req)
		return w
	}

	t.Run("enriches notified partners from the directory", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"partners": [{"id": "p1", "name": "Gallery One"}, {"id": "p2", "name": "Gallery Two"}]}`))
		}))
		defer server.Close()

		handler := NewAdminHandler(db, cfg, directory.New(server.URL, ""), &recordingDispatcher{})
		w := adminGet(t, handler, strconv.FormatInt(id, 10))
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.AdminSubmissionDetailResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Warning != "" {
			t.Errorf("Expected no warning, got %q", resp.Warning)
		}
		// The never-notified routing is excluded
		if len(resp.PartnerSubmissions) != 2 {
			t.Fatalf("Expected 2 notified partner submissions, got %d", len(resp.PartnerSubmissions))
		}
		for _, ps := range resp.PartnerSubmissions {
			if ps.Partner == nil || ps.Partner.Name == "" {
				t.Errorf("Expected partner details for %s", ps.PartnerID)
			}
		}
	})

	t.Run("directory failure degrades to a warning", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		handler := NewAdminHandler(db, cfg, directory.New(server.URL, ""), &recordingDispatcher{})
		w := adminGet(t, handler, strconv.FormatInt(id, 10))
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.AdminSubmissionDetailResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Warning != "Error fetching some partner details." {
			t.Errorf("Expected a degradation warning, got %q", resp.Warning)
		}
		// Routings still listed, just without details
		if len(resp.PartnerSubmissions) != 2 {
			t.Errorf("Expected 2 partner submissions despite the outage, got %d", len(resp.PartnerSubmissions))
		}
		for _, ps := range resp.PartnerSubmissions {
			if ps.Partner != nil {
				t.Error("Expected no partner details during the outage")
			}
		}
	})

	t.Run("no configured directory", func(t *testing.T) {
		handler := NewAdminHandler(db, cfg, nil, &recordingDispatcher{})
		w := adminGet(t, handler, strconv.FormatInt(id, 10))
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.AdminSubmissionDetailResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Warning != "" {
			t.Errorf("Expected no warning without a directory, got %q", resp.Warning)
		}
	})

	t.Run("unknown submission", func(t *testing.T) {
		handler := NewAdminHandler(db, cfg, nil, &recordingDispatcher{})
		w := adminGet(t, handler, "999999")
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("requires admin", func(t *testing.T) {
		handler := NewAdminHandler(db, cfg, nil, &recordingDispatcher{})
		identifier := strconv.FormatInt(id, 10)
		req := testutil.MakeRequest("GET", "/admin/submissions/"+identifier, nil, nil)
		req.SetPathValue("id", identifier)
		w := httptest.NewRecorder()
		handler.Get(w, req)
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})
}
