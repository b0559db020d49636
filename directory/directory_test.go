// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Access-Token") != "test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/artists":
			if r.URL.Query().Get("term") == "kiaro" {
				w.Write([]byte(`{"artists": [{"id": "abbas-kiarostami", "name": "Abbas Kiarostami"}]}`))
				return
			}
			w.Write([]byte(`{"artists": []}`))
		case "/users":
			w.Write([]byte(`{"users": [{"id": "user-1", "name": "Michael Bluth", "email": "michael@bluth.com"}]}`))
		case "/partners":
			if r.URL.Query().Get("ids") == "" {
				t.Error("Expected ids query parameter")
			}
			w.Write([]byte(`{"partners": [{"id": "p1", "name": "Gallery One"}, {"id": "p2", "name": "Gallery Two"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	return server, New(server.URL, "test-token")
}

func TestArtists(t *testing.T) {
	_, client := newTestServer(t)

	artists, err := client.Artists(context.Background(), "kiaro")
	if err != nil {
		t.Fatalf("Artists() error = %v", err)
	}
	if len(artists) != 1 {
		t.Fatalf("Expected 1 artist, got %d", len(artists))
	}
	if artists[0].ID != "abbas-kiarostami" {
		t.Errorf("Expected artist id 'abbas-kiarostami', got %q", artists[0].ID)
	}

	none, err := client.Artists(context.Background(), "zzz")
	if err != nil {
		t.Fatalf("Artists() error = %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no artists, got %d", len(none))
	}
}

func TestUsers(t *testing.T) {
	_, client := newTestServer(t)

	users, err := client.Users(context.Background(), "michael")
	if err != nil {
		t.Fatalf("Users() error = %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("Expected 1 user, got %d", len(users))
	}
	if users[0].Email != "michael@bluth.com" {
		t.Errorf("Expected user email, got %q", users[0].Email)
	}
}

func TestPartners(t *testing.T) {
	_, client := newTestServer(t)

	partners, err := client.Partners(context.Background(), []string{"p1", "p2"})
	if err != nil {
		t.Fatalf("Partners() error = %v", err)
	}
	if len(partners) != 2 {
		t.Fatalf("Expected 2 partners, got %d", len(partners))
	}
	if partners["p1"].Name != "Gallery One" {
		t.Errorf("Expected 'Gallery One', got %q", partners["p1"].Name)
	}
}

func TestClientRejectedByDirectory(t *testing.T) {
	server, _ := newTestServer(t)

	// Wrong token: the directory answers 401 and the client surfaces it.
	client := New(server.URL, "wrong-token")
	if _, err := client.Artists(context.Background(), "kiaro"); err == nil {
		t.Error("Artists() succeeded with bad token, want error")
	}
}

func TestNewTrimsBaseURL(t *testing.T) {
	client := New("  https://directory.test/ ", "tok")
	if client.BaseURL != "https://directory.test" {
		t.Errorf("New() BaseURL = %q, want trimmed", client.BaseURL)
	}
}
