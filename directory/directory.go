// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the external directory service that knows about artists,
// users, and partner galleries. All calls are time-bounded and read-only;
// callers treat failures as degraded views, never as fatal errors.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		Token:   token,
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type Partner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Artists searches the directory by term.
func (c *Client) Artists(ctx context.Context, term string) ([]Artist, error) {
	var out struct {
		Artists []Artist `json:"artists"`
	}
	if err := c.get(ctx, "/artists", url.Values{"term": {term}}, &out); err != nil {
		return nil, err
	}
	return out.Artists, nil
}

// Users searches the directory by term.
func (c *Client) Users(ctx context.Context, term string) ([]User, error) {
	var out struct {
		Users []User `json:"users"`
	}
	if err := c.get(ctx, "/users", url.Values{"term": {term}}, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// Partners fetches display details for a batch of partner ids, keyed by id.
// Best-effort: the caller degrades to a warning when this fails.
func (c *Client) Partners(ctx context.Context, ids []string) (map[string]Partner, error) {
	var out struct {
		Partners []Partner `json:"partners"`
	}
	if err := c.get(ctx, "/partners", url.Values{"ids": {strings.Join(ids, ",")}}, &out); err != nil {
		return nil, err
	}
	details := make(map[string]Partner, len(out.Partners))
	for _, p := range out.Partners {
		details[p.ID] = p
	}
	return details, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	if c.Token != "" {
		req.Header.Set("X-Access-Token", c.Token)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("directory returned %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
