// Package github fetches the emoji alias table from the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.github.com"
	apiVersion     = "2022-11-28"
)

// Client is a minimal GitHub API client covering the single endpoint this
// tool needs. The token is mandatory: anonymous rate limits are too low for
// scheduled runs.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	Token   string
}

func NewClient(token string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		BaseURL: defaultBaseURL,
		Token:   token,
	}
}

// Emojis fetches GET /emojis: a flat mapping of alias name to image URL.
func (c *Client) Emojis(ctx context.Context) (map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/emojis", nil)
	if err != nil {
		return nil, fmt.Errorf("github: build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github: fetch /emojis: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("github: /emojis returned %s: %s", resp.Status, body)
	}

	emojis := map[string]string{}
	if err := json.NewDecoder(resp.Body).Decode(&emojis); err != nil {
		return nil, fmt.Errorf("github: decode /emojis response: %w", err)
	}
	if len(emojis) == 0 {
		return nil, fmt.Errorf("github: /emojis returned an empty table")
	}
	return emojis, nil
}
