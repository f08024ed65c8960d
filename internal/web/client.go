package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"benchdash/internal/cache"
	"benchdash/internal/perf"
)

// Client fetches perf payloads from the console API.
type Client struct {
	base  string
	token string
	http  *http.Client
	cache *cache.PayloadCache
}

// NewClient creates a perf API client for the given base URL.
func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// WithToken attaches a bearer token to subsequent requests.
func (c *Client) WithToken(token string) *Client {
	c.token = token
	return c
}

// WithCache fronts fetches with a payload cache.
func (c *Client) WithCache(pc *cache.PayloadCache) *Client {
	c.cache = pc
	return c
}

// Perf returns the perf payload for (project, kind), consulting the
// cache first when one is configured.
func (c *Client) Perf(ctx context.Context, project, kind string) (*perf.Payload, error) {
	if c.cache != nil {
		if payload, ok := c.cache.Get(ctx, project, kind); ok {
			return payload, nil
		}
	}

	endpoint := fmt.Sprintf("%s/v0/perf?project=%s&kind=%s",
		c.base, url.QueryEscape(project), url.QueryEscape(kind))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch perf payload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("perf fetch failed with status: %s", resp.Status)
	}

	var payload perf.Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode perf payload: %w", err)
	}

	if c.cache != nil {
		c.cache.Put(ctx, project, kind, &payload)
	}
	return &payload, nil
}

// SubmitReport posts one perf report for a project.
func (c *Client) SubmitReport(ctx context.Context, project string, payload perf.Payload) error {
	body, err := json.Marshal(reportRequest{Project: project, Payload: payload})
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/v0/reports", strings.NewReader(string(body)))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to submit report: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("report submission failed with status: %s", resp.Status)
	}
	return nil
}
