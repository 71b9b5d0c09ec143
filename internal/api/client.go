// Package api is the typed HTTP client for the Sakha backend. The backend
// owns all intelligence (crisis detection, wisdom lookup, AI generation);
// this client only moves requests and responses.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HealthStatus mirrors GET /api/health.
type HealthStatus struct {
	Status    string `json:"status"`
	AIEnabled bool   `json:"ai_enabled"`
	Timestamp string `json:"timestamp"`
}

// Healthy reports whether the backend declared itself usable.
func (h *HealthStatus) Healthy() bool {
	return h.Status == "healthy"
}

// ChatRequest mirrors the POST /api/chat body.
type ChatRequest struct {
	Message  string `json:"message"`
	Mode     string `json:"mode"`
	Language string `json:"language"`
}

// ChatResponse mirrors the POST /api/chat response. The backend echoes mode
// and language and adds a mood estimate alongside the reply text.
type ChatResponse struct {
	Response       string `json:"response"`
	Mood           string `json:"mood"`
	CrisisDetected bool   `json:"crisis_detected"`
	Timestamp      string `json:"timestamp"`
	Mode           string `json:"mode"`
	Language       string `json:"language"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend client. Requests carry no timeout; callers
// control cancellation through the context.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Health calls GET /api/health. A transport failure or non-2xx status is an
// error; interpreting the status field is left to the caller.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.getJSON(ctx, "/api/health", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Chat calls POST /api/chat with the message, active mode and language.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("chat request failed: status %d", resp.StatusCode)
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("failed to decode chat response: %w", err)
	}
	return &chatResp, nil
}

// Translations fetches the translation document for a language code from
// GET /static/languages/{code}.json. The document is an arbitrary-depth tree
// with string leaves.
func (c *Client) Translations(ctx context.Context, code string) (map[string]any, error) {
	var table map[string]any
	if err := c.getJSON(ctx, "/static/languages/"+code+".json", &table); err != nil {
		return nil, err
	}
	return table, nil
}

// Resources fetches the mental-health resource catalog from GET /api/resources.
func (c *Client) Resources(ctx context.Context) (map[string]any, error) {
	var resources map[string]any
	if err := c.getJSON(ctx, "/api/resources", &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("request to %s failed: status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}
