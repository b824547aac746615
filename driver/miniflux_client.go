// ABOUTME: Low-level HTTP client for the Miniflux REST API
// ABOUTME: Handles authentication headers, requests, and typed error responses

package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"miniflux-connector/models"
)

// Miniflux specific error types for better error handling
var (
	ErrAuthFailed = errors.New("miniflux authentication failed")
	ErrNotFound   = errors.New("miniflux resource not found")
	ErrTimeout    = errors.New("miniflux request timed out")
)

// APIError carries the HTTP status of a failed Miniflux call
type APIError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("miniflux request to %s failed with status %d", e.Endpoint, e.StatusCode)
}

// Unwrap maps well-known HTTP statuses to sentinel errors so callers can
// use errors.Is without inspecting status codes directly
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrAuthFailed
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

// MinifluxClient handles low-level HTTP communication with a Miniflux instance
type MinifluxClient struct {
	baseURL    string
	auth       HeaderAuthenticator
	httpClient *http.Client
	logger     *slog.Logger
}

// NewMinifluxClient creates a client bound to one instance and credential set.
// The client sets no timeout of its own; the caller's context and the host's
// HTTP defaults govern.
func NewMinifluxClient(creds *models.Credentials, logger *slog.Logger) *MinifluxClient {
	if logger == nil {
		logger = slog.Default()
	}

	return &MinifluxClient{
		baseURL:    strings.TrimRight(strings.TrimSpace(creds.BaseURL), "/"),
		auth:       NewAuthenticator(creds),
		logger:     logger,
		httpClient: &http.Client{},
	}
}

// SetHTTPClient allows injecting a custom HTTP client (useful for testing
// and for runners that want an explicit timeout)
func (c *MinifluxClient) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// SetTimeout sets the HTTP client timeout
func (c *MinifluxClient) SetTimeout(timeout time.Duration) {
	c.httpClient.Timeout = timeout
}

// BaseURL returns the normalized instance URL the client talks to
func (c *MinifluxClient) BaseURL() string {
	return c.baseURL
}

// GetMe probes authentication by fetching the account user
func (c *MinifluxClient) GetMe(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL+"/v1/me", nil, &user); err != nil {
		return nil, err
	}

	c.logger.Debug("Fetched miniflux account user",
		"user_id", user.ID,
		"has_username", user.Username != "")

	return &user, nil
}

// GetEntries fetches a page of unread entries matching the query,
// newest-first as requested by the query ordering
func (c *MinifluxClient) GetEntries(ctx context.Context, query EntriesQuery) (*models.EntriesResponse, error) {
	reqURL := BuildEntriesURL(c.baseURL, query, time.Now())

	var response models.EntriesResponse
	if err := c.doJSON(ctx, http.MethodGet, reqURL, nil, &response); err != nil {
		return nil, err
	}

	c.logger.Debug("Fetched unread entries",
		"total", response.Total,
		"returned", len(response.Entries),
		"limit", query.Limit)

	return &response, nil
}

// UpdateEntriesStatus sets the read state of a single entry
func (c *MinifluxClient) UpdateEntriesStatus(ctx context.Context, entryID int64, status string) error {
	body := models.UpdateEntriesRequest{
		EntryIDs: []int64{entryID},
		Status:   status,
	}
	return c.doJSON(ctx, http.MethodPut, c.baseURL+"/v1/entries", &body, nil)
}

// ToggleBookmark flips the starred state of a single entry. The endpoint
// takes no request body.
func (c *MinifluxClient) ToggleBookmark(ctx context.Context, entryID int64) error {
	endpoint := fmt.Sprintf("%s/v1/entries/%d/bookmark", c.baseURL, entryID)
	return c.doJSON(ctx, http.MethodPut, endpoint, nil, nil)
}

// doJSON executes one request with auth headers and decodes the JSON
// response into out when out is non-nil
func (c *MinifluxClient) doJSON(ctx context.Context, method, reqURL string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode miniflux request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("failed to create miniflux request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "miniflux-connector/1.0")
	c.auth.Apply(req.Header)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeoutError(err) {
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return fmt.Errorf("failed to execute miniflux request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Endpoint:   method + " " + reqURL,
			Body:       string(data),
		}

		c.logger.Error("Miniflux request failed",
			"method", method,
			"status_code", resp.StatusCode,
			"content_type", resp.Header.Get("Content-Type"))

		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode miniflux response: %w", err)
		}
	}

	return nil
}

// isTimeoutError determines whether a transport error is a timeout
func isTimeoutError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return strings.Contains(err.Error(), "timeout")
}
