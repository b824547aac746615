// ABOUTME: This file defines domain models for Miniflux entry metadata
// ABOUTME: Represents entry, feed and category data from the entries API

package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Entry status values as returned by the Miniflux API
const (
	EntryStatusUnread = "unread"
	EntryStatusRead   = "read"
)

// Entry represents a single article entry from the Miniflux API
type Entry struct {
	ID          int64     `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Content     string    `json:"content"` // Raw HTML, passed through unmodified
	PublishedAt EntryTime `json:"published_at"`
	Status      string    `json:"status"`
	Starred     bool      `json:"starred"`
	Author      string    `json:"author,omitempty"`
	Feed        *Feed     `json:"feed,omitempty"`
}

// Feed represents the source feed embedded in an entry
type Feed struct {
	ID       int64     `json:"id,omitempty"`
	Title    string    `json:"title"`
	SiteURL  string    `json:"site_url"`
	Category *Category `json:"category,omitempty"`
}

// Category represents a feed category
type Category struct {
	ID    int64  `json:"id,omitempty"`
	Title string `json:"title"`
}

// EntriesResponse represents the Miniflux API response for the entries endpoint
type EntriesResponse struct {
	Total   int     `json:"total"`
	Entries []Entry `json:"entries"`
}

// User represents the authenticated user returned by /v1/me
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// EntryTime decodes a published_at timestamp. Miniflux serves RFC3339
// strings; some deployments behind normalizing proxies serve epoch seconds.
// Both forms are accepted.
type EntryTime struct {
	time.Time
}

// UnmarshalJSON decodes either a quoted RFC3339 string or a bare epoch number
func (t *EntryTime) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == `""` {
		t.Time = time.Time{}
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		parsed, err := time.Parse(time.RFC3339, strings.Trim(raw, `"`))
		if err != nil {
			return fmt.Errorf("invalid published_at timestamp %s: %w", raw, err)
		}
		t.Time = parsed
		return nil
	}

	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid published_at timestamp %s: %w", raw, err)
	}
	t.Time = time.Unix(seconds, 0).UTC()
	return nil
}

// MarshalJSON encodes the timestamp as a quoted RFC3339 string
func (t EntryTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// TimeFromUnix converts an epoch-seconds timestamp to EntryTime
func TimeFromUnix(timestamp int64) EntryTime {
	return EntryTime{Time: time.Unix(timestamp, 0).UTC()}
}
