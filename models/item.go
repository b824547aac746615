// ABOUTME: This file defines the host-facing timeline item representation
// ABOUTME: Items carry only populated fields; absent data is omitted, never a placeholder

package models

import (
	"time"
)

// Action names exposed on timeline items. The action argument is always the
// stringified entry id.
const (
	ActionMarkAsRead   = "mark_as_read"
	ActionMarkAsUnread = "mark_as_unread"
	ActionStar         = "star"
	ActionUnstar       = "unstar"
)

// Identity is a named, optionally-avatared actor shown as author or source
type Identity struct {
	Name      string `json:"name"`
	URI       string `json:"uri,omitempty"`
	AvatarURL string `json:"avatar,omitempty"`
}

// Item is the normalized timeline representation handed to the host.
// Optional fields are populated conditionally or omitted entirely: the
// host's rendering layer treats a present-but-empty value as literal
// displayable text.
type Item struct {
	URI       string            `json:"uri"`
	Timestamp time.Time         `json:"timestamp"`
	Title     string            `json:"title,omitempty"`
	Body      string            `json:"body,omitempty"`
	Author    *Identity         `json:"author,omitempty"`
	Source    *Identity         `json:"source,omitempty"`
	Category  string            `json:"category,omitempty"`
	Actions   map[string]string `json:"actions,omitempty"`
}

// NewItem creates a timeline item from its unique URI and timestamp
func NewItem(uri string, timestamp time.Time) *Item {
	return &Item{
		URI:       uri,
		Timestamp: timestamp,
	}
}

// NewIdentity creates an identity from a display name
func NewIdentity(name string) *Identity {
	return &Identity{Name: name}
}
