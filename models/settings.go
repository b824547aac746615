// ABOUTME: This file defines host-supplied connection settings and filter options
// ABOUTME: Replaces the host's ambient configuration variables with explicit structs

package models

import (
	"strings"
)

// AuthScheme selects how outbound Miniflux calls are authenticated.
// The scheme is fixed per deployment, never mixed.
type AuthScheme string

const (
	AuthSchemeToken AuthScheme = "token"
	AuthSchemeBasic AuthScheme = "basic"
)

// ActionMode selects which action set mapped items expose
type ActionMode string

const (
	// ActionModeFull exposes the four-way read/unread and star/unstar set
	ActionModeFull ActionMode = "full"
	// ActionModeClassic exposes a single mark_as_read action on unread
	// entries only, matching the earliest connector behavior
	ActionModeClassic ActionMode = "classic"
)

// Valid reports whether the mode is a known action mode
func (m ActionMode) Valid() bool {
	return m == ActionModeFull || m == ActionModeClassic
}

// DefaultLimit is the canonical result-count cap for entry queries
const DefaultLimit = 50

// Credentials holds the Miniflux instance URL and authentication material
// entered by the user in the host's settings screen
type Credentials struct {
	BaseURL  string `yaml:"base_url"`
	APIToken string `yaml:"api_token"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Scheme returns the authentication scheme implied by the credential set.
// A token always wins; the schemes are mutually exclusive per deployment.
func (c *Credentials) Scheme() AuthScheme {
	if c.APIToken != "" {
		return AuthSchemeToken
	}
	return AuthSchemeBasic
}

// MissingFields returns the names of required fields that are still empty.
// An empty result means the credential set is complete.
func (c *Credentials) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(c.BaseURL) == "" {
		missing = append(missing, "base_url")
	}
	if c.APIToken == "" {
		if c.Username == "" {
			missing = append(missing, "api_token or username")
		}
		if c.Username != "" && c.Password == "" {
			missing = append(missing, "password")
		}
	}
	return missing
}

// Options holds the user-configurable filter options for entry loading
type Options struct {
	// Limit caps the number of returned entries; zero means DefaultLimit
	Limit int `yaml:"limit"`
	// RecentDays restricts results to entries published within the last N
	// days; zero means no recency cutoff
	RecentDays int `yaml:"recent_days"`
	// CategoryIDs is a single id or comma-separated id list; "0", blank or
	// whitespace means no category filter
	CategoryIDs string `yaml:"category_ids"`
	// ActionMode selects the exposed action set; empty means full
	ActionMode ActionMode `yaml:"action_mode"`
}

// EffectiveLimit returns the configured limit or the canonical default
func (o *Options) EffectiveLimit() int {
	if o.Limit > 0 {
		return o.Limit
	}
	return DefaultLimit
}

// EffectiveActionMode returns the configured action mode or the default
func (o *Options) EffectiveActionMode() ActionMode {
	if o.ActionMode.Valid() {
		return o.ActionMode
	}
	return ActionModeFull
}

// CategoryFilter splits the category setting into individual ids, applying
// the "0"/blank means no-filter rule
func (o *Options) CategoryFilter() []string {
	raw := strings.TrimSpace(o.CategoryIDs)
	if raw == "" || raw == "0" {
		return nil
	}

	var ids []string
	for _, part := range strings.Split(raw, ",") {
		id := strings.TrimSpace(part)
		if id == "" || id == "0" {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
