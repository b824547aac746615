// ABOUTME: Error taxonomy and user-facing message selection
// ABOUTME: Maps transport failures to the messages surfaced on the host's error channel

package service

import (
	"errors"
	"strings"

	"miniflux-connector/driver"
)

// User-facing failure messages, selected by inspecting the failure kind
const (
	msgAuthFailure = "Authentication failed. Please check your API token or username and password."
	msgNotFound    = "No Miniflux API found at this address. Please check the instance URL."
	msgTimeout     = "The connection timed out. Please check that the instance is reachable."
)

// ConfigIncompleteError reports which required settings are still missing.
// Verification treats this silently; loading surfaces it loudly.
type ConfigIncompleteError struct {
	Fields []string
}

// Error implements the error interface
func (e *ConfigIncompleteError) Error() string {
	return "required settings missing: " + strings.Join(e.Fields, ", ")
}

// UserMessage selects the user-facing message for a failed call
func UserMessage(err error) string {
	var incomplete *ConfigIncompleteError
	if errors.As(err, &incomplete) {
		return "Required settings are missing: " + strings.Join(incomplete.Fields, ", ")
	}

	switch {
	case errors.Is(err, driver.ErrAuthFailed):
		return msgAuthFailure
	case errors.Is(err, driver.ErrNotFound):
		return msgNotFound
	case errors.Is(err, driver.ErrTimeout):
		return msgTimeout
	}

	return "Could not connect to Miniflux: " + err.Error()
}
