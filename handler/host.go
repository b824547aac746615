// ABOUTME: Host callback interface through which the connector reports results
// ABOUTME: Injected per invocation, substitutable with a test double

package handler

import (
	"miniflux-connector/models"
)

//go:generate mockgen -source=host.go -destination=../mocks/mock_host.go -package=mocks

// Host receives the connector's results. The timeline application owns the
// lifecycle of everything handed to it.
type Host interface {
	// ReportItems hands the ordered sequence of timeline items to the host
	ReportItems(items []*models.Item)
	// ReportVerified signals a successful verification with the connection's
	// display name
	ReportVerified(displayName string)
	// ReportError surfaces a user-readable failure message
	ReportError(message string)
}
