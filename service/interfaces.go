// ABOUTME: Service layer interfaces for dependency injection and mocking

package service

import (
	"context"

	"miniflux-connector/driver"
	"miniflux-connector/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_miniflux_api.go -package=mocks

// MinifluxAPI abstracts the Miniflux HTTP driver so services can be tested
// against mocks
type MinifluxAPI interface {
	GetMe(ctx context.Context) (*models.User, error)
	GetEntries(ctx context.Context, query driver.EntriesQuery) (*models.EntriesResponse, error)
	UpdateEntriesStatus(ctx context.Context, entryID int64, status string) error
	ToggleBookmark(ctx context.Context, entryID int64) error
}
