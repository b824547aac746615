// ABOUTME: Loads a page of unread entries and maps them to timeline items
// ABOUTME: Single request, no retry; server return order is preserved

package service

import (
	"context"
	"fmt"
	"log/slog"

	"miniflux-connector/driver"
	"miniflux-connector/models"
)

// LoadService fetches unread entries for one credential and option set
type LoadService struct {
	api    MinifluxAPI
	creds  *models.Credentials
	opts   *models.Options
	mapper *EntryMapper
	logger *slog.Logger
}

// NewLoadService creates a load service
func NewLoadService(api MinifluxAPI, creds *models.Credentials, opts *models.Options, mapper *EntryMapper, logger *slog.Logger) *LoadService {
	if logger == nil {
		logger = slog.Default()
	}

	return &LoadService{
		api:    api,
		creds:  creds,
		opts:   opts,
		mapper: mapper,
		logger: logger,
	}
}

// Load fetches one page of unread entries and maps each to a timeline item,
// preserving the server's newest-first return order. Unlike verification,
// missing required settings fail loudly here with the field list.
func (s *LoadService) Load(ctx context.Context) ([]*models.Item, error) {
	if missing := s.creds.MissingFields(); len(missing) > 0 {
		return nil, &ConfigIncompleteError{Fields: missing}
	}

	query := driver.NewEntriesQuery(s.opts)

	response, err := s.api.GetEntries(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load unread entries: %w", err)
	}

	items := make([]*models.Item, 0, len(response.Entries))
	for i := range response.Entries {
		items = append(items, s.mapper.MapEntry(&response.Entries[i]))
	}

	s.logger.Info("Loaded unread entries",
		"total_unread", response.Total,
		"mapped_items", len(items),
		"limit", query.Limit)

	return items, nil
}
