// ABOUTME: Dispatches entry state changes (read/unread, star/unstar) to Miniflux
// ABOUTME: Failures are swallowed deliberately so a tap never disrupts the user

package service

import (
	"context"
	"log/slog"
	"strconv"

	"miniflux-connector/models"
)

// DispatchRequest describes one user-tapped action
type DispatchRequest struct {
	// Action is the tapped action name
	Action string
	// EntryID is the opaque action argument, a stringified entry id
	EntryID string
	// Actions is the item's current action set; when non-nil it is flipped
	// in place after a successful state change
	Actions map[string]string
}

// ActionService performs remote state changes in response to item actions
type ActionService struct {
	api    MinifluxAPI
	mapper *EntryMapper
	logger *slog.Logger
}

// NewActionService creates an action dispatch service
func NewActionService(api MinifluxAPI, mapper *EntryMapper, logger *slog.Logger) *ActionService {
	if logger == nil {
		logger = slog.Default()
	}

	return &ActionService{
		api:    api,
		mapper: mapper,
		logger: logger,
	}
}

// Dispatch performs the remote state change for one action. On success the
// item's in-memory action set is flipped, leaving the untouched pair intact.
// On failure the dispatch still completes normally: this is a best-effort
// policy, not an oversight — a failed state change must never surface an
// error to the host.
func (s *ActionService) Dispatch(ctx context.Context, req DispatchRequest) {
	entryID, err := strconv.ParseInt(req.EntryID, 10, 64)
	if err != nil {
		s.logger.Warn("Ignoring action with malformed entry id",
			"action", req.Action,
			"entry_id", req.EntryID)
		return
	}

	switch req.Action {
	case models.ActionMarkAsRead:
		err = s.api.UpdateEntriesStatus(ctx, entryID, models.EntryStatusRead)
	case models.ActionMarkAsUnread:
		err = s.api.UpdateEntriesStatus(ctx, entryID, models.EntryStatusUnread)
	case models.ActionStar, models.ActionUnstar:
		err = s.api.ToggleBookmark(ctx, entryID)
	default:
		s.logger.Warn("Ignoring unknown action", "action", req.Action)
		return
	}

	if err != nil {
		s.logger.Warn("Entry state change failed, completing anyway",
			"action", req.Action,
			"entry_id", entryID,
			"error", err)
		return
	}

	if req.Actions != nil {
		s.mapper.ApplyAction(req.Actions, req.Action)
	}

	s.logger.Debug("Entry state change applied",
		"action", req.Action,
		"entry_id", entryID)
}
