// ABOUTME: The three host-driven entry points: verification, loading, action handling
// ABOUTME: Each invocation is one linear request/response chain, no retries

package handler

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"miniflux-connector/service"
)

// ConnectorHandler implements the plugin contract the host drives. Control
// flow per entry point is strictly linear: build request, await response,
// map, hand back to the host.
type ConnectorHandler struct {
	verifier   *service.VerificationService
	loader     *service.LoadService
	dispatcher *service.ActionService
	logger     *slog.Logger
}

// NewConnectorHandler creates the host-facing connector
func NewConnectorHandler(
	verifier *service.VerificationService,
	loader *service.LoadService,
	dispatcher *service.ActionService,
	logger *slog.Logger,
) *ConnectorHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &ConnectorHandler{
		verifier:   verifier,
		loader:     loader,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Verify handles the verification entry point. Incomplete settings resolve
// silently without touching the host's error channel: the host calls this
// while the user is still typing, and an error would display mid-entry.
func (h *ConnectorHandler) Verify(ctx context.Context, host Host) {
	invocationID := uuid.New().String()

	result, err := h.verifier.Verify(ctx)
	if err != nil {
		h.logger.Error("Verification failed",
			"invocation_id", invocationID,
			"error", err)
		host.ReportError(service.UserMessage(err))
		return
	}

	if !result.Complete {
		return
	}

	host.ReportVerified(result.DisplayName)
}

// Load handles the content loading entry point. Failures, including missing
// required settings, surface on the host's error channel with a descriptive
// prefix.
func (h *ConnectorHandler) Load(ctx context.Context, host Host) {
	invocationID := uuid.New().String()

	items, err := h.loader.Load(ctx)
	if err != nil {
		h.logger.Error("Load failed",
			"invocation_id", invocationID,
			"error", err)
		host.ReportError("Could not load articles. " + service.UserMessage(err))
		return
	}

	host.ReportItems(items)
}

// HandleAction handles a user-tapped item action. It always completes
// normally; the updated action set is returned so the host can refresh the
// item without a server round trip.
func (h *ConnectorHandler) HandleAction(ctx context.Context, action, entryID string, actions map[string]string) map[string]string {
	h.dispatcher.Dispatch(ctx, service.DispatchRequest{
		Action:  action,
		EntryID: entryID,
		Actions: actions,
	})
	return actions
}
