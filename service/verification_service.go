// ABOUTME: Verifies instance reachability and credentials against /v1/me
// ABOUTME: Incomplete settings resolve silently; concurrent repeat calls are deduped

package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"miniflux-connector/models"
)

// FallbackDisplayName labels the connection when the account has no username
const FallbackDisplayName = "Miniflux"

// VerificationResult is the outcome of a verification probe. Complete is
// false while required settings are still missing, which is not an error.
type VerificationResult struct {
	Complete    bool
	DisplayName string
}

// VerificationService probes a Miniflux instance with the configured
// credentials. The host may invoke verification repeatedly and rapidly while
// the user is typing settings, so the probe must be idempotent and silent on
// incomplete input.
type VerificationService struct {
	api         MinifluxAPI
	creds       *models.Credentials
	probeGroup  singleflight.Group
	logger      *slog.Logger
}

// NewVerificationService creates a verification service for one credential set
func NewVerificationService(api MinifluxAPI, creds *models.Credentials, logger *slog.Logger) *VerificationService {
	if logger == nil {
		logger = slog.Default()
	}

	return &VerificationService{
		api:    api,
		creds:  creds,
		logger: logger,
	}
}

// Verify probes the instance. A nil error with Complete=false means the
// settings are not filled in yet; a non-nil error means the probe itself
// failed and should be surfaced to the user.
func (s *VerificationService) Verify(ctx context.Context) (*VerificationResult, error) {
	if missing := s.creds.MissingFields(); len(missing) > 0 {
		s.logger.Debug("Verification skipped, settings incomplete",
			"missing_fields", missing)
		return &VerificationResult{Complete: false}, nil
	}

	// Concurrent probes against the same credential set collapse into one
	// upstream call
	value, err, shared := s.probeGroup.Do("verify", func() (interface{}, error) {
		return s.api.GetMe(ctx)
	})
	if err != nil {
		s.logger.Error("Verification probe failed", "error", err)
		return nil, err
	}

	user := value.(*models.User)
	displayName := user.Username
	if displayName == "" {
		displayName = FallbackDisplayName
	}

	s.logger.Info("Verification succeeded",
		"display_name", displayName,
		"deduplicated", shared)

	return &VerificationResult{
		Complete:    true,
		DisplayName: displayName,
	}, nil
}
