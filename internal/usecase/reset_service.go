package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/matchops/club-manager/internal/domain/community"
	"github.com/matchops/club-manager/internal/domain/settings"
	"github.com/matchops/club-manager/internal/platform/id"
	"github.com/matchops/club-manager/internal/platform/logging"
)

const (
	resetTokenKey = "reset_token"
	resetTokenTTL = 10 * time.Minute
)

// ResetService runs the two-step community wipe. RequestReset issues a
// confirmation token with a short expiry; ConfirmReset checks it and only
// then purges every relation for the community.
type ResetService struct {
	purger       community.Purger
	settingsRepo settings.Repository
	idGen        id.Generator
	logger       *logging.Logger
	now          func() time.Time
}

func NewResetService(purger community.Purger, settingsRepo settings.Repository, idGen id.Generator, logger *logging.Logger) *ResetService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ResetService{
		purger:       purger,
		settingsRepo: settingsRepo,
		idGen:        idGen,
		logger:       logger,
		now:          time.Now,
	}
}

// RequestReset issues a fresh confirmation token, replacing any pending one.
func (s *ResetService) RequestReset(ctx context.Context, communityID string) (token string, expiresAt time.Time, err error) {
	communityID = strings.TrimSpace(communityID)
	if communityID == "" {
		return "", time.Time{}, fmt.Errorf("%w: community is required", ErrInvalidInput)
	}

	token, err = s.idGen.NewID()
	if err != nil {
		return "", time.Time{}, storageErr("generate reset token", err)
	}

	expiresAt = s.now().UTC().Add(resetTokenTTL)
	value := fmt.Sprintf("%s:%d", token, expiresAt.Unix())
	if err := s.settingsRepo.Set(ctx, communityID, resetTokenKey, value); err != nil {
		return "", time.Time{}, storageErr("store reset token", err)
	}

	s.logger.InfoContext(ctx, "reset requested", "community", communityID, "expires_at", expiresAt)

	return token, expiresAt, nil
}

// ConfirmReset validates the token and purges the community. The stored token
// is single-use: it is cleared on success along with everything else.
func (s *ResetService) ConfirmReset(ctx context.Context, communityID, token string) error {
	communityID = strings.TrimSpace(communityID)
	token = strings.TrimSpace(token)
	if communityID == "" || token == "" {
		return fmt.Errorf("%w: community and token are required", ErrInvalidInput)
	}

	stored, ok, err := s.settingsRepo.Get(ctx, communityID, resetTokenKey)
	if err != nil {
		return storageErr("load reset token", err)
	}
	if !ok {
		return fmt.Errorf("%w: no pending reset", ErrNotFound)
	}

	wantToken, expiresAt, parseErr := parseResetToken(stored)
	if parseErr != nil || wantToken != token {
		return fmt.Errorf("%w: reset token does not match", ErrInvalidInput)
	}
	if s.now().UTC().After(expiresAt) {
		// Expired tokens are removed so a stale request cannot linger.
		if err := s.settingsRepo.Delete(ctx, communityID, resetTokenKey); err != nil {
			s.logger.WarnContext(ctx, "delete expired reset token failed", "community", communityID, "error", err)
		}
		return fmt.Errorf("%w: reset token expired", ErrInvalidInput)
	}

	if err := s.purger.Purge(ctx, communityID); err != nil {
		return storageErr("purge community", err)
	}

	s.logger.InfoContext(ctx, "community reset", "community", communityID)

	return nil
}

// CancelReset drops a pending token, if any.
func (s *ResetService) CancelReset(ctx context.Context, communityID string) error {
	communityID = strings.TrimSpace(communityID)
	if communityID == "" {
		return fmt.Errorf("%w: community is required", ErrInvalidInput)
	}

	if err := s.settingsRepo.Delete(ctx, communityID, resetTokenKey); err != nil {
		return storageErr("delete reset token", err)
	}

	s.logger.InfoContext(ctx, "reset canceled", "community", communityID)

	return nil
}

func parseResetToken(stored string) (string, time.Time, error) {
	idx := strings.LastIndex(stored, ":")
	if idx <= 0 {
		return "", time.Time{}, fmt.Errorf("malformed reset token value")
	}

	unix, err := strconv.ParseInt(stored[idx+1:], 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("malformed reset token expiry: %w", err)
	}

	return stored[:idx], time.Unix(unix, 0).UTC(), nil
}
