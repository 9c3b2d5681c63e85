package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matchops/club-manager/internal/domain/transfer"
	"github.com/matchops/club-manager/internal/platform/logging"
)

// TransferInput is the incoming payload for moving a player between clubs.
type TransferInput struct {
	Community  string
	PlayerName string
	FromClub   string
	ToClub     string
	Fee        float64
	AdminID    string
}

type TransferService struct {
	executor transfer.Executor
	log      transfer.Repository
	logger   *logging.Logger
	now      func() time.Time
}

func NewTransferService(executor transfer.Executor, log transfer.Repository, logger *logging.Logger) *TransferService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TransferService{
		executor: executor,
		log:      log,
		logger:   logger,
		now:      time.Now,
	}
}

// TransferPlayer runs the atomic move and then appends the history record.
// The record is best-effort: a failed append is logged and never undoes the
// committed move.
func (s *TransferService) TransferPlayer(ctx context.Context, input TransferInput) (transfer.Record, error) {
	input.Community = strings.TrimSpace(input.Community)
	input.PlayerName = strings.TrimSpace(input.PlayerName)
	input.FromClub = strings.TrimSpace(input.FromClub)
	input.ToClub = strings.TrimSpace(input.ToClub)
	input.AdminID = strings.TrimSpace(input.AdminID)

	if input.Community == "" {
		return transfer.Record{}, fmt.Errorf("%w: community is required", ErrInvalidInput)
	}
	if input.PlayerName == "" {
		return transfer.Record{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if input.FromClub == "" || input.ToClub == "" {
		return transfer.Record{}, fmt.Errorf("%w: source and destination clubs are required", ErrInvalidInput)
	}
	if input.FromClub == input.ToClub {
		return transfer.Record{}, fmt.Errorf("%w: source and destination clubs must differ", ErrInvalidInput)
	}
	if input.Fee < 0 {
		return transfer.Record{}, fmt.Errorf("%w: fee cannot be negative", ErrInvalidInput)
	}

	err := s.executor.Execute(ctx, transfer.Request{
		Community:  input.Community,
		PlayerName: input.PlayerName,
		FromClub:   input.FromClub,
		ToClub:     input.ToClub,
		Fee:        input.Fee,
	})
	if err != nil {
		if isRejection(err) {
			return transfer.Record{}, fmt.Errorf("%w: %s", ErrTransferRejected, err)
		}
		return transfer.Record{}, storageErr("execute transfer", err)
	}

	rec := transfer.Record{
		Community:  input.Community,
		PlayerName: input.PlayerName,
		FromClub:   input.FromClub,
		ToClub:     input.ToClub,
		Fee:        input.Fee,
		AdminID:    input.AdminID,
		Date:       s.now().UTC(),
	}
	if err := s.log.Append(ctx, rec); err != nil {
		s.logger.WarnContext(ctx, "transfer committed but history append failed",
			"community", input.Community,
			"player", input.PlayerName,
			"error", err,
		)
	}

	s.logger.InfoContext(ctx, "player transferred",
		"community", input.Community,
		"player", input.PlayerName,
		"from", input.FromClub,
		"to", input.ToClub,
		"fee", input.Fee,
	)

	return rec, nil
}

func isRejection(err error) bool {
	return errors.Is(err, transfer.ErrFromClubNotFound) ||
		errors.Is(err, transfer.ErrToClubNotFound) ||
		errors.Is(err, transfer.ErrPlayerNotAtClub) ||
		errors.Is(err, transfer.ErrInsufficientBudget)
}
