package transfer

import (
	"context"
	"errors"
)

// Executor performs the atomic unit of a transfer: player relocation plus
// both budget adjustments commit together or not at all. The player move is
// conditioned on the player still being assigned to the source club at write
// time, so two concurrent transfers of one player cannot both succeed.
type Executor interface {
	Execute(ctx context.Context, req Request) error
}

// Repository is the append-only transfer log.
type Repository interface {
	Append(ctx context.Context, rec Record) error
	// History returns up to limit records, newest first.
	History(ctx context.Context, community string, limit int) ([]Record, error)
}

// Rejection reasons reported by Execute. Each leaves the store untouched.
var (
	ErrFromClubNotFound   = errors.New("source club not found")
	ErrToClubNotFound     = errors.New("destination club not found")
	ErrPlayerNotAtClub    = errors.New("player is not assigned to the source club")
	ErrInsufficientBudget = errors.New("destination club budget is below the fee")
)
