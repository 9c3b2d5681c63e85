package club

import (
	"context"
	"errors"
)

// Repository describes club persistence needs from use cases.
//
// Create reports a name collision via ErrAlreadyExists; Delete, UpdateBudget
// and GetByName report absence via ErrNotFound / the bool return so callers
// never have to parse driver errors.
type Repository interface {
	Create(ctx context.Context, c Club) (Club, error)
	// Delete removes the club and unassigns its players in one atomic step.
	Delete(ctx context.Context, community, name string) error
	GetByName(ctx context.Context, community, name string) (Club, bool, error)
	// List returns clubs ranked by budget descending, insertion order on ties.
	List(ctx context.Context, community string) ([]Club, error)
	UpdateBudget(ctx context.Context, community, name string, budget float64) error
	// Richest returns up to limit clubs ranked by budget descending, each with
	// its player count.
	Richest(ctx context.Context, community string, limit int) ([]RichClub, error)
}

var (
	// ErrAlreadyExists marks a (community, name) unique collision.
	ErrAlreadyExists = errors.New("club already exists")
	// ErrNotFound marks a missing club row.
	ErrNotFound = errors.New("club not found")
)
