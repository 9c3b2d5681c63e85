package player

import (
	"context"
	"errors"
)

// Repository describes player persistence needs from use cases.
type Repository interface {
	// Add inserts a player assigned to an existing club. It returns
	// ErrClubNotFound when the club is missing and ErrAlreadyExists on a
	// (community, name) collision.
	Add(ctx context.Context, p Player) (Player, error)
	Remove(ctx context.Context, community, name string) error
	UpdateValue(ctx context.Context, community, name string, value float64) error
	GetByName(ctx context.Context, community, name string) (Player, bool, error)
	// List returns every player in the community ranked by value descending,
	// insertion order on ties. Free agents are included.
	List(ctx context.Context, community string) ([]Player, error)
	// ListByClub returns the club's players ranked by value descending.
	ListByClub(ctx context.Context, community, clubName string) ([]Player, error)
	// Top returns up to limit players ranked by value descending.
	Top(ctx context.Context, community string, limit int) ([]Player, error)
}

var (
	ErrAlreadyExists = errors.New("player already exists")
	ErrNotFound      = errors.New("player not found")
	ErrClubNotFound  = errors.New("player club not found")
)
