package memory

import (
	"context"

	"github.com/matchops/club-manager/internal/domain/club"
	"github.com/matchops/club-manager/internal/domain/match"
	"github.com/matchops/club-manager/internal/domain/player"
	"github.com/matchops/club-manager/internal/domain/transfer"
)

type CommunityRepository struct {
	ds *Dataset
}

func NewCommunityRepository(ds *Dataset) *CommunityRepository {
	return &CommunityRepository{ds: ds}
}

func (r *CommunityRepository) Purge(_ context.Context, community string) error {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	keepTransfers := make([]transfer.Record, 0, len(r.ds.transfers))
	for _, rec := range r.ds.transfers {
		if rec.Community != community {
			keepTransfers = append(keepTransfers, rec)
		}
	}
	r.ds.transfers = keepTransfers

	keepMatches := make([]match.Match, 0, len(r.ds.matches))
	for _, m := range r.ds.matches {
		if m.Community != community {
			keepMatches = append(keepMatches, m)
		}
	}
	r.ds.matches = keepMatches

	keepPlayers := make([]player.Player, 0, len(r.ds.players))
	for _, p := range r.ds.players {
		if p.Community != community {
			keepPlayers = append(keepPlayers, p)
		}
	}
	r.ds.players = keepPlayers

	keepClubs := make([]club.Club, 0, len(r.ds.clubs))
	for _, c := range r.ds.clubs {
		if c.Community != community {
			keepClubs = append(keepClubs, c)
		}
	}
	r.ds.clubs = keepClubs

	delete(r.ds.settings, community)

	return nil
}
