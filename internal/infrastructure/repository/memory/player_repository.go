package memory

import (
	"context"
	"sort"
	"time"

	"github.com/matchops/club-manager/internal/domain/player"
)

type PlayerRepository struct {
	ds *Dataset
}

func NewPlayerRepository(ds *Dataset) *PlayerRepository {
	return &PlayerRepository{ds: ds}
}

func (r *PlayerRepository) Add(_ context.Context, p player.Player) (player.Player, error) {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	if r.ds.clubIndex(p.Community, p.ClubName) < 0 {
		return player.Player{}, player.ErrClubNotFound
	}
	if r.ds.playerIndex(p.Community, p.Name) >= 0 {
		return player.Player{}, player.ErrAlreadyExists
	}

	p.ID = r.ds.nextPlayerID
	r.ds.nextPlayerID++
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	r.ds.players = append(r.ds.players, p)

	return p, nil
}

func (r *PlayerRepository) Remove(_ context.Context, community, name string) error {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	idx := r.ds.playerIndex(community, name)
	if idx < 0 {
		return player.ErrNotFound
	}
	r.ds.players = append(r.ds.players[:idx], r.ds.players[idx+1:]...)

	return nil
}

func (r *PlayerRepository) UpdateValue(_ context.Context, community, name string, value float64) error {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	idx := r.ds.playerIndex(community, name)
	if idx < 0 {
		return player.ErrNotFound
	}
	r.ds.players[idx].Value = value

	return nil
}

func (r *PlayerRepository) GetByName(_ context.Context, community, name string) (player.Player, bool, error) {
	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	idx := r.ds.playerIndex(community, name)
	if idx < 0 {
		return player.Player{}, false, nil
	}

	return r.ds.players[idx], true, nil
}

func (r *PlayerRepository) List(_ context.Context, community string) ([]player.Player, error) {
	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	return r.collect(func(p player.Player) bool { return p.Community == community }, 0), nil
}

func (r *PlayerRepository) ListByClub(_ context.Context, community, clubName string) ([]player.Player, error) {
	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	return r.collect(func(p player.Player) bool {
		return p.Community == community && p.ClubName == clubName && p.ClubName != ""
	}, 0), nil
}

func (r *PlayerRepository) Top(_ context.Context, community string, limit int) ([]player.Player, error) {
	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	return r.collect(func(p player.Player) bool { return p.Community == community }, limit), nil
}

// collect assumes the dataset lock is held.
func (r *PlayerRepository) collect(keep func(player.Player) bool, limit int) []player.Player {
	out := make([]player.Player, 0, len(r.ds.players))
	for _, p := range r.ds.players {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}
