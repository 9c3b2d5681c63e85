package memory

import (
	"context"
	"sort"
	"time"

	"github.com/matchops/club-manager/internal/domain/club"
)

type ClubRepository struct {
	ds *Dataset
}

func NewClubRepository(ds *Dataset) *ClubRepository {
	return &ClubRepository{ds: ds}
}

func (r *ClubRepository) Create(_ context.Context, c club.Club) (club.Club, error) {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	if r.ds.clubIndex(c.Community, c.Name) >= 0 {
		return club.Club{}, club.ErrAlreadyExists
	}

	c.ID = r.ds.nextClubID
	r.ds.nextClubID++
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	r.ds.clubs = append(r.ds.clubs, c)

	return c, nil
}

func (r *ClubRepository) Delete(_ context.Context, community, name string) error {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	idx := r.ds.clubIndex(community, name)
	if idx < 0 {
		return club.ErrNotFound
	}

	for i := range r.ds.players {
		if r.ds.players[i].Community == community && r.ds.players[i].ClubName == name {
			r.ds.players[i].ClubName = ""
		}
	}
	r.ds.clubs = append(r.ds.clubs[:idx], r.ds.clubs[idx+1:]...)

	return nil
}

func (r *ClubRepository) GetByName(_ context.Context, community, name string) (club.Club, bool, error) {
	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	idx := r.ds.clubIndex(community, name)
	if idx < 0 {
		return club.Club{}, false, nil
	}

	return r.ds.clubs[idx], true, nil
}

func (r *ClubRepository) List(_ context.Context, community string) ([]club.Club, error) {
	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	out := make([]club.Club, 0, len(r.ds.clubs))
	for _, c := range r.ds.clubs {
		if c.Community == community {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Budget > out[j].Budget })

	return out, nil
}

func (r *ClubRepository) UpdateBudget(_ context.Context, community, name string, budget float64) error {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	idx := r.ds.clubIndex(community, name)
	if idx < 0 {
		return club.ErrNotFound
	}
	r.ds.clubs[idx].Budget = budget

	return nil
}

func (r *ClubRepository) Richest(_ context.Context, community string, limit int) ([]club.RichClub, error) {
	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	out := make([]club.RichClub, 0, len(r.ds.clubs))
	for _, c := range r.ds.clubs {
		if c.Community != community {
			continue
		}
		count := 0
		for _, p := range r.ds.players {
			if p.Community == community && p.ClubName == c.Name {
				count++
			}
		}
		out = append(out, club.RichClub{Club: c, PlayerCount: count})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Budget > out[j].Budget })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}
