package memory

import (
	"context"
	"time"

	"github.com/matchops/club-manager/internal/domain/stats"
)

type StatsRepository struct {
	ds *Dataset
}

func NewStatsRepository(ds *Dataset) *StatsRepository {
	return &StatsRepository{ds: ds}
}

func (r *StatsRepository) ClubStats(_ context.Context, community, clubName string) (stats.ClubStats, bool, error) {
	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	idx := r.ds.clubIndex(community, clubName)
	if idx < 0 {
		return stats.ClubStats{}, false, nil
	}
	c := r.ds.clubs[idx]

	out := stats.ClubStats{
		ClubID:    c.ID,
		Community: c.Community,
		Name:      c.Name,
		Budget:    c.Budget,
		CreatedAt: c.CreatedAt,
	}

	for _, p := range r.ds.players {
		if p.Community != community || p.ClubName != clubName {
			continue
		}
		out.PlayerCount++
		out.TotalValue += p.Value
		if p.Value > out.HighestValue {
			out.HighestValue = p.Value
			out.MostValuable = p.Name
		}
		if out.MostValuable == "" {
			out.MostValuable = p.Name
		}
	}
	if out.PlayerCount > 0 {
		out.AvgValue = out.TotalValue / float64(out.PlayerCount)
	}

	for _, rec := range r.ds.transfers {
		if rec.Community != community {
			continue
		}
		if rec.ToClub == clubName {
			out.TransfersIn++
		}
		if rec.FromClub == clubName {
			out.TransfersOut++
		}
	}

	return out, true, nil
}

func (r *StatsRepository) ServerStats(_ context.Context, community string) (stats.ServerStats, error) {
	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	var out stats.ServerStats
	now := time.Now().UTC()

	for _, c := range r.ds.clubs {
		if c.Community == community {
			out.TotalClubs++
		}
	}
	for _, p := range r.ds.players {
		if p.Community == community {
			out.TotalPlayers++
			out.TotalValue += p.Value
		}
	}
	for _, m := range r.ds.matches {
		if m.Community == community && m.Kickoff.After(now) {
			out.UpcomingMatches++
		}
	}
	for _, rec := range r.ds.transfers {
		if rec.Community == community {
			out.TotalTransfers++
		}
	}

	return out, nil
}
