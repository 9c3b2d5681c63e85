package memory

import (
	"context"
	"sort"
	"time"

	"github.com/matchops/club-manager/internal/domain/match"
)

type MatchRepository struct {
	ds *Dataset
}

func NewMatchRepository(ds *Dataset) *MatchRepository {
	return &MatchRepository{ds: ds}
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) (match.Match, error) {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	m.ID = r.ds.nextMatchID
	r.ds.nextMatchID++
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	r.ds.matches = append(r.ds.matches, m)

	return m, nil
}

func (r *MatchRepository) ListUpcoming(_ context.Context, community string, now time.Time) ([]match.Match, error) {
	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	out := make([]match.Match, 0, len(r.ds.matches))
	for _, m := range r.ds.matches {
		if m.Community == community && m.Kickoff.After(now) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Kickoff.Before(out[j].Kickoff) })

	return out, nil
}

func (r *MatchRepository) DueForReminder(_ context.Context, now time.Time, min, max time.Duration) ([]match.Match, error) {
	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	lower, upper := now.Add(min), now.Add(max)
	out := make([]match.Match, 0)
	for _, m := range r.ds.matches {
		if m.ReminderSent {
			continue
		}
		if m.Kickoff.After(lower) && m.Kickoff.Before(upper) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Kickoff.Before(out[j].Kickoff) })

	return out, nil
}

func (r *MatchRepository) MarkReminderSent(_ context.Context, id int64) error {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	for i := range r.ds.matches {
		if r.ds.matches[i].ID == id {
			r.ds.matches[i].ReminderSent = true
			return nil
		}
	}

	return nil
}
