package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/matchops/club-manager/internal/domain/match"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

type matchRow struct {
	ID           int64     `db:"id"`
	Community    string    `db:"community"`
	Team1        string    `db:"team1"`
	Team2        string    `db:"team2"`
	Kickoff      time.Time `db:"kickoff"`
	Description  string    `db:"description"`
	ReminderSent bool      `db:"reminder_sent"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r matchRow) toDomain() match.Match {
	return match.Match{
		ID:           r.ID,
		Community:    r.Community,
		Team1:        r.Team1,
		Team2:        r.Team2,
		Kickoff:      r.Kickoff,
		Description:  r.Description,
		ReminderSent: r.ReminderSent,
		CreatedAt:    r.CreatedAt,
	}
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) (match.Match, error) {
	const query = `
INSERT INTO matches (community, team1, team2, kickoff, description)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at`

	var (
		id        int64
		createdAt time.Time
	)
	err := r.db.QueryRowxContext(ctx, query,
		m.Community, m.Team1, m.Team2, m.Kickoff, m.Description,
	).Scan(&id, &createdAt)
	if err != nil {
		return match.Match{}, fmt.Errorf("insert match: %w", err)
	}

	m.ID = id
	m.CreatedAt = createdAt
	return m, nil
}

func (r *MatchRepository) ListUpcoming(ctx context.Context, community string, now time.Time) ([]match.Match, error) {
	const query = `
SELECT id, community, team1, team2, kickoff, description, reminder_sent, created_at
FROM matches
WHERE community = $1 AND kickoff > $2
ORDER BY kickoff ASC, id ASC`

	var rows []matchRow
	if err := r.db.SelectContext(ctx, &rows, query, community, now); err != nil {
		return nil, fmt.Errorf("select upcoming matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *MatchRepository) DueForReminder(ctx context.Context, now time.Time, min, max time.Duration) ([]match.Match, error) {
	const query = `
SELECT id, community, team1, team2, kickoff, description, reminder_sent, created_at
FROM matches
WHERE reminder_sent = FALSE AND kickoff > $1 AND kickoff < $2
ORDER BY kickoff ASC, id ASC`

	var rows []matchRow
	if err := r.db.SelectContext(ctx, &rows, query, now.Add(min), now.Add(max)); err != nil {
		return nil, fmt.Errorf("select matches due for reminder: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *MatchRepository) MarkReminderSent(ctx context.Context, id int64) error {
	// The flag predicate makes a second mark a no-op rather than an error.
	const query = `UPDATE matches SET reminder_sent = TRUE WHERE id = $1 AND reminder_sent = FALSE`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("mark reminder sent: %w", err)
	}

	return nil
}
