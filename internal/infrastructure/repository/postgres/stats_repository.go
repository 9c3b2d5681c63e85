package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/matchops/club-manager/internal/domain/stats"
)

type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) ClubStats(ctx context.Context, community, clubName string) (stats.ClubStats, bool, error) {
	const clubQuery = `
SELECT id, community, name, budget, created_at
FROM clubs
WHERE community = $1 AND name = $2`

	var row clubRow
	if err := r.db.GetContext(ctx, &row, clubQuery, community, clubName); err != nil {
		if isNotFound(err) {
			return stats.ClubStats{}, false, nil
		}
		return stats.ClubStats{}, false, fmt.Errorf("get club for stats: %w", err)
	}

	out := stats.ClubStats{
		ClubID:    row.ID,
		Community: row.Community,
		Name:      row.Name,
		Budget:    row.Budget,
		CreatedAt: row.CreatedAt,
	}

	const squadQuery = `
SELECT
    COUNT(*) AS player_count,
    COALESCE(SUM(value), 0) AS total_value,
    COALESCE(AVG(value), 0) AS avg_value,
    COALESCE(MAX(value), 0) AS highest_value
FROM players
WHERE club_id = $1`

	var squad struct {
		PlayerCount  int     `db:"player_count"`
		TotalValue   float64 `db:"total_value"`
		AvgValue     float64 `db:"avg_value"`
		HighestValue float64 `db:"highest_value"`
	}
	if err := r.db.GetContext(ctx, &squad, squadQuery, row.ID); err != nil {
		return stats.ClubStats{}, false, fmt.Errorf("aggregate squad stats: %w", err)
	}
	out.PlayerCount = squad.PlayerCount
	out.TotalValue = squad.TotalValue
	out.AvgValue = squad.AvgValue
	out.HighestValue = squad.HighestValue

	const mostValuableQuery = `
SELECT name FROM players WHERE club_id = $1 ORDER BY value DESC, id ASC LIMIT 1`
	var mostValuable string
	if err := r.db.GetContext(ctx, &mostValuable, mostValuableQuery, row.ID); err != nil && !isNotFound(err) {
		return stats.ClubStats{}, false, fmt.Errorf("select most valuable player: %w", err)
	}
	out.MostValuable = mostValuable

	const transfersInQuery = `SELECT COUNT(*) FROM transfers WHERE community = $1 AND to_club = $2`
	if err := r.db.GetContext(ctx, &out.TransfersIn, transfersInQuery, community, clubName); err != nil {
		return stats.ClubStats{}, false, fmt.Errorf("count transfers in: %w", err)
	}

	const transfersOutQuery = `SELECT COUNT(*) FROM transfers WHERE community = $1 AND from_club = $2`
	if err := r.db.GetContext(ctx, &out.TransfersOut, transfersOutQuery, community, clubName); err != nil {
		return stats.ClubStats{}, false, fmt.Errorf("count transfers out: %w", err)
	}

	return out, true, nil
}

func (r *StatsRepository) ServerStats(ctx context.Context, community string) (stats.ServerStats, error) {
	const query = `
SELECT
    (SELECT COUNT(*) FROM clubs WHERE community = $1) AS total_clubs,
    (SELECT COUNT(*) FROM players WHERE community = $1) AS total_players,
    (SELECT COUNT(*) FROM matches WHERE community = $1 AND kickoff > $2) AS upcoming_matches,
    (SELECT COUNT(*) FROM transfers WHERE community = $1) AS total_transfers,
    (SELECT COALESCE(SUM(value), 0) FROM players WHERE community = $1) AS total_value`

	var row struct {
		TotalClubs      int     `db:"total_clubs"`
		TotalPlayers    int     `db:"total_players"`
		UpcomingMatches int     `db:"upcoming_matches"`
		TotalTransfers  int     `db:"total_transfers"`
		TotalValue      float64 `db:"total_value"`
	}
	if err := r.db.GetContext(ctx, &row, query, community, time.Now().UTC()); err != nil {
		return stats.ServerStats{}, fmt.Errorf("aggregate server stats: %w", err)
	}

	return stats.ServerStats{
		TotalClubs:      row.TotalClubs,
		TotalPlayers:    row.TotalPlayers,
		UpcomingMatches: row.UpcomingMatches,
		TotalTransfers:  row.TotalTransfers,
		TotalValue:      row.TotalValue,
	}, nil
}
