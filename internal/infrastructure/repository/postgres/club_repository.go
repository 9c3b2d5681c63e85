package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/matchops/club-manager/internal/domain/club"
)

type ClubRepository struct {
	db *sqlx.DB
}

func NewClubRepository(db *sqlx.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

type clubRow struct {
	ID        int64     `db:"id"`
	Community string    `db:"community"`
	Name      string    `db:"name"`
	Budget    float64   `db:"budget"`
	CreatedAt time.Time `db:"created_at"`
}

func (r clubRow) toDomain() club.Club {
	return club.Club{
		ID:        r.ID,
		Community: r.Community,
		Name:      r.Name,
		Budget:    r.Budget,
		CreatedAt: r.CreatedAt,
	}
}

func (r *ClubRepository) Create(ctx context.Context, c club.Club) (club.Club, error) {
	const query = `
INSERT INTO clubs (community, name, budget)
VALUES ($1, $2, $3)
RETURNING id, created_at`

	var (
		id        int64
		createdAt time.Time
	)
	if err := r.db.QueryRowxContext(ctx, query, c.Community, c.Name, c.Budget).Scan(&id, &createdAt); err != nil {
		if isUniqueViolation(err) {
			return club.Club{}, club.ErrAlreadyExists
		}
		return club.Club{}, fmt.Errorf("insert club: %w", err)
	}

	c.ID = id
	c.CreatedAt = createdAt
	return c, nil
}

func (r *ClubRepository) Delete(ctx context.Context, community, name string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for club delete: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var clubID int64
	const selectQuery = `SELECT id FROM clubs WHERE community = $1 AND name = $2`
	if err := tx.GetContext(ctx, &clubID, selectQuery, community, name); err != nil {
		if isNotFound(err) {
			return club.ErrNotFound
		}
		return fmt.Errorf("select club for delete: %w", err)
	}

	// Players stay in the community as free agents.
	const unassignQuery = `UPDATE players SET club_id = NULL WHERE club_id = $1`
	if _, err := tx.ExecContext(ctx, unassignQuery, clubID); err != nil {
		return fmt.Errorf("unassign club players: %w", err)
	}

	const deleteQuery = `DELETE FROM clubs WHERE id = $1`
	if _, err := tx.ExecContext(ctx, deleteQuery, clubID); err != nil {
		return fmt.Errorf("delete club: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit club delete tx: %w", err)
	}

	return nil
}

func (r *ClubRepository) GetByName(ctx context.Context, community, name string) (club.Club, bool, error) {
	const query = `
SELECT id, community, name, budget, created_at
FROM clubs
WHERE community = $1 AND name = $2`

	var row clubRow
	if err := r.db.GetContext(ctx, &row, query, community, name); err != nil {
		if isNotFound(err) {
			return club.Club{}, false, nil
		}
		return club.Club{}, false, fmt.Errorf("get club by name: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *ClubRepository) List(ctx context.Context, community string) ([]club.Club, error) {
	const query = `
SELECT id, community, name, budget, created_at
FROM clubs
WHERE community = $1
ORDER BY budget DESC, id ASC`

	var rows []clubRow
	if err := r.db.SelectContext(ctx, &rows, query, community); err != nil {
		return nil, fmt.Errorf("select clubs: %w", err)
	}

	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *ClubRepository) UpdateBudget(ctx context.Context, community, name string, budget float64) error {
	const query = `UPDATE clubs SET budget = $1 WHERE community = $2 AND name = $3`

	res, err := r.db.ExecContext(ctx, query, budget, community, name)
	if err != nil {
		return fmt.Errorf("update club budget: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update club budget rows affected: %w", err)
	}
	if affected == 0 {
		return club.ErrNotFound
	}

	return nil
}

func (r *ClubRepository) Richest(ctx context.Context, community string, limit int) ([]club.RichClub, error) {
	const query = `
SELECT c.id, c.community, c.name, c.budget, c.created_at, COUNT(p.id) AS player_count
FROM clubs c
LEFT JOIN players p ON p.club_id = c.id
WHERE c.community = $1
GROUP BY c.id
ORDER BY c.budget DESC, c.id ASC
LIMIT $2`

	var rows []struct {
		clubRow
		PlayerCount int `db:"player_count"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, community, limit); err != nil {
		return nil, fmt.Errorf("select richest clubs: %w", err)
	}

	out := make([]club.RichClub, 0, len(rows))
	for _, row := range rows {
		out = append(out, club.RichClub{
			Club:        row.toDomain(),
			PlayerCount: row.PlayerCount,
		})
	}

	return out, nil
}
