package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/matchops/club-manager/internal/domain/player"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

type playerRow struct {
	ID          int64          `db:"id"`
	Community   string         `db:"community"`
	Name        string         `db:"name"`
	ClubName    sql.NullString `db:"club_name"`
	Value       float64        `db:"value"`
	Position    string         `db:"position"`
	Age         int            `db:"age"`
	ContractEnd sql.NullTime   `db:"contract_end"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r playerRow) toDomain() player.Player {
	p := player.Player{
		ID:        r.ID,
		Community: r.Community,
		Name:      r.Name,
		Value:     r.Value,
		Position:  r.Position,
		Age:       r.Age,
		CreatedAt: r.CreatedAt,
	}
	if r.ClubName.Valid {
		p.ClubName = r.ClubName.String
	}
	if r.ContractEnd.Valid {
		p.ContractEnd = r.ContractEnd.Time
	}
	return p
}

const playerSelectColumns = `
p.id, p.community, p.name, c.name AS club_name, p.value, p.position, p.age, p.contract_end, p.created_at`

func (r *PlayerRepository) Add(ctx context.Context, p player.Player) (player.Player, error) {
	// INSERT..SELECT keys the club lookup and the insert on one statement, so
	// a club deleted in between cannot leave a dangling reference.
	const query = `
INSERT INTO players (community, name, club_id, value, position, age, contract_end)
SELECT $1, $2, c.id, $4, $5, $6, $7
FROM clubs c
WHERE c.community = $1 AND c.name = $3
RETURNING id, created_at`

	var (
		id        int64
		createdAt time.Time
	)
	err := r.db.QueryRowxContext(ctx, query,
		p.Community, p.Name, p.ClubName, p.Value, p.Position, p.Age, p.ContractEnd,
	).Scan(&id, &createdAt)
	if err != nil {
		if isNotFound(err) {
			return player.Player{}, player.ErrClubNotFound
		}
		if isUniqueViolation(err) {
			return player.Player{}, player.ErrAlreadyExists
		}
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}

	p.ID = id
	p.CreatedAt = createdAt
	return p, nil
}

func (r *PlayerRepository) Remove(ctx context.Context, community, name string) error {
	const query = `DELETE FROM players WHERE community = $1 AND name = $2`

	res, err := r.db.ExecContext(ctx, query, community, name)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete player rows affected: %w", err)
	}
	if affected == 0 {
		return player.ErrNotFound
	}

	return nil
}

func (r *PlayerRepository) UpdateValue(ctx context.Context, community, name string, value float64) error {
	const query = `UPDATE players SET value = $1 WHERE community = $2 AND name = $3`

	res, err := r.db.ExecContext(ctx, query, value, community, name)
	if err != nil {
		return fmt.Errorf("update player value: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update player value rows affected: %w", err)
	}
	if affected == 0 {
		return player.ErrNotFound
	}

	return nil
}

func (r *PlayerRepository) GetByName(ctx context.Context, community, name string) (player.Player, bool, error) {
	query := `
SELECT ` + playerSelectColumns + `
FROM players p
LEFT JOIN clubs c ON p.club_id = c.id
WHERE p.community = $1 AND p.name = $2`

	var row playerRow
	if err := r.db.GetContext(ctx, &row, query, community, name); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player by name: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) List(ctx context.Context, community string) ([]player.Player, error) {
	query := `
SELECT ` + playerSelectColumns + `
FROM players p
LEFT JOIN clubs c ON p.club_id = c.id
WHERE p.community = $1
ORDER BY p.value DESC, p.id ASC`

	return r.selectPlayers(ctx, query, community)
}

func (r *PlayerRepository) ListByClub(ctx context.Context, community, clubName string) ([]player.Player, error) {
	query := `
SELECT ` + playerSelectColumns + `
FROM players p
JOIN clubs c ON p.club_id = c.id
WHERE p.community = $1 AND c.name = $2
ORDER BY p.value DESC, p.id ASC`

	return r.selectPlayers(ctx, query, community, clubName)
}

func (r *PlayerRepository) Top(ctx context.Context, community string, limit int) ([]player.Player, error) {
	query := `
SELECT ` + playerSelectColumns + `
FROM players p
LEFT JOIN clubs c ON p.club_id = c.id
WHERE p.community = $1
ORDER BY p.value DESC, p.id ASC
LIMIT $2`

	return r.selectPlayers(ctx, query, community, limit)
}

func (r *PlayerRepository) selectPlayers(ctx context.Context, query string, args ...any) ([]player.Player, error) {
	var rows []playerRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
