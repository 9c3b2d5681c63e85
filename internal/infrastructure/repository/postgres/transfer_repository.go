package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/matchops/club-manager/internal/domain/transfer"
)

type TransferRepository struct {
	db *sqlx.DB
}

func NewTransferRepository(db *sqlx.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

// Execute moves the player and both budget deltas in one transaction. The
// player update carries the source-club predicate, so a concurrent transfer
// that already moved the player makes this one roll back with
// transfer.ErrPlayerNotAtClub.
func (r *TransferRepository) Execute(ctx context.Context, req transfer.Request) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for transfer: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const clubIDQuery = `SELECT id FROM clubs WHERE community = $1 AND name = $2`

	var fromID int64
	if err := tx.GetContext(ctx, &fromID, clubIDQuery, req.Community, req.FromClub); err != nil {
		if isNotFound(err) {
			return transfer.ErrFromClubNotFound
		}
		return fmt.Errorf("select source club: %w", err)
	}

	var toID int64
	if err := tx.GetContext(ctx, &toID, clubIDQuery, req.Community, req.ToClub); err != nil {
		if isNotFound(err) {
			return transfer.ErrToClubNotFound
		}
		return fmt.Errorf("select destination club: %w", err)
	}

	const moveQuery = `
UPDATE players SET club_id = $1
WHERE community = $2 AND name = $3 AND club_id = $4`
	res, err := tx.ExecContext(ctx, moveQuery, toID, req.Community, req.PlayerName, fromID)
	if err != nil {
		return fmt.Errorf("move player: %w", err)
	}
	moved, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("move player rows affected: %w", err)
	}
	if moved == 0 {
		return transfer.ErrPlayerNotAtClub
	}

	const debitQuery = `UPDATE clubs SET budget = budget - $1 WHERE id = $2 AND budget >= $1`
	res, err = tx.ExecContext(ctx, debitQuery, req.Fee, toID)
	if err != nil {
		return fmt.Errorf("debit destination club: %w", err)
	}
	debited, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("debit destination club rows affected: %w", err)
	}
	if debited == 0 {
		return transfer.ErrInsufficientBudget
	}

	const creditQuery = `UPDATE clubs SET budget = budget + $1 WHERE id = $2`
	if _, err := tx.ExecContext(ctx, creditQuery, req.Fee, fromID); err != nil {
		return fmt.Errorf("credit source club: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transfer tx: %w", err)
	}

	return nil
}

func (r *TransferRepository) Append(ctx context.Context, rec transfer.Record) error {
	const query = `
INSERT INTO transfers (community, player_name, from_club, to_club, fee, admin_id)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		rec.Community, rec.PlayerName, rec.FromClub, rec.ToClub, rec.Fee, rec.AdminID,
	)
	if err != nil {
		return fmt.Errorf("insert transfer record: %w", err)
	}

	return nil
}

func (r *TransferRepository) History(ctx context.Context, community string, limit int) ([]transfer.Record, error) {
	const query = `
SELECT id, community, player_name, from_club, to_club, fee, admin_id, date
FROM transfers
WHERE community = $1
ORDER BY date DESC, id DESC
LIMIT $2`

	var rows []struct {
		ID         int64     `db:"id"`
		Community  string    `db:"community"`
		PlayerName string    `db:"player_name"`
		FromClub   string    `db:"from_club"`
		ToClub     string    `db:"to_club"`
		Fee        float64   `db:"fee"`
		AdminID    string    `db:"admin_id"`
		Date       time.Time `db:"date"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, community, limit); err != nil {
		return nil, fmt.Errorf("select transfer history: %w", err)
	}

	out := make([]transfer.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, transfer.Record{
			ID:         row.ID,
			Community:  row.Community,
			PlayerName: row.PlayerName,
			FromClub:   row.FromClub,
			ToClub:     row.ToClub,
			Fee:        row.Fee,
			AdminID:    row.AdminID,
			Date:       row.Date,
		})
	}

	return out, nil
}
