package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type CommunityRepository struct {
	db *sqlx.DB
}

func NewCommunityRepository(db *sqlx.DB) *CommunityRepository {
	return &CommunityRepository{db: db}
}

// Purge deletes the community's rows children-first so foreign keys never
// block the wipe. One transaction: either everything goes or nothing does.
func (r *CommunityRepository) Purge(ctx context.Context, community string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for community purge: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	statements := []string{
		`DELETE FROM transfers WHERE community = $1`,
		`DELETE FROM matches WHERE community = $1`,
		`DELETE FROM players WHERE community = $1`,
		`DELETE FROM clubs WHERE community = $1`,
		`DELETE FROM settings WHERE community = $1`,
	}
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt, community); err != nil {
			return fmt.Errorf("purge community: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit community purge tx: %w", err)
	}

	return nil
}
