package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type SettingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context, community, name string) (string, bool, error) {
	const query = `SELECT value FROM settings WHERE community = $1 AND name = $2`

	var value string
	if err := r.db.GetContext(ctx, &value, query, community, name); err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get setting: %w", err)
	}

	return value, true, nil
}

func (r *SettingsRepository) Set(ctx context.Context, community, name, value string) error {
	const query = `
INSERT INTO settings (community, name, value)
VALUES ($1, $2, $3)
ON CONFLICT (community, name) DO UPDATE SET value = EXCLUDED.value`

	if _, err := r.db.ExecContext(ctx, query, community, name, value); err != nil {
		return fmt.Errorf("upsert setting: %w", err)
	}

	return nil
}

func (r *SettingsRepository) Delete(ctx context.Context, community, name string) error {
	const query = `DELETE FROM settings WHERE community = $1 AND name = $2`

	if _, err := r.db.ExecContext(ctx, query, community, name); err != nil {
		return fmt.Errorf("delete setting: %w", err)
	}

	return nil
}
