// Package settings stores small per-community key/value pairs (reset
// confirmation tokens, reminder webhook overrides).
package settings

import "context"

type Repository interface {
	Get(ctx context.Context, community, name string) (string, bool, error)
	// Set inserts or replaces the value for (community, name).
	Set(ctx context.Context, community, name, value string) error
	Delete(ctx context.Context, community, name string) error
}
