// Package community holds operations that act on a whole tenant scope.
package community

import "context"

// Purger wipes every relation for one community in a single atomic
// operation, children before parents: transfers, matches, players, clubs,
// settings. Other communities are untouched.
type Purger interface {
	Purge(ctx context.Context, community string) error
}
