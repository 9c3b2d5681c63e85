package stats

import "context"

// Repository serves the aggregate read side. Implementations must never
// return partial aggregates: a missing club is reported via the bool return.
type Repository interface {
	ClubStats(ctx context.Context, community, clubName string) (ClubStats, bool, error)
	ServerStats(ctx context.Context, community string) (ServerStats, error)
}
