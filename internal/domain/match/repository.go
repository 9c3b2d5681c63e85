package match

import (
	"context"
	"time"
)

// Repository describes match persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, m Match) (Match, error)
	// ListUpcoming returns matches with kickoff after now, soonest first.
	ListUpcoming(ctx context.Context, community string, now time.Time) ([]Match, error)
	// DueForReminder returns unnotified matches whose kickoff falls strictly
	// inside (now+min, now+max), across every community.
	DueForReminder(ctx context.Context, now time.Time, min, max time.Duration) ([]Match, error)
	// MarkReminderSent flips reminder_sent false -> true. Idempotent: marking
	// an already-notified match is a no-op.
	MarkReminderSent(ctx context.Context, id int64) error
}
