package match

import (
	"fmt"
	"time"
)

// Match is a scheduled fixture between two organizational teams. Team IDs are
// opaque role identifiers, not club references. A match is immutable once
// created except for the one-way ReminderSent flag.
type Match struct {
	ID           int64
	Community    string
	Team1        string
	Team2        string
	Kickoff      time.Time
	Description  string
	ReminderSent bool
	CreatedAt    time.Time
}

func (m Match) Validate() error {
	if m.Community == "" {
		return fmt.Errorf("match community is required")
	}
	if m.Team1 == "" || m.Team2 == "" {
		return fmt.Errorf("match requires two teams")
	}
	if m.Kickoff.IsZero() {
		return fmt.Errorf("match kickoff is required")
	}

	return nil
}
