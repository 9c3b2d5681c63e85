package transfer

import (
	"fmt"
	"time"
)

// Record is one append-only transfer-log entry. Records are never mutated or
// deleted except by a full community reset.
type Record struct {
	ID         int64
	Community  string
	PlayerName string
	FromClub   string
	ToClub     string
	Fee        float64
	AdminID    string
	Date       time.Time
}

func (r Record) Validate() error {
	if r.Community == "" {
		return fmt.Errorf("transfer community is required")
	}
	if r.PlayerName == "" {
		return fmt.Errorf("transfer player name is required")
	}
	if r.Fee < 0 {
		return fmt.Errorf("transfer fee cannot be negative")
	}

	return nil
}

// Request is the input to an atomic player move between two clubs.
type Request struct {
	Community  string
	PlayerName string
	FromClub   string
	ToClub     string
	Fee        float64
}
