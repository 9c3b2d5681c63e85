package club

import (
	"fmt"
	"time"
)

// Club is a football club owned by one community.
type Club struct {
	ID        int64
	Community string
	Name      string
	Budget    float64
	CreatedAt time.Time
}

func (c Club) Validate() error {
	if c.Community == "" {
		return fmt.Errorf("club community is required")
	}
	if c.Name == "" {
		return fmt.Errorf("club name is required")
	}
	if c.Budget < 0 {
		return fmt.Errorf("club budget cannot be negative")
	}

	return nil
}

// RichClub is a club row enriched with its squad size for rankings.
type RichClub struct {
	Club
	PlayerCount int
}
