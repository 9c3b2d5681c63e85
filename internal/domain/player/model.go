package player

import (
	"fmt"
	"time"
)

// ContractTenure is how long a freshly signed contract runs.
const ContractTenure = 730 * 24 * time.Hour

// Player belongs to at most one club; an empty ClubName means free agent.
type Player struct {
	ID          int64
	Community   string
	Name        string
	ClubName    string
	Value       float64
	Position    string
	Age         int
	ContractEnd time.Time
	CreatedAt   time.Time
}

func (p Player) Validate() error {
	if p.Community == "" {
		return fmt.Errorf("player community is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Value < 0 {
		return fmt.Errorf("player value cannot be negative")
	}
	if p.Age <= 0 {
		return fmt.Errorf("player age must be positive")
	}

	return nil
}

func (p Player) FreeAgent() bool {
	return p.ClubName == ""
}
