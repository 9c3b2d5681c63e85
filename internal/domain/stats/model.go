package stats

import "time"

// ClubStats is one club's aggregate view: squad numbers plus transfer
// activity counted against the club's name in the log.
type ClubStats struct {
	ClubID       int64
	Community    string
	Name         string
	Budget       float64
	CreatedAt    time.Time
	PlayerCount  int
	TotalValue   float64
	AvgValue     float64
	HighestValue float64
	MostValuable string
	TransfersIn  int
	TransfersOut int
}

// ServerStats summarizes one community.
type ServerStats struct {
	TotalClubs      int
	TotalPlayers    int
	UpcomingMatches int
	TotalTransfers  int
	TotalValue      float64
}
