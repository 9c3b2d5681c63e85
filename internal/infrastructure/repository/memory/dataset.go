// Package memory backs the repositories with in-process state. It is used by
// unit tests and by STORE_DRIVER=memory runs; semantics mirror the postgres
// package, including ordering and the transfer/purge atomicity.
package memory

import (
	"sync"

	"github.com/matchops/club-manager/internal/domain/club"
	"github.com/matchops/club-manager/internal/domain/match"
	"github.com/matchops/club-manager/internal/domain/player"
	"github.com/matchops/club-manager/internal/domain/transfer"
)

// Dataset is the single shared mutable state. All repositories constructed
// from one Dataset observe each other's writes under one lock, which is what
// makes the cross-entity operations (transfer, purge, club delete) atomic.
type Dataset struct {
	mu sync.RWMutex

	clubs     []club.Club
	players   []player.Player
	matches   []match.Match
	transfers []transfer.Record
	settings  map[string]map[string]string

	nextClubID     int64
	nextPlayerID   int64
	nextMatchID    int64
	nextTransferID int64
}

func NewDataset() *Dataset {
	return &Dataset{
		settings:       make(map[string]map[string]string),
		nextClubID:     1,
		nextPlayerID:   1,
		nextMatchID:    1,
		nextTransferID: 1,
	}
}

func (d *Dataset) clubIndex(community, name string) int {
	for i, c := range d.clubs {
		if c.Community == community && c.Name == name {
			return i
		}
	}
	return -1
}

func (d *Dataset) playerIndex(community, name string) int {
	for i, p := range d.players {
		if p.Community == community && p.Name == name {
			return i
		}
	}
	return -1
}
