package memory

import (
	"context"
	"sort"
	"time"

	"github.com/matchops/club-manager/internal/domain/transfer"
)

type TransferRepository struct {
	ds *Dataset
}

func NewTransferRepository(ds *Dataset) *TransferRepository {
	return &TransferRepository{ds: ds}
}

// Execute holds the dataset write lock for the whole move, which gives the
// same all-or-nothing visibility as the postgres transaction.
func (r *TransferRepository) Execute(_ context.Context, req transfer.Request) error {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	fromIdx := r.ds.clubIndex(req.Community, req.FromClub)
	if fromIdx < 0 {
		return transfer.ErrFromClubNotFound
	}
	toIdx := r.ds.clubIndex(req.Community, req.ToClub)
	if toIdx < 0 {
		return transfer.ErrToClubNotFound
	}

	playerIdx := r.ds.playerIndex(req.Community, req.PlayerName)
	if playerIdx < 0 || r.ds.players[playerIdx].ClubName != req.FromClub {
		return transfer.ErrPlayerNotAtClub
	}

	if r.ds.clubs[toIdx].Budget < req.Fee {
		return transfer.ErrInsufficientBudget
	}

	r.ds.players[playerIdx].ClubName = req.ToClub
	r.ds.clubs[toIdx].Budget -= req.Fee
	r.ds.clubs[fromIdx].Budget += req.Fee

	return nil
}

func (r *TransferRepository) Append(_ context.Context, rec transfer.Record) error {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	rec.ID = r.ds.nextTransferID
	r.ds.nextTransferID++
	if rec.Date.IsZero() {
		rec.Date = time.Now().UTC()
	}
	r.ds.transfers = append(r.ds.transfers, rec)

	return nil
}

func (r *TransferRepository) History(_ context.Context, community string, limit int) ([]transfer.Record, error) {
	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	out := make([]transfer.Record, 0, len(r.ds.transfers))
	for _, rec := range r.ds.transfers {
		if rec.Community == community {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID > out[j].ID
		}
		return out[i].Date.After(out[j].Date)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}
