package usecase

import (
	"context"
	"errors"
	"testing"
)

func newStatsFixture(t *testing.T) (*StatsService, transferFixture) {
	t.Helper()

	f := newTransferFixture(t)
	ctx := context.Background()

	if _, err := f.players.AddPlayer(ctx, AddPlayerInput{Community: "guild-1", Name: "Odegaard", ClubName: "Arsenal", Value: 110}); err != nil {
		t.Fatalf("AddPlayer() error = %v", err)
	}
	if _, err := f.players.AddPlayer(ctx, AddPlayerInput{Community: "guild-1", Name: "Palmer", ClubName: "Chelsea", Value: 100}); err != nil {
		t.Fatalf("AddPlayer() error = %v", err)
	}
	if _, err := f.transfers.TransferPlayer(ctx, TransferInput{
		Community: "guild-1", PlayerName: "Saka", FromClub: "Arsenal", ToClub: "Chelsea", Fee: 50,
	}); err != nil {
		t.Fatalf("TransferPlayer() error = %v", err)
	}

	return f.stats, f
}

func TestStatsServiceClubStats(t *testing.T) {
	svc, _ := newStatsFixture(t)
	ctx := context.Background()

	cs, err := svc.ClubStats(ctx, "guild-1", "Chelsea")
	if err != nil {
		t.Fatalf("ClubStats() error = %v", err)
	}

	// Chelsea holds Palmer (100) plus the transferred Saka (90).
	if cs.PlayerCount != 2 {
		t.Fatalf("player count = %d, want 2", cs.PlayerCount)
	}
	if cs.TotalValue != 190 {
		t.Fatalf("total value = %v, want 190", cs.TotalValue)
	}
	if cs.MostValuable != "Palmer" {
		t.Fatalf("most valuable = %q, want Palmer", cs.MostValuable)
	}
	if cs.TransfersIn != 1 || cs.TransfersOut != 0 {
		t.Fatalf("transfers in/out = %d/%d, want 1/0", cs.TransfersIn, cs.TransfersOut)
	}
	if cs.Budget != 250 {
		t.Fatalf("budget = %v after paying the fee, want 250", cs.Budget)
	}

	if _, err := svc.ClubStats(ctx, "guild-1", "Ghost FC"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ClubStats() on missing club error = %v, want ErrNotFound", err)
	}
}

func TestStatsServiceServerStats(t *testing.T) {
	svc, _ := newStatsFixture(t)
	ctx := context.Background()

	ss, err := svc.ServerStats(ctx, "guild-1")
	if err != nil {
		t.Fatalf("ServerStats() error = %v", err)
	}
	if ss.TotalClubs != 2 {
		t.Fatalf("total clubs = %d, want 2", ss.TotalClubs)
	}
	if ss.TotalPlayers != 3 {
		t.Fatalf("total players = %d, want 3", ss.TotalPlayers)
	}
	if ss.TotalTransfers != 1 {
		t.Fatalf("total transfers = %d, want 1", ss.TotalTransfers)
	}
	if ss.TotalValue != 300 {
		t.Fatalf("total value = %v, want 300", ss.TotalValue)
	}
}

func TestStatsServiceLeaderboards(t *testing.T) {
	svc, _ := newStatsFixture(t)
	ctx := context.Background()

	top, err := svc.TopPlayers(ctx, "guild-1", 2)
	if err != nil {
		t.Fatalf("TopPlayers() error = %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("TopPlayers(2) returned %d players, want 2", len(top))
	}
	if top[0].Name != "Odegaard" || top[1].Name != "Palmer" {
		t.Fatalf("top players = [%s, %s], want [Odegaard, Palmer]", top[0].Name, top[1].Name)
	}

	richest, err := svc.RichestClubs(ctx, "guild-1", 0)
	if err != nil {
		t.Fatalf("RichestClubs() error = %v", err)
	}
	if len(richest) != 2 {
		t.Fatalf("RichestClubs() returned %d clubs, want 2", len(richest))
	}
	// Arsenal banked the 50 fee: 550 vs Chelsea's 250.
	if richest[0].Name != "Arsenal" {
		t.Fatalf("richest club = %q, want Arsenal", richest[0].Name)
	}
	if richest[0].PlayerCount != 1 || richest[1].PlayerCount != 2 {
		t.Fatalf("player counts = %d/%d, want 1/2", richest[0].PlayerCount, richest[1].PlayerCount)
	}
}

func TestStatsServiceHistoryLimit(t *testing.T) {
	f := newTransferFixture(t)
	ctx := context.Background()

	// Bounce the player back and forth to fill the log.
	from, to := "Arsenal", "Chelsea"
	for i := 0; i < 5; i++ {
		if _, err := f.transfers.TransferPlayer(ctx, TransferInput{
			Community: "guild-1", PlayerName: "Saka", FromClub: from, ToClub: to, Fee: 1,
		}); err != nil {
			t.Fatalf("TransferPlayer() #%d error = %v", i+1, err)
		}
		from, to = to, from
	}

	history, err := f.stats.TransferHistory(ctx, "guild-1", 3)
	if err != nil {
		t.Fatalf("TransferHistory() error = %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("TransferHistory(3) returned %d records, want 3", len(history))
	}
	// Newest first.
	if history[0].ID <= history[1].ID || history[1].ID <= history[2].ID {
		t.Fatalf("history not newest first: IDs %d, %d, %d", history[0].ID, history[1].ID, history[2].ID)
	}
}
