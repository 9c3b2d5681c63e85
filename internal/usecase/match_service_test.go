package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matchops/club-manager/internal/infrastructure/repository/memory"
	"github.com/matchops/club-manager/internal/platform/logging"
)

func TestMatchServiceCreateMatch(t *testing.T) {
	ds := memory.NewDataset()
	svc := NewMatchService(memory.NewMatchRepository(ds), logging.NewNop())
	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	created, err := svc.CreateMatch(ctx, CreateMatchInput{
		Community: "guild-1",
		Team1:     "role-red",
		Team2:     "role-blue",
		Kickoff:   "2026-08-21 18:30",
	})
	if err != nil {
		t.Fatalf("CreateMatch() error = %v", err)
	}
	if created.Description != "League Match" {
		t.Fatalf("default description = %q, want %q", created.Description, "League Match")
	}
	want := time.Date(2026, 8, 21, 18, 30, 0, 0, time.UTC)
	if !created.Kickoff.Equal(want) {
		t.Fatalf("kickoff = %v, want %v", created.Kickoff, want)
	}
	if created.ReminderSent {
		t.Fatalf("new match already marked as notified")
	}
}

func TestMatchServiceCreateMatchValidation(t *testing.T) {
	ds := memory.NewDataset()
	svc := NewMatchService(memory.NewMatchRepository(ds), logging.NewNop())
	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	tests := []struct {
		name  string
		input CreateMatchInput
	}{
		{"garbled kickoff", CreateMatchInput{Community: "guild-1", Team1: "a", Team2: "b", Kickoff: "tomorrow"}},
		{"wrong layout", CreateMatchInput{Community: "guild-1", Team1: "a", Team2: "b", Kickoff: "2026-08-21T18:30:00Z"}},
		{"kickoff in the past", CreateMatchInput{Community: "guild-1", Team1: "a", Team2: "b", Kickoff: "2026-08-19 18:30"}},
		{"kickoff right now", CreateMatchInput{Community: "guild-1", Team1: "a", Team2: "b", Kickoff: "2026-08-20 10:00"}},
		{"missing team", CreateMatchInput{Community: "guild-1", Team1: "a", Kickoff: "2026-08-21 18:30"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateMatch(context.Background(), tt.input); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("CreateMatch() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestMatchServiceListUpcoming(t *testing.T) {
	ds := memory.NewDataset()
	svc := NewMatchService(memory.NewMatchRepository(ds), logging.NewNop())
	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	for _, kickoff := range []string{"2026-08-25 20:00", "2026-08-21 18:30", "2026-08-23 15:00"} {
		if _, err := svc.CreateMatch(ctx, CreateMatchInput{Community: "guild-1", Team1: "a", Team2: "b", Kickoff: kickoff}); err != nil {
			t.Fatalf("CreateMatch(%s) error = %v", kickoff, err)
		}
	}

	// Advance past the first fixture; it must drop out of the listing.
	svc.now = func() time.Time { return time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC) }

	matches, err := svc.ListUpcoming(ctx, "guild-1")
	if err != nil {
		t.Fatalf("ListUpcoming() error = %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("ListUpcoming() returned %d matches, want 2", len(matches))
	}
	if !matches[0].Kickoff.Before(matches[1].Kickoff) {
		t.Fatalf("ListUpcoming() not sorted soonest first: %v, %v", matches[0].Kickoff, matches[1].Kickoff)
	}
}
