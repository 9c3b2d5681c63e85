package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matchops/club-manager/internal/infrastructure/repository/memory"
	"github.com/matchops/club-manager/internal/platform/id"
	"github.com/matchops/club-manager/internal/platform/logging"
)

type resetFixture struct {
	ds    *memory.Dataset
	reset *ResetService
	clubs *ClubService
}

func newResetFixture(t *testing.T) resetFixture {
	t.Helper()

	ds := memory.NewDataset()
	f := resetFixture{
		ds: ds,
		reset: NewResetService(
			memory.NewCommunityRepository(ds),
			memory.NewSettingsRepository(ds),
			id.NewRandomGenerator(),
			logging.NewNop(),
		),
		clubs: NewClubService(memory.NewClubRepository(ds), logging.NewNop()),
	}

	ctx := context.Background()
	if _, err := f.clubs.CreateClub(ctx, CreateClubInput{Community: "guild-1", Name: "Arsenal", Budget: 500}); err != nil {
		t.Fatalf("CreateClub() error = %v", err)
	}
	if _, err := f.clubs.CreateClub(ctx, CreateClubInput{Community: "guild-2", Name: "Arsenal", Budget: 500}); err != nil {
		t.Fatalf("CreateClub() error = %v", err)
	}

	return f
}

func TestResetServiceFullFlow(t *testing.T) {
	f := newResetFixture(t)
	ctx := context.Background()

	token, expiresAt, err := f.reset.RequestReset(ctx, "guild-1")
	if err != nil {
		t.Fatalf("RequestReset() error = %v", err)
	}
	if token == "" {
		t.Fatalf("RequestReset() returned an empty token")
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("token already expired at issue time: %v", expiresAt)
	}

	if err := f.reset.ConfirmReset(ctx, "guild-1", token); err != nil {
		t.Fatalf("ConfirmReset() error = %v", err)
	}

	clubs, err := f.clubs.ListClubs(ctx, "guild-1")
	if err != nil {
		t.Fatalf("ListClubs() error = %v", err)
	}
	if len(clubs) != 0 {
		t.Fatalf("guild-1 still has %d clubs after reset, want 0", len(clubs))
	}

	// Other communities are untouched.
	others, err := f.clubs.ListClubs(ctx, "guild-2")
	if err != nil {
		t.Fatalf("ListClubs() error = %v", err)
	}
	if len(others) != 1 {
		t.Fatalf("guild-2 has %d clubs after guild-1 reset, want 1", len(others))
	}

	// The token is single-use.
	if err := f.reset.ConfirmReset(ctx, "guild-1", token); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second ConfirmReset() error = %v, want ErrNotFound", err)
	}
}

func TestResetServiceWrongToken(t *testing.T) {
	f := newResetFixture(t)
	ctx := context.Background()

	if _, _, err := f.reset.RequestReset(ctx, "guild-1"); err != nil {
		t.Fatalf("RequestReset() error = %v", err)
	}

	if err := f.reset.ConfirmReset(ctx, "guild-1", "not-the-token"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("ConfirmReset() with wrong token error = %v, want ErrInvalidInput", err)
	}

	clubs, err := f.clubs.ListClubs(ctx, "guild-1")
	if err != nil {
		t.Fatalf("ListClubs() error = %v", err)
	}
	if len(clubs) != 1 {
		t.Fatalf("wrong token still purged the community")
	}
}

func TestResetServiceExpiredToken(t *testing.T) {
	f := newResetFixture(t)
	ctx := context.Background()

	issued := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	f.reset.now = func() time.Time { return issued }

	token, _, err := f.reset.RequestReset(ctx, "guild-1")
	if err != nil {
		t.Fatalf("RequestReset() error = %v", err)
	}

	f.reset.now = func() time.Time { return issued.Add(11 * time.Minute) }
	if err := f.reset.ConfirmReset(ctx, "guild-1", token); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("ConfirmReset() with expired token error = %v, want ErrInvalidInput", err)
	}

	// The expired token was cleared, so a retry reports no pending reset.
	if err := f.reset.ConfirmReset(ctx, "guild-1", token); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ConfirmReset() after expiry cleanup error = %v, want ErrNotFound", err)
	}
}

func TestResetServiceCancel(t *testing.T) {
	f := newResetFixture(t)
	ctx := context.Background()

	token, _, err := f.reset.RequestReset(ctx, "guild-1")
	if err != nil {
		t.Fatalf("RequestReset() error = %v", err)
	}
	if err := f.reset.CancelReset(ctx, "guild-1"); err != nil {
		t.Fatalf("CancelReset() error = %v", err)
	}
	if err := f.reset.ConfirmReset(ctx, "guild-1", token); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ConfirmReset() after cancel error = %v, want ErrNotFound", err)
	}
}

func TestResetServiceReissueReplacesToken(t *testing.T) {
	f := newResetFixture(t)
	ctx := context.Background()

	first, _, err := f.reset.RequestReset(ctx, "guild-1")
	if err != nil {
		t.Fatalf("RequestReset() error = %v", err)
	}
	second, _, err := f.reset.RequestReset(ctx, "guild-1")
	if err != nil {
		t.Fatalf("second RequestReset() error = %v", err)
	}
	if first == second {
		t.Fatalf("reissued token matches the first one")
	}

	if err := f.reset.ConfirmReset(ctx, "guild-1", first); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("ConfirmReset() with superseded token error = %v, want ErrInvalidInput", err)
	}
	if err := f.reset.ConfirmReset(ctx, "guild-1", second); err != nil {
		t.Fatalf("ConfirmReset() with current token error = %v", err)
	}
}
