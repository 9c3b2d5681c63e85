package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/matchops/club-manager/internal/domain/match"
)

type matchRepoMock struct {
	mock.Mock
}

func (m *matchRepoMock) Create(ctx context.Context, mm match.Match) (match.Match, error) {
	args := m.Called(ctx, mm)
	return args.Get(0).(match.Match), args.Error(1)
}

func (m *matchRepoMock) ListUpcoming(ctx context.Context, community string, now time.Time) ([]match.Match, error) {
	args := m.Called(ctx, community, now)
	return args.Get(0).([]match.Match), args.Error(1)
}

func (m *matchRepoMock) DueForReminder(ctx context.Context, now time.Time, min, max time.Duration) ([]match.Match, error) {
	args := m.Called(ctx, now, min, max)
	return args.Get(0).([]match.Match), args.Error(1)
}

func (m *matchRepoMock) MarkReminderSent(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type notifierMock struct {
	mock.Mock
}

func (n *notifierMock) Notify(ctx context.Context, m match.Match) error {
	args := n.Called(ctx, m)
	return args.Error(0)
}

func TestReminderServiceScanDispatchesEveryDueMatchUsingMock(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 3, 7, 18, 0, 0, 0, time.UTC)

	repo := &matchRepoMock{}
	notifier := &notifierMock{}
	svc := NewReminderService(repo, notifier, ReminderConfig{Workers: 2}, nil)

	due := []match.Match{
		{ID: 1, Community: "alpha", Team1: "Red", Team2: "Blue", Kickoff: now.Add(5 * time.Minute)},
		{ID: 2, Community: "beta", Team1: "North", Team2: "South", Kickoff: now.Add(5 * time.Minute)},
	}

	repo.
		On("DueForReminder", mock.Anything, now, 4*time.Minute, 6*time.Minute).
		Return(due, nil).
		Once()
	for _, m := range due {
		notifier.On("Notify", mock.Anything, m).Return(nil).Once()
		repo.On("MarkReminderSent", mock.Anything, m.ID).Return(nil).Once()
	}

	handled, err := svc.Scan(ctx, now)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if handled != len(due) {
		t.Fatalf("unexpected handled count: got=%d want=%d", handled, len(due))
	}

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestReminderServiceScanMarksSentAfterNotifyFailureUsingMock(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 3, 7, 18, 0, 0, 0, time.UTC)

	repo := &matchRepoMock{}
	notifier := &notifierMock{}
	svc := NewReminderService(repo, notifier, ReminderConfig{Workers: 1}, nil)

	due := []match.Match{
		{ID: 7, Community: "alpha", Team1: "Red", Team2: "Blue", Kickoff: now.Add(5 * time.Minute)},
	}

	repo.
		On("DueForReminder", mock.Anything, now, 4*time.Minute, 6*time.Minute).
		Return(due, nil).
		Once()
	notifier.
		On("Notify", mock.Anything, due[0]).
		Return(errors.New("webhook unreachable")).
		Once()
	repo.
		On("MarkReminderSent", mock.Anything, int64(7)).
		Return(nil).
		Once()

	handled, err := svc.Scan(ctx, now)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if handled != 1 {
		t.Fatalf("unexpected handled count: got=%d want=1", handled)
	}

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestReminderServiceScanPropagatesRepositoryErrorUsingMock(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 3, 7, 18, 0, 0, 0, time.UTC)

	repo := &matchRepoMock{}
	notifier := &notifierMock{}
	svc := NewReminderService(repo, notifier, ReminderConfig{}, nil)

	repo.
		On("DueForReminder", mock.Anything, now, 4*time.Minute, 6*time.Minute).
		Return([]match.Match(nil), errors.New("connection reset")).
		Once()

	if _, err := svc.Scan(ctx, now); err == nil {
		t.Fatal("expected scan error, got nil")
	}

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}
