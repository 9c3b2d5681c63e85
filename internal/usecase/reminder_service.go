package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/matchops/club-manager/internal/domain/match"
	"github.com/matchops/club-manager/internal/platform/logging"
)

// Notifier delivers one match reminder to the community's channel.
type Notifier interface {
	Notify(ctx context.Context, m match.Match) error
}

// ReminderConfig shapes the scan loop. The window is measured from scan time:
// a match is due when its kickoff falls strictly inside (now+Min, now+Max).
type ReminderConfig struct {
	ScanInterval time.Duration
	WindowMin    time.Duration
	WindowMax    time.Duration
	Workers      int
}

const (
	defaultScanInterval    = time.Minute
	defaultWindowMin       = 4 * time.Minute
	defaultWindowMax       = 6 * time.Minute
	defaultDispatchWorkers = 8
)

func (c ReminderConfig) withDefaults() ReminderConfig {
	if c.ScanInterval <= 0 {
		c.ScanInterval = defaultScanInterval
	}
	if c.WindowMin <= 0 {
		c.WindowMin = defaultWindowMin
	}
	if c.WindowMax <= 0 {
		c.WindowMax = defaultWindowMax
	}
	if c.Workers <= 0 {
		c.Workers = defaultDispatchWorkers
	}

	return c
}

// ReminderService periodically scans for matches approaching kickoff and
// dispatches one reminder per match. A match is marked sent even when the
// notifier fails, so a flaky webhook cannot cause repeated reminders.
type ReminderService struct {
	matchRepo match.Repository
	notifier  Notifier
	cfg       ReminderConfig
	logger    *logging.Logger
	now       func() time.Time
}

func NewReminderService(matchRepo match.Repository, notifier Notifier, cfg ReminderConfig, logger *logging.Logger) *ReminderService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ReminderService{
		matchRepo: matchRepo,
		notifier:  notifier,
		cfg:       cfg.withDefaults(),
		logger:    logger,
		now:       time.Now,
	}
}

// Run scans on every tick until ctx is canceled. Scan failures are logged and
// the loop keeps going.
func (s *ReminderService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.ScanInterval)
	defer ticker.Stop()

	s.logger.Info("reminder scheduler started",
		"scan_interval", s.cfg.ScanInterval,
		"window_min", s.cfg.WindowMin,
		"window_max", s.cfg.WindowMax,
		"workers", s.cfg.Workers,
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reminder scheduler stopped")
			return
		case <-ticker.C:
			if _, err := s.Scan(ctx, s.now().UTC()); err != nil {
				s.logger.ErrorContext(ctx, "reminder scan failed", "error", err)
			}
		}
	}
}

// Scan finds every due match and dispatches its reminder on a worker pool,
// returning the number of matches it handled.
func (s *ReminderService) Scan(ctx context.Context, now time.Time) (int, error) {
	due, err := s.matchRepo.DueForReminder(ctx, now, s.cfg.WindowMin, s.cfg.WindowMax)
	if err != nil {
		return 0, fmt.Errorf("scan due matches: %w", err)
	}
	if len(due) == 0 {
		return 0, nil
	}

	pool, err := ants.NewPool(s.cfg.Workers)
	if err != nil {
		return 0, fmt.Errorf("create dispatch pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for _, m := range due {
		m := m
		wg.Add(1)
		task := func() {
			defer wg.Done()
			s.dispatch(ctx, m)
		}
		if err := pool.Submit(task); err != nil {
			// Pool rejected the task, run it on the scan goroutine instead.
			task()
		}
	}
	wg.Wait()

	return len(due), nil
}

func (s *ReminderService) dispatch(ctx context.Context, m match.Match) {
	if err := s.notifier.Notify(ctx, m); err != nil {
		s.logger.WarnContext(ctx, "reminder delivery failed",
			"community", m.Community,
			"match_id", m.ID,
			"error", err,
		)
	}

	if err := s.matchRepo.MarkReminderSent(ctx, m.ID); err != nil {
		s.logger.ErrorContext(ctx, "mark reminder sent failed",
			"community", m.Community,
			"match_id", m.ID,
			"error", err,
		)
		return
	}

	s.logger.InfoContext(ctx, "reminder dispatched",
		"community", m.Community,
		"match_id", m.ID,
		"kickoff", m.Kickoff,
	)
}
