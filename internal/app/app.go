// Package app wires configuration, storage, services and transports into a
// runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sourcegraph/conc"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/matchops/club-manager/internal/config"
	"github.com/matchops/club-manager/internal/domain/club"
	"github.com/matchops/club-manager/internal/domain/community"
	"github.com/matchops/club-manager/internal/domain/match"
	"github.com/matchops/club-manager/internal/domain/player"
	"github.com/matchops/club-manager/internal/domain/settings"
	"github.com/matchops/club-manager/internal/domain/stats"
	"github.com/matchops/club-manager/internal/domain/transfer"
	"github.com/matchops/club-manager/internal/infrastructure/notify"
	"github.com/matchops/club-manager/internal/infrastructure/repository/memory"
	"github.com/matchops/club-manager/internal/infrastructure/repository/postgres"
	"github.com/matchops/club-manager/internal/interfaces/httpapi"
	idgen "github.com/matchops/club-manager/internal/platform/id"
	"github.com/matchops/club-manager/internal/platform/keepalive"
	"github.com/matchops/club-manager/internal/platform/logging"
	"github.com/matchops/club-manager/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

type repositories struct {
	clubs        club.Repository
	players      player.Repository
	matches      match.Repository
	transferExec transfer.Executor
	transferLog  transfer.Repository
	settings     settings.Repository
	purger       community.Purger
	stats        stats.Repository
}

// App owns the HTTP server and the background loops (reminder scheduler,
// keepalive pinger).
type App struct {
	Server *http.Server

	cfg      config.Config
	logger   *logging.Logger
	db       *sqlx.DB
	reminder *usecase.ReminderService
	pinger   *keepalive.Pinger
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var (
		repos repositories
		db    *sqlx.DB
		err   error
	)
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		repos = newMemoryRepositories()
		logger.Warn("using in-memory store, data will not survive a restart")
	default:
		db, err = connectDB(cfg)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		repos = newPostgresRepositories(db)
	}

	clubSvc := usecase.NewClubService(repos.clubs, logger)
	playerSvc := usecase.NewPlayerService(repos.players, logger)
	matchSvc := usecase.NewMatchService(repos.matches, logger)
	transferSvc := usecase.NewTransferService(repos.transferExec, repos.transferLog, logger)
	statsSvc := usecase.NewStatsService(repos.stats, repos.players, repos.clubs, repos.transferLog)
	resetSvc := usecase.NewResetService(repos.purger, repos.settings, idgen.NewRandomGenerator(), logger)

	notifier := notify.NewWebhookNotifier(notify.WebhookNotifierConfig{
		DefaultURL: cfg.ReminderWebhookURL,
		Timeout:    cfg.ReminderWebhookTimeout,
	}, repos.settings, logger)

	reminderSvc := usecase.NewReminderService(repos.matches, notifier, usecase.ReminderConfig{
		ScanInterval: cfg.ReminderScanInterval,
		WindowMin:    cfg.ReminderWindowMin,
		WindowMax:    cfg.ReminderWindowMax,
		Workers:      cfg.ReminderDispatchWorkers,
	}, logger)

	var pinger *keepalive.Pinger
	if cfg.KeepaliveEnabled {
		pinger = keepalive.NewPinger(keepalive.Config{
			URL:      cfg.KeepaliveURL,
			Interval: cfg.KeepaliveInterval,
			Timeout:  cfg.KeepaliveTimeout,
		}, logger)
	}

	handler := httpapi.NewHandler(
		clubSvc, playerSvc, matchSvc, transferSvc, statsSvc, resetSvc,
		httpapi.ServiceInfo{
			Name:        cfg.ServiceName,
			Version:     cfg.ServiceVersion,
			Environment: cfg.AppEnv,
			StoreDriver: cfg.StoreDriver,
		},
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.AdminToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &App{
		Server:   server,
		cfg:      cfg,
		logger:   logger,
		db:       db,
		reminder: reminderSvc,
		pinger:   pinger,
	}, nil
}

// Run serves HTTP and the background loops until ctx is canceled, then shuts
// everything down gracefully.
func (a *App) Run(ctx context.Context) error {
	bgCtx, cancelBG := context.WithCancel(context.Background())
	defer cancelBG()

	var wg conc.WaitGroup
	wg.Go(func() {
		a.reminder.Run(bgCtx)
	})
	if a.pinger != nil {
		wg.Go(func() {
			a.pinger.Run(bgCtx)
		})
	}

	serveErr := make(chan error, 1)
	wg.Go(func() {
		a.logger.Info("http server starting", "addr", a.cfg.HTTPAddr)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	})

	var runErr error
	select {
	case <-ctx.Done():
	case err, ok := <-serveErr:
		if ok {
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.Server.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("graceful shutdown: %w", err)
	}

	cancelBG()
	wg.Wait()

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("close database", "error", err)
		}
	}

	return runErr
}

func connectDB(cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Connect("postgres", cfg.DBURL,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
	)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)

	return db, nil
}

func newPostgresRepositories(db *sqlx.DB) repositories {
	transferRepo := postgres.NewTransferRepository(db)
	return repositories{
		clubs:        postgres.NewClubRepository(db),
		players:      postgres.NewPlayerRepository(db),
		matches:      postgres.NewMatchRepository(db),
		transferExec: transferRepo,
		transferLog:  transferRepo,
		settings:     postgres.NewSettingsRepository(db),
		purger:       postgres.NewCommunityRepository(db),
		stats:        postgres.NewStatsRepository(db),
	}
}

func newMemoryRepositories() repositories {
	ds := memory.NewDataset()
	transferRepo := memory.NewTransferRepository(ds)
	return repositories{
		clubs:        memory.NewClubRepository(ds),
		players:      memory.NewPlayerRepository(ds),
		matches:      memory.NewMatchRepository(ds),
		transferExec: transferRepo,
		transferLog:  transferRepo,
		settings:     memory.NewSettingsRepository(ds),
		purger:       memory.NewCommunityRepository(ds),
		stats:        memory.NewStatsRepository(ds),
	}
}
