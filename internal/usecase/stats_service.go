package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/matchops/club-manager/internal/domain/club"
	"github.com/matchops/club-manager/internal/domain/player"
	"github.com/matchops/club-manager/internal/domain/stats"
	"github.com/matchops/club-manager/internal/domain/transfer"
)

const (
	defaultTopLimit     = 10
	defaultHistoryLimit = 20
	maxListLimit        = 100
)

// StatsService serves the read-only leaderboard and aggregate queries.
type StatsService struct {
	statsRepo    stats.Repository
	playerRepo   player.Repository
	clubRepo     club.Repository
	transferRepo transfer.Repository
}

func NewStatsService(statsRepo stats.Repository, playerRepo player.Repository, clubRepo club.Repository, transferRepo transfer.Repository) *StatsService {
	return &StatsService{
		statsRepo:    statsRepo,
		playerRepo:   playerRepo,
		clubRepo:     clubRepo,
		transferRepo: transferRepo,
	}
}

func (s *StatsService) ClubStats(ctx context.Context, community, clubName string) (stats.ClubStats, error) {
	community = strings.TrimSpace(community)
	clubName = strings.TrimSpace(clubName)
	if community == "" || clubName == "" {
		return stats.ClubStats{}, fmt.Errorf("%w: community and club name are required", ErrInvalidInput)
	}

	cs, ok, err := s.statsRepo.ClubStats(ctx, community, clubName)
	if err != nil {
		return stats.ClubStats{}, storageErr("load club stats", err)
	}
	if !ok {
		return stats.ClubStats{}, fmt.Errorf("%w: club %s", ErrNotFound, clubName)
	}

	return cs, nil
}

func (s *StatsService) ServerStats(ctx context.Context, community string) (stats.ServerStats, error) {
	community = strings.TrimSpace(community)
	if community == "" {
		return stats.ServerStats{}, fmt.Errorf("%w: community is required", ErrInvalidInput)
	}

	ss, err := s.statsRepo.ServerStats(ctx, community)
	if err != nil {
		return stats.ServerStats{}, storageErr("load server stats", err)
	}

	return ss, nil
}

func (s *StatsService) TopPlayers(ctx context.Context, community string, limit int) ([]player.Player, error) {
	community = strings.TrimSpace(community)
	if community == "" {
		return nil, fmt.Errorf("%w: community is required", ErrInvalidInput)
	}

	players, err := s.playerRepo.Top(ctx, community, clampLimit(limit, defaultTopLimit))
	if err != nil {
		return nil, storageErr("list top players", err)
	}

	return players, nil
}

func (s *StatsService) RichestClubs(ctx context.Context, community string, limit int) ([]club.RichClub, error) {
	community = strings.TrimSpace(community)
	if community == "" {
		return nil, fmt.Errorf("%w: community is required", ErrInvalidInput)
	}

	clubs, err := s.clubRepo.Richest(ctx, community, clampLimit(limit, defaultTopLimit))
	if err != nil {
		return nil, storageErr("list richest clubs", err)
	}

	return clubs, nil
}

func (s *StatsService) TransferHistory(ctx context.Context, community string, limit int) ([]transfer.Record, error) {
	community = strings.TrimSpace(community)
	if community == "" {
		return nil, fmt.Errorf("%w: community is required", ErrInvalidInput)
	}

	records, err := s.transferRepo.History(ctx, community, clampLimit(limit, defaultHistoryLimit))
	if err != nil {
		return nil, storageErr("list transfer history", err)
	}

	return records, nil
}

func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > maxListLimit {
		return maxListLimit
	}

	return limit
}
