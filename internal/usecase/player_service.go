package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matchops/club-manager/internal/domain/player"
	"github.com/matchops/club-manager/internal/platform/logging"
)

const (
	defaultPosition = "Forward"
	defaultAge      = 25
)

// AddPlayerInput is the incoming payload for signing a player to a club.
// Position and Age fall back to the historical defaults when omitted.
type AddPlayerInput struct {
	Community string
	Name      string
	ClubName  string
	Value     float64
	Position  string
	Age       int
}

type PlayerService struct {
	playerRepo player.Repository
	logger     *logging.Logger
	now        func() time.Time
}

func NewPlayerService(playerRepo player.Repository, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo: playerRepo,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *PlayerService) AddPlayer(ctx context.Context, input AddPlayerInput) (player.Player, error) {
	input.Community = strings.TrimSpace(input.Community)
	input.Name = strings.TrimSpace(input.Name)
	input.ClubName = strings.TrimSpace(input.ClubName)
	input.Position = strings.TrimSpace(input.Position)

	if input.Community == "" {
		return player.Player{}, fmt.Errorf("%w: community is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if input.ClubName == "" {
		return player.Player{}, fmt.Errorf("%w: club name is required", ErrInvalidInput)
	}
	if input.Value < 0 {
		return player.Player{}, fmt.Errorf("%w: player value cannot be negative", ErrInvalidInput)
	}
	if input.Age < 0 {
		return player.Player{}, fmt.Errorf("%w: player age must be positive", ErrInvalidInput)
	}
	if input.Position == "" {
		input.Position = defaultPosition
	}
	if input.Age == 0 {
		input.Age = defaultAge
	}

	now := s.now().UTC()
	added, err := s.playerRepo.Add(ctx, player.Player{
		Community:   input.Community,
		Name:        input.Name,
		ClubName:    input.ClubName,
		Value:       input.Value,
		Position:    input.Position,
		Age:         input.Age,
		ContractEnd: now.Add(player.ContractTenure),
	})
	if err != nil {
		if errors.Is(err, player.ErrClubNotFound) {
			return player.Player{}, fmt.Errorf("%w: club %s", ErrNotFound, input.ClubName)
		}
		if errors.Is(err, player.ErrAlreadyExists) {
			return player.Player{}, fmt.Errorf("%w: player %s", ErrAlreadyExists, input.Name)
		}
		return player.Player{}, storageErr("add player", err)
	}

	s.logger.InfoContext(ctx, "player added",
		"community", input.Community,
		"player", added.Name,
		"club", added.ClubName,
		"value", added.Value,
	)

	return added, nil
}

func (s *PlayerService) RemovePlayer(ctx context.Context, community, name string) error {
	community = strings.TrimSpace(community)
	name = strings.TrimSpace(name)
	if community == "" || name == "" {
		return fmt.Errorf("%w: community and player name are required", ErrInvalidInput)
	}

	if err := s.playerRepo.Remove(ctx, community, name); err != nil {
		if errors.Is(err, player.ErrNotFound) {
			return fmt.Errorf("%w: player %s", ErrNotFound, name)
		}
		return storageErr("remove player", err)
	}

	s.logger.InfoContext(ctx, "player removed", "community", community, "player", name)

	return nil
}

func (s *PlayerService) UpdateValue(ctx context.Context, community, name string, value float64) error {
	community = strings.TrimSpace(community)
	name = strings.TrimSpace(name)
	if community == "" || name == "" {
		return fmt.Errorf("%w: community and player name are required", ErrInvalidInput)
	}
	if value < 0 {
		return fmt.Errorf("%w: player value cannot be negative", ErrInvalidInput)
	}

	if err := s.playerRepo.UpdateValue(ctx, community, name, value); err != nil {
		if errors.Is(err, player.ErrNotFound) {
			return fmt.Errorf("%w: player %s", ErrNotFound, name)
		}
		return storageErr("update player value", err)
	}

	s.logger.InfoContext(ctx, "player value updated",
		"community", community,
		"player", name,
		"value", value,
	)

	return nil
}

// ListPlayers returns the whole community when clubName is empty, otherwise
// only that club's squad. An unknown club yields an empty list, not an error.
func (s *PlayerService) ListPlayers(ctx context.Context, community, clubName string) ([]player.Player, error) {
	community = strings.TrimSpace(community)
	clubName = strings.TrimSpace(clubName)
	if community == "" {
		return nil, fmt.Errorf("%w: community is required", ErrInvalidInput)
	}

	var (
		players []player.Player
		err     error
	)
	if clubName == "" {
		players, err = s.playerRepo.List(ctx, community)
	} else {
		players, err = s.playerRepo.ListByClub(ctx, community, clubName)
	}
	if err != nil {
		return nil, storageErr("list players", err)
	}

	return players, nil
}
