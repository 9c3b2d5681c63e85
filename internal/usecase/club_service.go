package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/matchops/club-manager/internal/domain/club"
	"github.com/matchops/club-manager/internal/platform/logging"
)

// CreateClubInput is the incoming payload for club creation.
type CreateClubInput struct {
	Community string
	Name      string
	Budget    float64
}

type ClubService struct {
	clubRepo club.Repository
	logger   *logging.Logger
}

func NewClubService(clubRepo club.Repository, logger *logging.Logger) *ClubService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ClubService{
		clubRepo: clubRepo,
		logger:   logger,
	}
}

func (s *ClubService) CreateClub(ctx context.Context, input CreateClubInput) (club.Club, error) {
	input.Community = strings.TrimSpace(input.Community)
	input.Name = strings.TrimSpace(input.Name)

	if input.Community == "" {
		return club.Club{}, fmt.Errorf("%w: community is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return club.Club{}, fmt.Errorf("%w: club name is required", ErrInvalidInput)
	}
	if input.Budget < 0 {
		return club.Club{}, fmt.Errorf("%w: budget cannot be negative", ErrInvalidInput)
	}

	created, err := s.clubRepo.Create(ctx, club.Club{
		Community: input.Community,
		Name:      input.Name,
		Budget:    input.Budget,
	})
	if err != nil {
		if errors.Is(err, club.ErrAlreadyExists) {
			return club.Club{}, fmt.Errorf("%w: club %s", ErrAlreadyExists, input.Name)
		}
		return club.Club{}, storageErr("create club", err)
	}

	s.logger.InfoContext(ctx, "club created",
		"community", input.Community,
		"club", created.Name,
		"budget", created.Budget,
	)

	return created, nil
}

func (s *ClubService) DeleteClub(ctx context.Context, community, name string) error {
	community = strings.TrimSpace(community)
	name = strings.TrimSpace(name)
	if community == "" || name == "" {
		return fmt.Errorf("%w: community and club name are required", ErrInvalidInput)
	}

	if err := s.clubRepo.Delete(ctx, community, name); err != nil {
		if errors.Is(err, club.ErrNotFound) {
			return fmt.Errorf("%w: club %s", ErrNotFound, name)
		}
		return storageErr("delete club", err)
	}

	s.logger.InfoContext(ctx, "club deleted", "community", community, "club", name)

	return nil
}

func (s *ClubService) ListClubs(ctx context.Context, community string) ([]club.Club, error) {
	community = strings.TrimSpace(community)
	if community == "" {
		return nil, fmt.Errorf("%w: community is required", ErrInvalidInput)
	}

	clubs, err := s.clubRepo.List(ctx, community)
	if err != nil {
		return nil, storageErr("list clubs", err)
	}

	return clubs, nil
}

func (s *ClubService) UpdateBudget(ctx context.Context, community, name string, budget float64) error {
	community = strings.TrimSpace(community)
	name = strings.TrimSpace(name)
	if community == "" || name == "" {
		return fmt.Errorf("%w: community and club name are required", ErrInvalidInput)
	}
	if budget < 0 {
		return fmt.Errorf("%w: budget cannot be negative", ErrInvalidInput)
	}

	if err := s.clubRepo.UpdateBudget(ctx, community, name, budget); err != nil {
		if errors.Is(err, club.ErrNotFound) {
			return fmt.Errorf("%w: club %s", ErrNotFound, name)
		}
		return storageErr("update club budget", err)
	}

	s.logger.InfoContext(ctx, "club budget updated",
		"community", community,
		"club", name,
		"budget", budget,
	)

	return nil
}
