package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/matchops/club-manager/internal/domain/match"
	"github.com/matchops/club-manager/internal/platform/logging"
)

// KickoffLayout is the wire format for match schedules.
const KickoffLayout = "2006-01-02 15:04"

const defaultMatchDescription = "League Match"

// CreateMatchInput is the incoming payload for scheduling a match. Team IDs
// are opaque role identifiers chosen by the community.
type CreateMatchInput struct {
	Community   string
	Team1       string
	Team2       string
	Kickoff     string
	Description string
}

type MatchService struct {
	matchRepo match.Repository
	logger    *logging.Logger
	now       func() time.Time
}

func NewMatchService(matchRepo match.Repository, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		matchRepo: matchRepo,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *MatchService) CreateMatch(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	input.Community = strings.TrimSpace(input.Community)
	input.Team1 = strings.TrimSpace(input.Team1)
	input.Team2 = strings.TrimSpace(input.Team2)
	input.Kickoff = strings.TrimSpace(input.Kickoff)
	input.Description = strings.TrimSpace(input.Description)

	if input.Community == "" {
		return match.Match{}, fmt.Errorf("%w: community is required", ErrInvalidInput)
	}
	if input.Team1 == "" || input.Team2 == "" {
		return match.Match{}, fmt.Errorf("%w: two teams are required", ErrInvalidInput)
	}

	kickoff, err := time.Parse(KickoffLayout, input.Kickoff)
	if err != nil {
		return match.Match{}, fmt.Errorf("%w: kickoff must look like %q", ErrInvalidInput, KickoffLayout)
	}
	if !kickoff.After(s.now().UTC()) {
		return match.Match{}, fmt.Errorf("%w: kickoff must be in the future", ErrInvalidInput)
	}

	if input.Description == "" {
		input.Description = defaultMatchDescription
	}

	created, err := s.matchRepo.Create(ctx, match.Match{
		Community:   input.Community,
		Team1:       input.Team1,
		Team2:       input.Team2,
		Kickoff:     kickoff,
		Description: input.Description,
	})
	if err != nil {
		return match.Match{}, storageErr("create match", err)
	}

	s.logger.InfoContext(ctx, "match scheduled",
		"community", input.Community,
		"match_id", created.ID,
		"kickoff", created.Kickoff,
	)

	return created, nil
}

func (s *MatchService) ListUpcoming(ctx context.Context, community string) ([]match.Match, error) {
	community = strings.TrimSpace(community)
	if community == "" {
		return nil, fmt.Errorf("%w: community is required", ErrInvalidInput)
	}

	matches, err := s.matchRepo.ListUpcoming(ctx, community, s.now().UTC())
	if err != nil {
		return nil, storageErr("list upcoming matches", err)
	}

	return matches, nil
}
