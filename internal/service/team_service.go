package service

import (
	"context"

	"github.com/Mac-Cooper1/Pick6/internal/domain"
	"github.com/Mac-Cooper1/Pick6/internal/repository"
)

type TeamService struct {
	teamRepo repository.TeamRepository
}

func NewTeamService(teamRepo repository.TeamRepository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

func (s *TeamService) GetAllTeams(ctx context.Context) ([]*domain.Team, error) {
	return s.teamRepo.GetAll(ctx)
}

// Seed upserts the reference team list; safe to run repeatedly.
func (s *TeamService) Seed(ctx context.Context, teams []*domain.Team) (int, error) {
	if len(teams) == 0 {
		return 0, nil
	}
	if err := s.teamRepo.UpsertMany(ctx, teams); err != nil {
		return 0, err
	}
	return len(teams), nil
}
