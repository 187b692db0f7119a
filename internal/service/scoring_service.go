package service

import (
	"context"
	"errors"
	"time"

	"github.com/Mac-Cooper1/Pick6/internal/cache"
	"github.com/Mac-Cooper1/Pick6/internal/domain"
	"github.com/Mac-Cooper1/Pick6/internal/repository"
	"github.com/Mac-Cooper1/Pick6/internal/ws"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ScoringService records game results and aggregates them into weekly
// scores and standings.
//
// Weekly scores are recomputed only on an explicit calculate call, never
// as a side effect of a result edit. Standings read the cached scores, so
// they are stale until the next calculate for the affected weeks. That
// two-phase model keeps recomputation cost bounded and predictable.
type ScoringService struct {
	memberRepo repository.MemberRepository
	teamRepo   repository.TeamRepository
	pickRepo   repository.PickRepository
	resultRepo repository.ResultRepository
	scoreRepo  repository.ScoreRepository
	standings  *cache.StandingsCache
	hub        *ws.Hub
}

func NewScoringService(memberRepo repository.MemberRepository, teamRepo repository.TeamRepository, pickRepo repository.PickRepository, resultRepo repository.ResultRepository, scoreRepo repository.ScoreRepository, standings *cache.StandingsCache, hub *ws.Hub) *ScoringService {
	return &ScoringService{
		memberRepo: memberRepo,
		teamRepo:   teamRepo,
		pickRepo:   pickRepo,
		resultRepo: resultRepo,
		scoreRepo:  scoreRepo,
		standings:  standings,
		hub:        hub,
	}
}

type RecordResultInput struct {
	TeamID     uuid.UUID
	WeekNumber int
	Opponent   string
	Result     domain.GameOutcome
	WasUpset   bool
	GameDate   time.Time
}

// RecordResult upserts the result for (team, week), deriving points at
// entry time. It does not touch weekly scores.
func (s *ScoringService) RecordResult(ctx context.Context, input RecordResultInput) (*domain.GameResult, error) {
	if input.Result != domain.OutcomeWin && input.Result != domain.OutcomeLoss {
		return nil, domain.ErrInvalidOutcome
	}
	if input.WeekNumber < 1 {
		return nil, domain.ErrInvalidWeek
	}

	team, err := s.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, err
	}

	result := &domain.GameResult{
		ID:         uuid.New(),
		TeamID:     input.TeamID,
		WeekNumber: input.WeekNumber,
		Opponent:   input.Opponent,
		Result:     input.Result,
		WasUpset:   input.WasUpset,
		Points:     domain.PointsFor(input.Result, input.WasUpset),
		GameDate:   datatypes.Date(input.GameDate),
	}

	if err := s.resultRepo.Upsert(ctx, result); err != nil {
		return nil, err
	}
	result.Team = team
	return result, nil
}

func (s *ScoringService) GetResultsByWeek(ctx context.Context, weekNumber int) ([]*domain.GameResult, error) {
	return s.resultRepo.ListByWeek(ctx, weekNumber)
}

// MemberScore is one member's computed total for a week.
type MemberScore struct {
	UserID   uuid.UUID `json:"userId"`
	UserName string    `json:"userName"`
	Points   int       `json:"points"`
}

// ComputeWeeklyScores sums each member's drafted teams' results for the
// week and upserts one WeeklyScore row per member. Teams without a result
// that week (byes) contribute zero. Idempotent for unchanged results.
func (s *ScoringService) ComputeWeeklyScores(ctx context.Context, leagueID uuid.UUID, weekNumber int) ([]MemberScore, error) {
	if weekNumber < 1 {
		return nil, domain.ErrInvalidWeek
	}

	members, err := s.memberRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, domain.ErrLeagueNotFound
	}

	picks, err := s.pickRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	teamIDs := make([]uuid.UUID, 0, len(picks))
	for _, pick := range picks {
		teamIDs = append(teamIDs, pick.TeamID)
	}

	results, err := s.resultRepo.ListByTeamsAndWeek(ctx, teamIDs, weekNumber)
	if err != nil {
		return nil, err
	}

	pointsByTeam := make(map[uuid.UUID]int, len(results))
	for _, result := range results {
		pointsByTeam[result.TeamID] = result.Points
	}

	totals := make(map[uuid.UUID]int, len(members))
	for _, pick := range picks {
		totals[pick.UserID] += pointsByTeam[pick.TeamID]
	}

	scores := make([]MemberScore, 0, len(members))
	for _, member := range members {
		score := &domain.WeeklyScore{
			ID:         uuid.New(),
			LeagueID:   leagueID,
			UserID:     member.UserID,
			WeekNumber: weekNumber,
			Points:     totals[member.UserID],
		}
		if err := s.scoreRepo.Upsert(ctx, score); err != nil {
			return nil, err
		}

		entry := MemberScore{UserID: member.UserID, Points: score.Points}
		if member.User != nil {
			entry.UserName = member.User.Name
		}
		scores = append(scores, entry)
	}

	s.standings.Invalidate(ctx, leagueID)
	s.hub.Broadcast(leagueID, ws.EventTypeScoresCalculated, ws.ScoresCalculatedPayload{
		LeagueID:   leagueID.String(),
		WeekNumber: weekNumber,
	})

	return scores, nil
}

// WeeklyStandings ranks stored weekly scores. When no scores have been
// computed for the week yet, every member appears with zero points; the
// synthesized rows are not persisted.
func (s *ScoringService) WeeklyStandings(ctx context.Context, leagueID, userID uuid.UUID, weekNumber int, strategy domain.RankStrategy) ([]domain.Standing, error) {
	if err := s.requireMember(ctx, leagueID, userID); err != nil {
		return nil, err
	}

	if strategy == domain.RankOrdinal {
		var cached []domain.Standing
		if s.standings.GetWeekly(ctx, leagueID, weekNumber, &cached) {
			return cached, nil
		}
	}

	scores, err := s.scoreRepo.ListByLeagueAndWeek(ctx, leagueID, weekNumber)
	if err != nil {
		return nil, err
	}

	members, err := s.memberRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	joined := make(map[uuid.UUID]time.Time, len(members))
	for _, member := range members {
		joined[member.UserID] = member.JoinedAt
	}

	var entries []domain.Standing
	if len(scores) == 0 {
		for _, member := range members {
			entry := domain.Standing{UserID: member.UserID, JoinedAt: member.JoinedAt}
			if member.User != nil {
				entry.UserName = member.User.Name
			}
			entries = append(entries, entry)
		}
	} else {
		for _, score := range scores {
			entry := domain.Standing{
				UserID:   score.UserID,
				Points:   score.Points,
				JoinedAt: joined[score.UserID],
			}
			if score.User != nil {
				entry.UserName = score.User.Name
			}
			entries = append(entries, entry)
		}
	}

	ranked := domain.RankStandings(entries, strategy)
	if strategy == domain.RankOrdinal {
		s.standings.SetWeekly(ctx, leagueID, weekNumber, ranked)
	}
	return ranked, nil
}

// OverallStandings sums each member's weekly score rows. It depends on
// weekly scores having been computed; weeks never calculated contribute
// nothing.
func (s *ScoringService) OverallStandings(ctx context.Context, leagueID, userID uuid.UUID, strategy domain.RankStrategy) ([]domain.Standing, error) {
	if err := s.requireMember(ctx, leagueID, userID); err != nil {
		return nil, err
	}

	if strategy == domain.RankOrdinal {
		var cached []domain.Standing
		if s.standings.GetOverall(ctx, leagueID, &cached) {
			return cached, nil
		}
	}

	members, err := s.memberRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	scores, err := s.scoreRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	totals := make(map[uuid.UUID]int, len(members))
	for _, score := range scores {
		totals[score.UserID] += score.Points
	}

	entries := make([]domain.Standing, 0, len(members))
	for _, member := range members {
		entry := domain.Standing{
			UserID:   member.UserID,
			Points:   totals[member.UserID],
			JoinedAt: member.JoinedAt,
		}
		if member.User != nil {
			entry.UserName = member.User.Name
		}
		entries = append(entries, entry)
	}

	ranked := domain.RankStandings(entries, strategy)
	if strategy == domain.RankOrdinal {
		s.standings.SetOverall(ctx, leagueID, ranked)
	}
	return ranked, nil
}

func (s *ScoringService) requireMember(ctx context.Context, leagueID, userID uuid.UUID) error {
	if _, err := s.memberRepo.GetByLeagueAndUser(ctx, leagueID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotMember
		}
		return err
	}
	return nil
}
