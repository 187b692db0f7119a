package service

import (
	"context"
	"errors"

	"github.com/Mac-Cooper1/Pick6/internal/domain"
	"github.com/Mac-Cooper1/Pick6/internal/repository"
	"github.com/Mac-Cooper1/Pick6/internal/ws"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DraftService is the draft ledger: it validates and records picks,
// derives pick number and round, and latches league completion.
//
// Turn order is advisory. Any member may pick at any time while under the
// six-team cap (asynchronous draft); DraftState exposes who would be on
// the clock if members pick in join order.
type DraftService struct {
	leagueRepo repository.LeagueRepository
	memberRepo repository.MemberRepository
	teamRepo   repository.TeamRepository
	pickRepo   repository.PickRepository
	hub        *ws.Hub
}

func NewDraftService(leagueRepo repository.LeagueRepository, memberRepo repository.MemberRepository, teamRepo repository.TeamRepository, pickRepo repository.PickRepository, hub *ws.Hub) *DraftService {
	return &DraftService{
		leagueRepo: leagueRepo,
		memberRepo: memberRepo,
		teamRepo:   teamRepo,
		pickRepo:   pickRepo,
		hub:        hub,
	}
}

type SubmitPickInput struct {
	LeagueID uuid.UUID
	UserID   uuid.UUID
	TeamID   uuid.UUID
}

func (s *DraftService) SubmitPick(ctx context.Context, input SubmitPickInput) (*domain.DraftPick, error) {
	if _, err := s.memberRepo.GetByLeagueAndUser(ctx, input.LeagueID, input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotMember
		}
		return nil, err
	}

	if _, err := s.teamRepo.GetByID(ctx, input.TeamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, err
	}

	taken, err := s.pickRepo.ExistsByLeagueAndTeam(ctx, input.LeagueID, input.TeamID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrTeamAlreadyDrafted
	}

	userPicks, err := s.pickRepo.CountByLeagueAndUser(ctx, input.LeagueID, input.UserID)
	if err != nil {
		return nil, err
	}
	if userPicks >= domain.PicksPerMember {
		return nil, domain.ErrPickLimitReached
	}

	// Member count is read once and used for both the round computation
	// and the completion check, so the two can't disagree mid-request.
	memberCount, err := s.memberRepo.CountByLeague(ctx, input.LeagueID)
	if err != nil {
		return nil, err
	}
	if memberCount < 1 {
		return nil, domain.ErrLeagueNotFound
	}

	totalPicks, err := s.pickRepo.CountByLeague(ctx, input.LeagueID)
	if err != nil {
		return nil, err
	}
	pickNumber := int(totalPicks) + 1

	pick := &domain.DraftPick{
		ID:         uuid.New(),
		LeagueID:   input.LeagueID,
		UserID:     input.UserID,
		TeamID:     input.TeamID,
		PickNumber: pickNumber,
		Round:      domain.RoundOf(pickNumber, int(memberCount)),
	}

	if err := s.pickRepo.Create(ctx, pick); err != nil {
		// The unique index is the arbiter for concurrent picks of the
		// same team; the existence check above only races.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrTeamAlreadyDrafted
		}
		return nil, err
	}

	// Re-read with user and team for the denormalized response.
	created, err := s.pickRepo.GetByID(ctx, pick.ID)
	if err != nil {
		return nil, err
	}

	s.broadcastPick(created)

	total, err := s.pickRepo.CountByLeague(ctx, input.LeagueID)
	if err != nil {
		return nil, err
	}
	if total == memberCount*domain.PicksPerMember {
		if err := s.leagueRepo.SetDraftComplete(ctx, input.LeagueID); err != nil {
			return nil, err
		}
		s.hub.Broadcast(input.LeagueID, ws.EventTypeDraftCompleted, ws.DraftCompletedPayload{
			LeagueID:   input.LeagueID.String(),
			TotalPicks: int(total),
		})
	}

	return created, nil
}

func (s *DraftService) broadcastPick(pick *domain.DraftPick) {
	payload := ws.PickMadePayload{
		PickID:     pick.ID.String(),
		PickNumber: pick.PickNumber,
		Round:      pick.Round,
		UserID:     pick.UserID.String(),
		TeamID:     pick.TeamID.String(),
	}
	if pick.User != nil {
		payload.UserName = pick.User.Name
	}
	if pick.Team != nil {
		payload.TeamName = pick.Team.Name
		payload.Conference = pick.Team.Conference
	}
	s.hub.Broadcast(pick.LeagueID, ws.EventTypePickMade, payload)
}

func (s *DraftService) GetPicks(ctx context.Context, leagueID, userID uuid.UUID) ([]*domain.DraftPick, error) {
	if err := s.requireMember(ctx, leagueID, userID); err != nil {
		return nil, err
	}
	return s.pickRepo.ListByLeague(ctx, leagueID)
}

func (s *DraftService) GetAvailableTeams(ctx context.Context, leagueID, userID uuid.UUID) ([]*domain.Team, error) {
	if err := s.requireMember(ctx, leagueID, userID); err != nil {
		return nil, err
	}
	return s.teamRepo.ListAvailable(ctx, leagueID)
}

// DraftState summarizes draft progress plus the advisory on-the-clock
// member for the next pick.
type DraftState struct {
	League      *domain.League
	MemberCount int
	TotalPicks  int
	NextPick    int
	NextRound   int
	OnTheClock  *domain.LeagueMember
}

func (s *DraftService) GetDraftState(ctx context.Context, leagueID, userID uuid.UUID) (*DraftState, error) {
	if err := s.requireMember(ctx, leagueID, userID); err != nil {
		return nil, err
	}

	league, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLeagueNotFound
		}
		return nil, err
	}

	members, err := s.memberRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	totalPicks, err := s.pickRepo.CountByLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	state := &DraftState{
		League:      league,
		MemberCount: len(members),
		TotalPicks:  int(totalPicks),
	}

	if !league.DraftComplete && len(members) > 0 {
		state.NextPick = int(totalPicks) + 1
		state.NextRound = domain.RoundOf(state.NextPick, len(members))
		state.OnTheClock = members[domain.PickerIndex(state.NextPick, len(members))]
	}

	return state, nil
}

func (s *DraftService) requireMember(ctx context.Context, leagueID, userID uuid.UUID) error {
	if _, err := s.memberRepo.GetByLeagueAndUser(ctx, leagueID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotMember
		}
		return err
	}
	return nil
}
