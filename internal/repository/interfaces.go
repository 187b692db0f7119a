package repository

import (
	"context"

	"github.com/Mac-Cooper1/Pick6/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.UserSession) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type LeagueRepository interface {
	Create(ctx context.Context, league *domain.League) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.League, error)
	GetByJoinCode(ctx context.Context, code string) (*domain.League, error)
	SetDraftComplete(ctx context.Context, id uuid.UUID) error
}

type MemberRepository interface {
	Create(ctx context.Context, member *domain.LeagueMember) error
	GetByLeagueAndUser(ctx context.Context, leagueID, userID uuid.UUID) (*domain.LeagueMember, error)
	ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]*domain.LeagueMember, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.LeagueMember, error)
	CountByLeague(ctx context.Context, leagueID uuid.UUID) (int64, error)
}

type TeamRepository interface {
	UpsertMany(ctx context.Context, teams []*domain.Team) error
	GetAll(ctx context.Context) ([]*domain.Team, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Team, error)
	ListAvailable(ctx context.Context, leagueID uuid.UUID) ([]*domain.Team, error)
}

type PickRepository interface {
	Create(ctx context.Context, pick *domain.DraftPick) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DraftPick, error)
	ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]*domain.DraftPick, error)
	ExistsByLeagueAndTeam(ctx context.Context, leagueID, teamID uuid.UUID) (bool, error)
	CountByLeague(ctx context.Context, leagueID uuid.UUID) (int64, error)
	CountByLeagueAndUser(ctx context.Context, leagueID, userID uuid.UUID) (int64, error)
}

type ResultRepository interface {
	Upsert(ctx context.Context, result *domain.GameResult) error
	ListByWeek(ctx context.Context, weekNumber int) ([]*domain.GameResult, error)
	ListByTeamsAndWeek(ctx context.Context, teamIDs []uuid.UUID, weekNumber int) ([]*domain.GameResult, error)
}

type ScoreRepository interface {
	Upsert(ctx context.Context, score *domain.WeeklyScore) error
	ListByLeagueAndWeek(ctx context.Context, leagueID uuid.UUID, weekNumber int) ([]*domain.WeeklyScore, error)
	ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]*domain.WeeklyScore, error)
}

type Repositories struct {
	User    UserRepository
	Session SessionRepository
	League  LeagueRepository
	Member  MemberRepository
	Team    TeamRepository
	Pick    PickRepository
	Result  ResultRepository
	Score   ScoreRepository
}
