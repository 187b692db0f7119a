package service

import (
	"github.com/Mac-Cooper1/Pick6/internal/cache"
	"github.com/Mac-Cooper1/Pick6/internal/config"
	"github.com/Mac-Cooper1/Pick6/internal/repository"
	"github.com/Mac-Cooper1/Pick6/internal/ws"
)

type Services struct {
	Auth    *AuthService
	League  *LeagueService
	Team    *TeamService
	Draft   *DraftService
	Scoring *ScoringService
}

func NewServices(repos *repository.Repositories, standings *cache.StandingsCache, hub *ws.Hub, cfg *config.Config) *Services {
	return &Services{
		Auth:    NewAuthService(repos.User, repos.Session, repos.Member, cfg),
		League:  NewLeagueService(repos.League, repos.Member, repos.Pick),
		Team:    NewTeamService(repos.Team),
		Draft:   NewDraftService(repos.League, repos.Member, repos.Team, repos.Pick, hub),
		Scoring: NewScoringService(repos.Member, repos.Team, repos.Pick, repos.Result, repos.Score, standings, hub),
	}
}
