package postgres

import (
	"github.com/Mac-Cooper1/Pick6/internal/domain"
	"github.com/Mac-Cooper1/Pick6/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables. The unique indexes on draft_picks, game_results,
	// weekly_scores and league_members are load-bearing for correctness,
	// not just lookups.
	err = db.AutoMigrate(
		&domain.User{},
		&domain.UserSession{},
		&domain.League{},
		&domain.LeagueMember{},
		&domain.Team{},
		&domain.DraftPick{},
		&domain.GameResult{},
		&domain.WeeklyScore{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:    NewUserRepository(db),
		Session: NewSessionRepository(db),
		League:  NewLeagueRepository(db),
		Member:  NewMemberRepository(db),
		Team:    NewTeamRepository(db),
		Pick:    NewPickRepository(db),
		Result:  NewResultRepository(db),
		Score:   NewScoreRepository(db),
	}
}
