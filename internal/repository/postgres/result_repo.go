package postgres

import (
	"context"

	"github.com/Mac-Cooper1/Pick6/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) *resultRepository {
	return &resultRepository{db: db}
}

// Upsert keeps at most one result per (team, week); re-entering a result
// overwrites the previous one.
func (r *resultRepository) Upsert(ctx context.Context, result *domain.GameResult) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "team_id"}, {Name: "week_number"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"opponent", "result", "was_upset", "points", "game_date", "updated_at",
		}),
	}).Create(result).Error
}

func (r *resultRepository) ListByWeek(ctx context.Context, weekNumber int) ([]*domain.GameResult, error) {
	var results []*domain.GameResult
	err := r.db.WithContext(ctx).
		Preload("Team").
		Where("week_number = ?", weekNumber).
		Order("game_date ASC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepository) ListByTeamsAndWeek(ctx context.Context, teamIDs []uuid.UUID, weekNumber int) ([]*domain.GameResult, error) {
	if len(teamIDs) == 0 {
		return nil, nil
	}
	var results []*domain.GameResult
	err := r.db.WithContext(ctx).
		Where("team_id IN ? AND week_number = ?", teamIDs, weekNumber).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *scoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) Upsert(ctx context.Context, score *domain.WeeklyScore) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "league_id"}, {Name: "user_id"}, {Name: "week_number"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"points", "updated_at"}),
	}).Create(score).Error
}

func (r *scoreRepository) ListByLeagueAndWeek(ctx context.Context, leagueID uuid.UUID, weekNumber int) ([]*domain.WeeklyScore, error) {
	var scores []*domain.WeeklyScore
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("league_id = ? AND week_number = ?", leagueID, weekNumber).
		Order("points DESC").
		Find(&scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *scoreRepository) ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]*domain.WeeklyScore, error) {
	var scores []*domain.WeeklyScore
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("league_id = ?", leagueID).
		Order("week_number ASC").
		Find(&scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}
