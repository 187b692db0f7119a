package postgres

import (
	"context"

	"github.com/Mac-Cooper1/Pick6/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *teamRepository {
	return &teamRepository{db: db}
}

// UpsertMany keys on team name so re-running the seed is safe.
func (r *teamRepository) UpsertMany(ctx context.Context, teams []*domain.Team) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"conference"}),
	}).Create(teams).Error
}

func (r *teamRepository) GetAll(ctx context.Context) ([]*domain.Team, error) {
	var teams []*domain.Team
	err := r.db.WithContext(ctx).
		Order("conference ASC, name ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	var team domain.Team
	err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// ListAvailable returns teams not yet drafted in the league.
func (r *teamRepository) ListAvailable(ctx context.Context, leagueID uuid.UUID) ([]*domain.Team, error) {
	var teams []*domain.Team
	drafted := r.db.Model(&domain.DraftPick{}).
		Select("team_id").
		Where("league_id = ?", leagueID)
	err := r.db.WithContext(ctx).
		Where("id NOT IN (?)", drafted).
		Order("conference ASC, name ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}
