package postgres

import (
	"context"

	"github.com/Mac-Cooper1/Pick6/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type pickRepository struct {
	db *gorm.DB
}

func NewPickRepository(db *gorm.DB) *pickRepository {
	return &pickRepository{db: db}
}

// Create relies on the (league_id, team_id) unique index to arbitrate
// concurrent picks of the same team. The connection is opened with
// TranslateError, so a violation surfaces as gorm.ErrDuplicatedKey.
func (r *pickRepository) Create(ctx context.Context, pick *domain.DraftPick) error {
	return r.db.WithContext(ctx).Create(pick).Error
}

func (r *pickRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.DraftPick, error) {
	var pick domain.DraftPick
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Team").
		First(&pick, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pick, nil
}

func (r *pickRepository) ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]*domain.DraftPick, error) {
	var picks []*domain.DraftPick
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Team").
		Where("league_id = ?", leagueID).
		Order("pick_number ASC").
		Find(&picks).Error
	if err != nil {
		return nil, err
	}
	return picks, nil
}

func (r *pickRepository) ExistsByLeagueAndTeam(ctx context.Context, leagueID, teamID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.DraftPick{}).
		Where("league_id = ? AND team_id = ?", leagueID, teamID).
		Count(&count).Error
	return count > 0, err
}

func (r *pickRepository) CountByLeague(ctx context.Context, leagueID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.DraftPick{}).
		Where("league_id = ?", leagueID).
		Count(&count).Error
	return count, err
}

func (r *pickRepository) CountByLeagueAndUser(ctx context.Context, leagueID, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.DraftPick{}).
		Where("league_id = ? AND user_id = ?", leagueID, userID).
		Count(&count).Error
	return count, err
}
