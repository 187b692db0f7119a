package postgres

import (
	"context"
	"strings"

	"github.com/Mac-Cooper1/Pick6/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type leagueRepository struct {
	db *gorm.DB
}

func NewLeagueRepository(db *gorm.DB) *leagueRepository {
	return &leagueRepository{db: db}
}

func (r *leagueRepository) Create(ctx context.Context, league *domain.League) error {
	return r.db.WithContext(ctx).Create(league).Error
}

func (r *leagueRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.League, error) {
	var league domain.League
	err := r.db.WithContext(ctx).
		Preload("Creator").
		First(&league, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &league, nil
}

func (r *leagueRepository) GetByJoinCode(ctx context.Context, code string) (*domain.League, error) {
	var league domain.League
	err := r.db.WithContext(ctx).
		First(&league, "join_code = ?", strings.ToUpper(code)).Error
	if err != nil {
		return nil, err
	}
	return &league, nil
}

// SetDraftComplete is a one-way latch; there is no way to reopen a draft.
func (r *leagueRepository) SetDraftComplete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&domain.League{}).
		Where("id = ?", id).
		Update("draft_complete", true).Error
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *memberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, member *domain.LeagueMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *memberRepository) GetByLeagueAndUser(ctx context.Context, leagueID, userID uuid.UUID) (*domain.LeagueMember, error) {
	var member domain.LeagueMember
	err := r.db.WithContext(ctx).
		First(&member, "league_id = ? AND user_id = ?", leagueID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListByLeague returns members in join order, which is also the draft order.
func (r *memberRepository) ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]*domain.LeagueMember, error) {
	var members []*domain.LeagueMember
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("league_id = ?", leagueID).
		Order("joined_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.LeagueMember, error) {
	var members []*domain.LeagueMember
	err := r.db.WithContext(ctx).
		Preload("League").
		Where("user_id = ?", userID).
		Order("joined_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) CountByLeague(ctx context.Context, leagueID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.LeagueMember{}).
		Where("league_id = ?", leagueID).
		Count(&count).Error
	return count, err
}
