package service

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/Mac-Cooper1/Pick6/internal/domain"
	"github.com/Mac-Cooper1/Pick6/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const joinCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var joinCodePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

type LeagueService struct {
	leagueRepo repository.LeagueRepository
	memberRepo repository.MemberRepository
	pickRepo   repository.PickRepository
}

func NewLeagueService(leagueRepo repository.LeagueRepository, memberRepo repository.MemberRepository, pickRepo repository.PickRepository) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
		memberRepo: memberRepo,
		pickRepo:   pickRepo,
	}
}

type CreateLeagueInput struct {
	Name       string
	MaxPlayers int
	Password   string
	JoinCode   string // optional custom code; generated when empty
	CreatedBy  uuid.UUID
}

func (s *LeagueService) CreateLeague(ctx context.Context, input CreateLeagueInput) (*domain.League, error) {
	code := strings.ToUpper(strings.TrimSpace(input.JoinCode))
	if code == "" {
		code = generateJoinCode()
	} else if !joinCodePattern.MatchString(code) {
		return nil, domain.ErrInvalidJoinCode
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	league := &domain.League{
		ID:           uuid.New(),
		Name:         input.Name,
		JoinCode:     code,
		MaxPlayers:   input.MaxPlayers,
		PasswordHash: string(hashed),
		CreatedBy:    input.CreatedBy,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.leagueRepo.Create(ctx, league); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrJoinCodeTaken
		}
		return nil, err
	}

	// Founder is the first member.
	member := &domain.LeagueMember{
		ID:       uuid.New(),
		LeagueID: league.ID,
		UserID:   input.CreatedBy,
		JoinedAt: time.Now(),
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	return league, nil
}

type JoinLeagueInput struct {
	JoinCode string
	Password string
	UserID   uuid.UUID
}

func (s *LeagueService) JoinLeague(ctx context.Context, input JoinLeagueInput) (*domain.League, error) {
	league, err := s.leagueRepo.GetByJoinCode(ctx, input.JoinCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLeagueNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(league.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrWrongPassword
	}

	if _, err := s.memberRepo.GetByLeagueAndUser(ctx, league.ID, input.UserID); err == nil {
		return nil, domain.ErrAlreadyMember
	}

	// Roster is frozen once drafting starts; round numbers are only
	// meaningful with a fixed member count.
	pickCount, err := s.pickRepo.CountByLeague(ctx, league.ID)
	if err != nil {
		return nil, err
	}
	if pickCount > 0 || league.DraftComplete {
		return nil, domain.ErrRosterLocked
	}

	memberCount, err := s.memberRepo.CountByLeague(ctx, league.ID)
	if err != nil {
		return nil, err
	}
	if memberCount >= int64(league.MaxPlayers) {
		return nil, domain.ErrLeagueFull
	}

	member := &domain.LeagueMember{
		ID:       uuid.New(),
		LeagueID: league.ID,
		UserID:   input.UserID,
		JoinedAt: time.Now(),
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrAlreadyMember
		}
		return nil, err
	}

	return league, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID, userID uuid.UUID) (*domain.League, error) {
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
	return league, nil
}

func (s *LeagueService) GetMembers(ctx context.Context, leagueID, userID uuid.UUID) ([]*domain.LeagueMember, error) {
	if err := s.requireMember(ctx, leagueID, userID); err != nil {
		return nil, err
	}
	return s.memberRepo.ListByLeague(ctx, leagueID)
}

func (s *LeagueService) requireMember(ctx context.Context, leagueID, userID uuid.UUID) error {
	if _, err := s.memberRepo.GetByLeagueAndUser(ctx, leagueID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotMember
		}
		return err
	}
	return nil
}

func generateJoinCode() string {
	code := make([]byte, 6)
	for i := range code {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(joinCodeAlphabet))))
		code[i] = joinCodeAlphabet[n.Int64()]
	}
	return string(code)
}
