package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/Mac-Cooper1/Pick6/internal/domain"
	"github.com/Mac-Cooper1/Pick6/internal/repository/postgres"
	"github.com/Mac-Cooper1/Pick6/internal/service"
	"github.com/Mac-Cooper1/Pick6/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeagueService(testDB *testutil.TestDB) *service.LeagueService {
	repos := postgres.NewRepositories(testDB.DB)
	return service.NewLeagueService(repos.League, repos.Member, repos.Pick)
}

func TestLeagueService_CreateLeague(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	leagueService := newLeagueService(testDB)
	ctx := context.Background()

	creator, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	t.Run("generates a join code when none is given", func(t *testing.T) {
		league, err := leagueService.CreateLeague(ctx, service.CreateLeagueInput{
			Name:       "Saturday Crew",
			MaxPlayers: 6,
			Password:   "secret",
			CreatedBy:  creator.ID,
		})
		require.NoError(t, err)
		assert.Regexp(t, `^[A-Z0-9]{6}$`, league.JoinCode)
		assert.False(t, league.DraftComplete)
	})

	t.Run("founder becomes the first member", func(t *testing.T) {
		repos := postgres.NewRepositories(testDB.DB)
		league, err := leagueService.CreateLeague(ctx, service.CreateLeagueInput{
			Name:       "Founders",
			MaxPlayers: 4,
			Password:   "secret",
			CreatedBy:  creator.ID,
		})
		require.NoError(t, err)

		members, err := repos.Member.ListByLeague(ctx, league.ID)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, creator.ID, members[0].UserID)
	})

	t.Run("custom join code is uppercased", func(t *testing.T) {
		league, err := leagueService.CreateLeague(ctx, service.CreateLeagueInput{
			Name:       "Custom Code",
			MaxPlayers: 6,
			Password:   "secret",
			JoinCode:   "abc123",
			CreatedBy:  creator.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "ABC123", league.JoinCode)
	})

	t.Run("rejects a malformed join code", func(t *testing.T) {
		_, err := leagueService.CreateLeague(ctx, service.CreateLeagueInput{
			Name:       "Bad Code",
			MaxPlayers: 6,
			Password:   "secret",
			JoinCode:   "nope!",
			CreatedBy:  creator.ID,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidJoinCode)
	})

	t.Run("rejects a taken join code", func(t *testing.T) {
		_, err := leagueService.CreateLeague(ctx, service.CreateLeagueInput{
			Name:       "Copycat",
			MaxPlayers: 6,
			Password:   "secret",
			JoinCode:   "ABC123",
			CreatedBy:  creator.ID,
		})
		assert.ErrorIs(t, err, domain.ErrJoinCodeTaken)
	})
}

func TestLeagueService_JoinLeague(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	leagueService := newLeagueService(testDB)
	ctx := context.Background()

	league, rawPassword := testutil.NewLeagueBuilder().
		WithMaxPlayers(2).
		Build(t, testDB.DB)

	joiner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	t.Run("unknown join code", func(t *testing.T) {
		_, err := leagueService.JoinLeague(ctx, service.JoinLeagueInput{
			JoinCode: "ZZZZZZ",
			Password: rawPassword,
			UserID:   joiner.ID,
		})
		assert.ErrorIs(t, err, domain.ErrLeagueNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := leagueService.JoinLeague(ctx, service.JoinLeagueInput{
			JoinCode: league.JoinCode,
			Password: "wrongpass",
			UserID:   joiner.ID,
		})
		assert.ErrorIs(t, err, domain.ErrWrongPassword)
	})

	t.Run("successful join", func(t *testing.T) {
		joined, err := leagueService.JoinLeague(ctx, service.JoinLeagueInput{
			JoinCode: league.JoinCode,
			Password: rawPassword,
			UserID:   joiner.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, league.ID, joined.ID)
	})

	t.Run("joining twice", func(t *testing.T) {
		_, err := leagueService.JoinLeague(ctx, service.JoinLeagueInput{
			JoinCode: league.JoinCode,
			Password: rawPassword,
			UserID:   joiner.ID,
		})
		assert.ErrorIs(t, err, domain.ErrAlreadyMember)
	})

	t.Run("full league", func(t *testing.T) {
		// MaxPlayers is 2 and both seats are taken.
		late, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		_, err := leagueService.JoinLeague(ctx, service.JoinLeagueInput{
			JoinCode: league.JoinCode,
			Password: rawPassword,
			UserID:   late.ID,
		})
		assert.ErrorIs(t, err, domain.ErrLeagueFull)
	})
}

func TestLeagueService_JoinLeague_RosterLocked(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	leagueService := newLeagueService(testDB)
	ctx := context.Background()

	creator, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	league, rawPassword := testutil.NewLeagueBuilder().
		WithCreator(creator).
		WithMaxPlayers(6).
		Build(t, testDB.DB)

	// A recorded pick freezes the roster even with open seats.
	team := testutil.NewTeamBuilder().Build(t, testDB.DB)
	pick := &domain.DraftPick{
		ID:         uuid.New(),
		LeagueID:   league.ID,
		UserID:     creator.ID,
		TeamID:     team.ID,
		PickNumber: 1,
		Round:      1,
	}
	require.NoError(t, testDB.DB.Create(pick).Error)

	joiner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	_, err := leagueService.JoinLeague(ctx, service.JoinLeagueInput{
		JoinCode: league.JoinCode,
		Password: rawPassword,
		UserID:   joiner.ID,
	})
	assert.ErrorIs(t, err, domain.ErrRosterLocked)
}

func TestLeagueService_GetLeague(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	leagueService := newLeagueService(testDB)
	ctx := context.Background()

	creator, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	league, _ := testutil.NewLeagueBuilder().WithCreator(creator).Build(t, testDB.DB)

	t.Run("member can read the league", func(t *testing.T) {
		got, err := leagueService.GetLeague(ctx, league.ID, creator.ID)
		require.NoError(t, err)
		assert.Equal(t, league.ID, got.ID)
	})

	t.Run("non-member is rejected", func(t *testing.T) {
		outsider, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		_, err := leagueService.GetLeague(ctx, league.ID, outsider.ID)
		assert.ErrorIs(t, err, domain.ErrNotMember)
	})
}

func TestLeagueService_GetMembers_DraftOrder(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	leagueService := newLeagueService(testDB)
	ctx := context.Background()

	creator, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	league, _ := testutil.NewLeagueBuilder().
		WithCreator(creator).
		WithMaxPlayers(6).
		Build(t, testDB.DB)

	joined := []uuid.UUID{creator.ID}
	for i := 0; i < 3; i++ {
		user, _ := testutil.NewUserBuilder().
			WithName(fmt.Sprintf("member-%d", i)).
			Build(t, testDB.DB)
		testutil.AddMember(t, testDB.DB, league, user)
		joined = append(joined, user.ID)
	}

	members, err := leagueService.GetMembers(ctx, league.ID, creator.ID)
	require.NoError(t, err)
	require.Len(t, members, 4)

	// Members come back in join order, which is the draft order.
	for i, member := range members {
		assert.Equal(t, joined[i], member.UserID)
	}
}
