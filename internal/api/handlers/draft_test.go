package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/Mac-Cooper1/Pick6/internal/testutil"
	"github.com/Mac-Cooper1/Pick6/internal/ws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pickResponse struct {
	ID         string `json:"id"`
	PickNumber int    `json:"pickNumber"`
	Round      int    `json:"round"`
	User       struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"user"`
	Team struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Conference string `json:"conference"`
	} `json:"team"`
}

func TestDraftHandler_SubmitPick(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().WithName("drafter").BuildAndAuthenticate(t, ts)
	league, _ := testutil.NewLeagueBuilder().WithCreator(user).Build(t, ts.DB.DB)
	teams := testutil.SeedTeams(t, ts.DB.DB, 2)

	picksURL := ts.APIURL("/leagues/" + league.ID.String() + "/draft/picks")

	t.Run("successful pick", func(t *testing.T) {
		resp := testutil.DoAuthenticatedRequest(t, "POST", picksURL, map[string]string{
			"teamId": teams[0].ID.String(),
		}, token)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusCreated)

		var pick pickResponse
		testutil.AssertJSONResponse(t, resp, &pick)
		assert.Equal(t, 1, pick.PickNumber)
		assert.Equal(t, 1, pick.Round)
		assert.Equal(t, user.ID.String(), pick.User.ID)
		assert.Equal(t, "drafter", pick.User.Name)
		assert.Equal(t, teams[0].Name, pick.Team.Name)
	})

	t.Run("team already drafted", func(t *testing.T) {
		resp := testutil.DoAuthenticatedRequest(t, "POST", picksURL, map[string]string{
			"teamId": teams[0].ID.String(),
		}, token)
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "already drafted")
	})

	t.Run("non-member", func(t *testing.T) {
		_, outsiderToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
		resp := testutil.DoAuthenticatedRequest(t, "POST", picksURL, map[string]string{
			"teamId": teams[1].ID.String(),
		}, outsiderToken)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusForbidden)
	})

	t.Run("missing team id", func(t *testing.T) {
		resp := testutil.DoAuthenticatedRequest(t, "POST", picksURL, map[string]string{}, token)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
	})
}

func TestDraftHandler_GetDraftState(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().WithName("statewatcher").BuildAndAuthenticate(t, ts)
	league, _ := testutil.NewLeagueBuilder().WithCreator(user).Build(t, ts.DB.DB)

	resp := testutil.DoAuthenticatedRequest(t, "GET", ts.APIURL("/leagues/"+league.ID.String()+"/draft"), nil, token)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var state struct {
		DraftComplete bool `json:"draftComplete"`
		MemberCount   int  `json:"memberCount"`
		TotalPicks    int  `json:"totalPicks"`
		NextPick      int  `json:"nextPick"`
		NextRound     int  `json:"nextRound"`
		OnTheClock    *struct {
			ID string `json:"id"`
		} `json:"onTheClock"`
	}
	testutil.AssertJSONResponse(t, resp, &state)
	assert.False(t, state.DraftComplete)
	assert.Equal(t, 1, state.MemberCount)
	assert.Equal(t, 1, state.NextPick)
	require.NotNil(t, state.OnTheClock)
	assert.Equal(t, user.ID.String(), state.OnTheClock.ID)
}

func TestDraftHandler_AvailableTeams(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	league, _ := testutil.NewLeagueBuilder().WithCreator(user).Build(t, ts.DB.DB)
	teams := testutil.SeedTeams(t, ts.DB.DB, 3)

	resp := testutil.DoAuthenticatedRequest(t, "POST", ts.APIURL("/leagues/"+league.ID.String()+"/draft/picks"), map[string]string{
		"teamId": teams[0].ID.String(),
	}, token)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = testutil.DoAuthenticatedRequest(t, "GET", ts.APIURL("/leagues/"+league.ID.String()+"/draft/available"), nil, token)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var available []struct {
		ID string `json:"id"`
	}
	testutil.AssertJSONResponse(t, resp, &available)
	require.Len(t, available, 2)
	for _, team := range available {
		assert.NotEqual(t, teams[0].ID.String(), team.ID)
	}
}

func TestDraftHandler_LiveFeed(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().WithName("watcher").BuildAndAuthenticate(t, ts)
	league, _ := testutil.NewLeagueBuilder().WithCreator(user).Build(t, ts.DB.DB)
	teams := testutil.SeedTeams(t, ts.DB.DB, 1)

	client := testutil.NewWSClient(t, ts.WebSocketURL(league.ID.String(), token))

	resp := testutil.DoAuthenticatedRequest(t, "POST", ts.APIURL("/leagues/"+league.ID.String()+"/draft/picks"), map[string]string{
		"teamId": teams[0].ID.String(),
	}, token)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	event := client.WaitForEvent(ws.EventTypePickMade, 5*time.Second)
	require.NotNil(t, event)

	var payload ws.PickMadePayload
	require.NoError(t, event.DecodePayload(&payload))
	assert.Equal(t, 1, payload.PickNumber)
	assert.Equal(t, user.ID.String(), payload.UserID)
	assert.Equal(t, teams[0].Name, payload.TeamName)
}
