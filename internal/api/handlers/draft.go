package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Mac-Cooper1/Pick6/internal/api/middleware"
	"github.com/Mac-Cooper1/Pick6/internal/domain"
	"github.com/Mac-Cooper1/Pick6/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type DraftHandler struct {
	draftService *service.DraftService
	teamService  *service.TeamService
}

func NewDraftHandler(draftService *service.DraftService, teamService *service.TeamService) *DraftHandler {
	return &DraftHandler{
		draftService: draftService,
		teamService:  teamService,
	}
}

type SubmitPickRequest struct {
	TeamID string `json:"teamId"`
}

type TeamResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Conference string `json:"conference"`
}

type PickUserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PickResponse struct {
	ID         string           `json:"id"`
	PickNumber int              `json:"pickNumber"`
	Round      int              `json:"round"`
	User       PickUserResponse `json:"user"`
	Team       TeamResponse     `json:"team"`
}

func pickResponse(pick *domain.DraftPick) PickResponse {
	resp := PickResponse{
		ID:         pick.ID.String(),
		PickNumber: pick.PickNumber,
		Round:      pick.Round,
		User:       PickUserResponse{ID: pick.UserID.String()},
		Team:       TeamResponse{ID: pick.TeamID.String()},
	}
	if pick.User != nil {
		resp.User.Name = pick.User.Name
	}
	if pick.Team != nil {
		resp.Team.Name = pick.Team.Name
		resp.Team.Conference = pick.Team.Conference
	}
	return resp
}

func (h *DraftHandler) SubmitPick(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "Missing user identity")
		return
	}

	leagueID, err := uuid.Parse(chi.URLParam(r, "leagueId"))
	if err != nil {
		writeValidationError(w, "Invalid league ID")
		return
	}

	var req SubmitPickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "Invalid request body")
		return
	}

	teamID, err := uuid.Parse(req.TeamID)
	if err != nil {
		writeValidationError(w, "Team ID is required")
		return
	}

	pick, err := h.draftService.SubmitPick(r.Context(), service.SubmitPickInput{
		LeagueID: leagueID,
		UserID:   userID,
		TeamID:   teamID,
	})
	if err != nil {
		writeServiceError(w, "draft.SubmitPick", err)
		return
	}

	writeJSON(w, http.StatusCreated, pickResponse(pick))
}

func (h *DraftHandler) GetPicks(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "Missing user identity")
		return
	}

	leagueID, err := uuid.Parse(chi.URLParam(r, "leagueId"))
	if err != nil {
		writeValidationError(w, "Invalid league ID")
		return
	}

	picks, err := h.draftService.GetPicks(r.Context(), leagueID, userID)
	if err != nil {
		writeServiceError(w, "draft.GetPicks", err)
		return
	}

	resp := make([]PickResponse, 0, len(picks))
	for _, pick := range picks {
		resp = append(resp, pickResponse(pick))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *DraftHandler) GetAvailableTeams(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "Missing user identity")
		return
	}

	leagueID, err := uuid.Parse(chi.URLParam(r, "leagueId"))
	if err != nil {
		writeValidationError(w, "Invalid league ID")
		return
	}

	teams, err := h.draftService.GetAvailableTeams(r.Context(), leagueID, userID)
	if err != nil {
		writeServiceError(w, "draft.GetAvailableTeams", err)
		return
	}

	writeJSON(w, http.StatusOK, teamListResponse(teams))
}

type DraftStateResponse struct {
	DraftComplete bool              `json:"draftComplete"`
	MemberCount   int               `json:"memberCount"`
	TotalPicks    int               `json:"totalPicks"`
	NextPick      int               `json:"nextPick,omitempty"`
	NextRound     int               `json:"nextRound,omitempty"`
	OnTheClock    *PickUserResponse `json:"onTheClock,omitempty"`
}

func (h *DraftHandler) GetDraftState(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "Missing user identity")
		return
	}

	leagueID, err := uuid.Parse(chi.URLParam(r, "leagueId"))
	if err != nil {
		writeValidationError(w, "Invalid league ID")
		return
	}

	state, err := h.draftService.GetDraftState(r.Context(), leagueID, userID)
	if err != nil {
		writeServiceError(w, "draft.GetDraftState", err)
		return
	}

	resp := DraftStateResponse{
		DraftComplete: state.League.DraftComplete,
		MemberCount:   state.MemberCount,
		TotalPicks:    state.TotalPicks,
		NextPick:      state.NextPick,
		NextRound:     state.NextRound,
	}
	if state.OnTheClock != nil {
		clock := &PickUserResponse{ID: state.OnTheClock.UserID.String()}
		if state.OnTheClock.User != nil {
			clock.Name = state.OnTheClock.User.Name
		}
		resp.OnTheClock = clock
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *DraftHandler) GetAllTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.GetAllTeams(r.Context())
	if err != nil {
		writeServiceError(w, "draft.GetAllTeams", err)
		return
	}

	writeJSON(w, http.StatusOK, teamListResponse(teams))
}

func teamListResponse(teams []*domain.Team) []TeamResponse {
	resp := make([]TeamResponse, 0, len(teams))
	for _, team := range teams {
		resp = append(resp, TeamResponse{
			ID:         team.ID.String(),
			Name:       team.Name,
			Conference: team.Conference,
		})
	}
	return resp
}
