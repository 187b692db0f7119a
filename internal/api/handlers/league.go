package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Mac-Cooper1/Pick6/internal/api/middleware"
	"github.com/Mac-Cooper1/Pick6/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type LeagueHandler struct {
	leagueService *service.LeagueService
}

func NewLeagueHandler(leagueService *service.LeagueService) *LeagueHandler {
	return &LeagueHandler{leagueService: leagueService}
}

type CreateLeagueRequest struct {
	Name       string `json:"name"`
	MaxPlayers int    `json:"maxPlayers"`
	Password   string `json:"password"`
	JoinCode   string `json:"joinCode,omitempty"`
}

type JoinLeagueRequest struct {
	JoinCode string `json:"joinCode"`
	Password string `json:"password"`
}

type LeagueResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	JoinCode      string `json:"joinCode"`
	MaxPlayers    int    `json:"maxPlayers"`
	DraftComplete bool   `json:"draftComplete"`
}

type MemberResponse struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joinedAt"`
}

func (h *LeagueHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "Missing user identity")
		return
	}

	var req CreateLeagueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "Invalid request body")
		return
	}

	if req.Name == "" || req.Password == "" {
		writeValidationError(w, "Name and password are required")
		return
	}
	if req.MaxPlayers < 2 {
		writeValidationError(w, "maxPlayers must be at least 2")
		return
	}

	league, err := h.leagueService.CreateLeague(r.Context(), service.CreateLeagueInput{
		Name:       req.Name,
		MaxPlayers: req.MaxPlayers,
		Password:   req.Password,
		JoinCode:   req.JoinCode,
		CreatedBy:  userID,
	})
	if err != nil {
		writeServiceError(w, "league.Create", err)
		return
	}

	writeJSON(w, http.StatusCreated, LeagueResponse{
		ID:            league.ID.String(),
		Name:          league.Name,
		JoinCode:      league.JoinCode,
		MaxPlayers:    league.MaxPlayers,
		DraftComplete: league.DraftComplete,
	})
}

func (h *LeagueHandler) Join(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "Missing user identity")
		return
	}

	var req JoinLeagueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "Invalid request body")
		return
	}

	if req.JoinCode == "" || req.Password == "" {
		writeValidationError(w, "Join code and password are required")
		return
	}

	league, err := h.leagueService.JoinLeague(r.Context(), service.JoinLeagueInput{
		JoinCode: req.JoinCode,
		Password: req.Password,
		UserID:   userID,
	})
	if err != nil {
		writeServiceError(w, "league.Join", err)
		return
	}

	writeJSON(w, http.StatusOK, LeagueResponse{
		ID:            league.ID.String(),
		Name:          league.Name,
		JoinCode:      league.JoinCode,
		MaxPlayers:    league.MaxPlayers,
		DraftComplete: league.DraftComplete,
	})
}

func (h *LeagueHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	league, err := h.leagueService.GetLeague(r.Context(), leagueID, userID)
	if err != nil {
		writeServiceError(w, "league.Get", err)
		return
	}

	writeJSON(w, http.StatusOK, LeagueResponse{
		ID:            league.ID.String(),
		Name:          league.Name,
		JoinCode:      league.JoinCode,
		MaxPlayers:    league.MaxPlayers,
		DraftComplete: league.DraftComplete,
	})
}

func (h *LeagueHandler) GetMembers(w http.ResponseWriter, r *http.Request) {
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

	members, err := h.leagueService.GetMembers(r.Context(), leagueID, userID)
	if err != nil {
		writeServiceError(w, "league.GetMembers", err)
		return
	}

	resp := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		entry := MemberResponse{
			ID:       m.UserID.String(),
			JoinedAt: m.JoinedAt,
		}
		if m.User != nil {
			entry.Name = m.User.Name
		}
		resp = append(resp, entry)
	}

	writeJSON(w, http.StatusOK, resp)
}
