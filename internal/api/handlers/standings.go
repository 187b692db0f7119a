package handlers

import (
	"net/http"
	"strconv"

	"github.com/Mac-Cooper1/Pick6/internal/api/middleware"
	"github.com/Mac-Cooper1/Pick6/internal/domain"
	"github.com/Mac-Cooper1/Pick6/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type StandingsHandler struct {
	scoringService *service.ScoringService
}

func NewStandingsHandler(scoringService *service.ScoringService) *StandingsHandler {
	return &StandingsHandler{scoringService: scoringService}
}

type StandingResponse struct {
	Rank   int              `json:"rank"`
	User   PickUserResponse `json:"user"`
	Points int              `json:"points"`
}

func standingsResponse(standings []domain.Standing) []StandingResponse {
	resp := make([]StandingResponse, 0, len(standings))
	for _, s := range standings {
		resp = append(resp, StandingResponse{
			Rank:   s.Rank,
			User:   PickUserResponse{ID: s.UserID.String(), Name: s.UserName},
			Points: s.Points,
		})
	}
	return resp
}

// rankStrategy reads ?ranking=; ordinal is the default and anything
// unrecognized falls back to it.
func rankStrategy(r *http.Request) domain.RankStrategy {
	if r.URL.Query().Get("ranking") == string(domain.RankDense) {
		return domain.RankDense
	}
	return domain.RankOrdinal
}

func (h *StandingsHandler) GetWeekly(w http.ResponseWriter, r *http.Request) {
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

	weekNumber, err := strconv.Atoi(chi.URLParam(r, "weekNumber"))
	if err != nil || weekNumber < 1 {
		writeValidationError(w, "Invalid week number")
		return
	}

	standings, err := h.scoringService.WeeklyStandings(r.Context(), leagueID, userID, weekNumber, rankStrategy(r))
	if err != nil {
		writeServiceError(w, "standings.GetWeekly", err)
		return
	}

	writeJSON(w, http.StatusOK, standingsResponse(standings))
}

func (h *StandingsHandler) GetOverall(w http.ResponseWriter, r *http.Request) {
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

	standings, err := h.scoringService.OverallStandings(r.Context(), leagueID, userID, rankStrategy(r))
	if err != nil {
		writeServiceError(w, "standings.GetOverall", err)
		return
	}

	writeJSON(w, http.StatusOK, standingsResponse(standings))
}
