package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Mac-Cooper1/Pick6/internal/domain"
	"github.com/Mac-Cooper1/Pick6/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AdminHandler covers the manual data-entry surface: recording game
// results and triggering weekly score calculation.
type AdminHandler struct {
	scoringService *service.ScoringService
}

func NewAdminHandler(scoringService *service.ScoringService) *AdminHandler {
	return &AdminHandler{scoringService: scoringService}
}

type GameResultRequest struct {
	TeamID     string `json:"teamId"`
	WeekNumber int    `json:"weekNumber"`
	Opponent   string `json:"opponent"`
	Result     string `json:"result"`
	WasUpset   bool   `json:"wasUpset"`
	GameDate   string `json:"gameDate"`
}

type GameResultResponse struct {
	ID         string       `json:"id"`
	Team       TeamResponse `json:"team"`
	WeekNumber int          `json:"weekNumber"`
	Opponent   string       `json:"opponent"`
	Result     string       `json:"result"`
	WasUpset   bool         `json:"wasUpset"`
	Points     int          `json:"points"`
	GameDate   string       `json:"gameDate"`
}

func gameResultResponse(result *domain.GameResult) GameResultResponse {
	resp := GameResultResponse{
		ID:         result.ID.String(),
		Team:       TeamResponse{ID: result.TeamID.String()},
		WeekNumber: result.WeekNumber,
		Opponent:   result.Opponent,
		Result:     string(result.Result),
		WasUpset:   result.WasUpset,
		Points:     result.Points,
		GameDate:   time.Time(result.GameDate).Format("2006-01-02"),
	}
	if result.Team != nil {
		resp.Team.Name = result.Team.Name
		resp.Team.Conference = result.Team.Conference
	}
	return resp
}

func (h *AdminHandler) EnterResult(w http.ResponseWriter, r *http.Request) {
	var req GameResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "Invalid request body")
		return
	}

	if req.TeamID == "" || req.WeekNumber == 0 || req.Opponent == "" || req.Result == "" || req.GameDate == "" {
		writeValidationError(w, "teamId, weekNumber, opponent, result, and gameDate are required")
		return
	}

	teamID, err := uuid.Parse(req.TeamID)
	if err != nil {
		writeValidationError(w, "Invalid team ID")
		return
	}

	gameDate, err := time.Parse("2006-01-02", req.GameDate)
	if err != nil {
		writeValidationError(w, "gameDate must be YYYY-MM-DD")
		return
	}

	result, err := h.scoringService.RecordResult(r.Context(), service.RecordResultInput{
		TeamID:     teamID,
		WeekNumber: req.WeekNumber,
		Opponent:   req.Opponent,
		Result:     domain.GameOutcome(req.Result),
		WasUpset:   req.WasUpset,
		GameDate:   gameDate,
	})
	if err != nil {
		writeServiceError(w, "admin.EnterResult", err)
		return
	}

	writeJSON(w, http.StatusCreated, gameResultResponse(result))
}

func (h *AdminHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	weekNumber, err := strconv.Atoi(chi.URLParam(r, "weekNumber"))
	if err != nil || weekNumber < 1 {
		writeValidationError(w, "Invalid week number")
		return
	}

	results, err := h.scoringService.GetResultsByWeek(r.Context(), weekNumber)
	if err != nil {
		writeServiceError(w, "admin.GetResults", err)
		return
	}

	resp := make([]GameResultResponse, 0, len(results))
	for _, result := range results {
		resp = append(resp, gameResultResponse(result))
	}

	writeJSON(w, http.StatusOK, resp)
}

type CalculateScoresResponse struct {
	LeagueID   string                `json:"leagueId"`
	WeekNumber int                   `json:"weekNumber"`
	Scores     []service.MemberScore `json:"scores"`
}

func (h *AdminHandler) CalculateScores(w http.ResponseWriter, r *http.Request) {
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

	scores, err := h.scoringService.ComputeWeeklyScores(r.Context(), leagueID, weekNumber)
	if err != nil {
		writeServiceError(w, "admin.CalculateScores", err)
		return
	}

	writeJSON(w, http.StatusOK, CalculateScoresResponse{
		LeagueID:   leagueID.String(),
		WeekNumber: weekNumber,
		Scores:     scores,
	})
}
