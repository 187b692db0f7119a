package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Mac-Cooper1/Pick6/internal/domain"
	"github.com/Mac-Cooper1/Pick6/internal/service"
)

// ErrorResponse is the wire shape for every failed request.
type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:      kind,
		Message:    message,
		StatusCode: status,
	})
}

func writeValidationError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, "ValidationError", message)
}

// writeServiceError maps domain and service sentinel errors onto the
// error taxonomy; anything unclassified is logged and becomes a 500.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotMember):
		writeError(w, http.StatusForbidden, "ForbiddenError", err.Error())
	case errors.Is(err, domain.ErrWrongPassword):
		writeError(w, http.StatusForbidden, "ForbiddenError", err.Error())
	case errors.Is(err, domain.ErrLeagueNotFound),
		errors.Is(err, domain.ErrTeamNotFound),
		errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "NotFoundError", err.Error())
	case errors.Is(err, domain.ErrTeamAlreadyDrafted):
		// 400 rather than 409 to match the established client contract.
		writeError(w, http.StatusBadRequest, "ConflictError", err.Error())
	case errors.Is(err, domain.ErrPickLimitReached),
		errors.Is(err, domain.ErrLeagueFull),
		errors.Is(err, domain.ErrInvalidJoinCode),
		errors.Is(err, domain.ErrInvalidOutcome),
		errors.Is(err, domain.ErrInvalidWeek),
		errors.Is(err, service.ErrInvalidEmail):
		writeValidationError(w, err.Error())
	case errors.Is(err, domain.ErrAlreadyMember),
		errors.Is(err, domain.ErrRosterLocked),
		errors.Is(err, domain.ErrJoinCodeTaken),
		errors.Is(err, service.ErrEmailExists):
		writeError(w, http.StatusConflict, "ConflictError", err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Unauthorized", err.Error())
	default:
		log.Printf("ERROR [%s]: %v", op, err)
		writeError(w, http.StatusInternalServerError, "InternalServerError", "Internal server error")
	}
}
