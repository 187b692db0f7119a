package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Mac-Cooper1/Pick6/internal/api/middleware"
	"github.com/Mac-Cooper1/Pick6/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeValidationError(w, "Name, email and password are required")
		return
	}

	result, err := h.authService.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, "auth.Register", err)
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		User: UserResponse{
			ID:    result.User.ID.String(),
			Name:  result.User.Name,
			Email: result.User.Email,
		},
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeValidationError(w, "Email and password are required")
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, "auth.Login", err)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		User: UserResponse{
			ID:    result.User.ID.String(),
			Name:  result.User.Name,
			Email: result.User.Email,
		},
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

type MeLeague struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	JoinCode string `json:"joinCode"`
}

type MeResponse struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Leagues []MeLeague `json:"leagues"`
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "Missing user identity")
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, "auth.Me", err)
		return
	}

	memberships, err := h.authService.GetUserLeagues(r.Context(), userID)
	if err != nil {
		writeServiceError(w, "auth.Me", err)
		return
	}

	resp := MeResponse{
		ID:      user.ID.String(),
		Name:    user.Name,
		Email:   user.Email,
		Leagues: make([]MeLeague, 0, len(memberships)),
	}
	for _, m := range memberships {
		if m.League == nil {
			continue
		}
		resp.Leagues = append(resp.Leagues, MeLeague{
			ID:       m.League.ID.String(),
			Name:     m.League.Name,
			JoinCode: m.League.JoinCode,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "Missing user identity")
		return
	}

	if err := h.authService.Logout(r.Context(), userID); err != nil {
		writeServiceError(w, "auth.Logout", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
