package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/Mac-Cooper1/Pick6/internal/service"
	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"
)

func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ""
			authHeader := r.Header.Get("Authorization")
			switch {
			case authHeader != "":
				parts := strings.Split(authHeader, " ")
				if len(parts) != 2 || parts[0] != "Bearer" {
					unauthorized(w, "Invalid authorization header")
					return
				}
				token = parts[1]
			default:
				// Browser WebSocket clients cannot set headers, so the
				// live feed passes the token as a query parameter.
				token = r.URL.Query().Get("token")
			}

			if token == "" {
				unauthorized(w, "No token provided")
				return
			}

			userID, err := userIDFromToken(authService, token)
			if err != nil {
				log.Printf("ERROR [middleware.Auth] token validation failed: %v", err)
				unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func userIDFromToken(authService *service.AuthService, token string) (uuid.UUID, error) {
	claims, err := authService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, err
	}

	sub, ok := (*claims)["sub"].(string)
	if !ok {
		return uuid.Nil, jwtClaimError("missing sub claim")
	}

	return uuid.Parse(sub)
}

type jwtClaimError string

func (e jwtClaimError) Error() string { return string(e) }

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":      "Unauthorized",
		"message":    message,
		"statusCode": http.StatusUnauthorized,
	})
}
