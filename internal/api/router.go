package api

import (
	"net/http"

	"github.com/Mac-Cooper1/Pick6/internal/api/handlers"
	"github.com/Mac-Cooper1/Pick6/internal/api/middleware"
	"github.com/Mac-Cooper1/Pick6/internal/service"
	"github.com/Mac-Cooper1/Pick6/internal/ws"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, hub *ws.Hub) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	leagueHandler := handlers.NewLeagueHandler(services.League)
	draftHandler := handlers.NewDraftHandler(services.Draft, services.Team)
	standingsHandler := handlers.NewStandingsHandler(services.Scoring)
	adminHandler := handlers.NewAdminHandler(services.Scoring)
	wsHandler := handlers.NewWebSocketHandler(hub, services.Draft)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/me", authHandler.Me)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Get("/teams", draftHandler.GetAllTeams)

			r.Route("/leagues", func(r chi.Router) {
				r.Post("/", leagueHandler.Create)
				r.Post("/join", leagueHandler.Join)
				r.Get("/{leagueId}", leagueHandler.Get)
				r.Get("/{leagueId}/members", leagueHandler.GetMembers)

				r.Route("/{leagueId}/draft", func(r chi.Router) {
					r.Get("/", draftHandler.GetDraftState)
					r.Get("/picks", draftHandler.GetPicks)
					r.Post("/picks", draftHandler.SubmitPick)
					r.Get("/available", draftHandler.GetAvailableTeams)
				})

				r.Route("/{leagueId}/standings", func(r chi.Router) {
					r.Get("/week/{weekNumber}", standingsHandler.GetWeekly)
					r.Get("/overall", standingsHandler.GetOverall)
				})

				// Live draft feed
				r.Get("/{leagueId}/ws", wsHandler.Handle)
			})

			// Admin routes (manual data entry; any authenticated user for MVP)
			r.Route("/admin", func(r chi.Router) {
				r.Post("/results", adminHandler.EnterResult)
				r.Get("/results/{weekNumber}", adminHandler.GetResults)
				r.Post("/leagues/{leagueId}/weeks/{weekNumber}/calculate", adminHandler.CalculateScores)
			})
		})
	})

	return r
}
