package main

import (
	"context"
	"log"
	"time"

	"github.com/Mac-Cooper1/Pick6/internal/config"
	"github.com/Mac-Cooper1/Pick6/internal/domain"
	"github.com/Mac-Cooper1/Pick6/internal/repository/postgres"
	"github.com/Mac-Cooper1/Pick6/internal/service"
)

// Loads the FBS team list into the teams table. Existing rows are updated
// in place, so this can be re-run whenever conference membership changes.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	repos := postgres.NewRepositories(db)
	teamService := service.NewTeamService(repos.Team)

	teams := make([]*domain.Team, len(fbsTeams))
	for i := range fbsTeams {
		teams[i] = &fbsTeams[i]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := teamService.Seed(ctx, teams)
	if err != nil {
		log.Fatalf("failed to seed teams: %v", err)
	}
	log.Printf("Seeded %d teams", n)
}
