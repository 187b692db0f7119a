package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type GameOutcome string

const (
	OutcomeWin  GameOutcome = "win"
	OutcomeLoss GameOutcome = "loss"
)

type GameResult struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TeamID     uuid.UUID      `json:"teamId" gorm:"type:uuid;not null;uniqueIndex:idx_team_week"`
	WeekNumber int            `json:"weekNumber" gorm:"not null;uniqueIndex:idx_team_week"`
	Opponent   string         `json:"opponent" gorm:"not null"`
	Result     GameOutcome    `json:"result" gorm:"not null"`
	WasUpset   bool           `json:"wasUpset" gorm:"not null;default:false"`
	Points     int            `json:"points" gorm:"not null"`
	GameDate   datatypes.Date `json:"gameDate" gorm:"not null"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`

	// Relations
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// PointsFor scores a single game result: a win is worth 1, an upset win 2,
// a loss 0, and an upset loss -1.
func PointsFor(result GameOutcome, wasUpset bool) int {
	if result == OutcomeWin {
		if wasUpset {
			return 2
		}
		return 1
	}
	if wasUpset {
		return -1
	}
	return 0
}
