package domain

import (
	"time"

	"github.com/google/uuid"
)

// PicksPerMember is how many teams each league member drafts.
const PicksPerMember = 6

type DraftPick struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	LeagueID   uuid.UUID `json:"leagueId" gorm:"type:uuid;not null;uniqueIndex:idx_league_team"`
	UserID     uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`
	TeamID     uuid.UUID `json:"teamId" gorm:"type:uuid;not null;uniqueIndex:idx_league_team"`
	PickNumber int       `json:"pickNumber" gorm:"not null"`
	Round      int       `json:"round" gorm:"not null"`
	CreatedAt  time.Time `json:"createdAt"`

	// Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}
