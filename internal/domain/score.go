package domain

import (
	"time"

	"github.com/google/uuid"
)

// WeeklyScore is a cached aggregate, written only by an explicit
// score calculation. It is not kept in sync with game result edits.
type WeeklyScore struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	LeagueID   uuid.UUID `json:"leagueId" gorm:"type:uuid;not null;uniqueIndex:idx_league_user_week"`
	UserID     uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_league_user_week"`
	WeekNumber int       `json:"weekNumber" gorm:"not null;uniqueIndex:idx_league_user_week"`
	Points     int       `json:"points" gorm:"not null"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
