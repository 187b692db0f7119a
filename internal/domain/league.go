package domain

import (
	"time"

	"github.com/google/uuid"
)

type League struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name          string    `json:"name" gorm:"not null"`
	JoinCode      string    `json:"joinCode" gorm:"uniqueIndex;not null"`
	MaxPlayers    int       `json:"maxPlayers" gorm:"not null"`
	PasswordHash  string    `json:"-" gorm:"not null"`
	DraftComplete bool      `json:"draftComplete" gorm:"not null;default:false"`
	CreatedBy     uuid.UUID `json:"createdBy" gorm:"type:uuid;not null"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// Relations
	Creator *User `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
}

type LeagueMember struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	LeagueID uuid.UUID `json:"leagueId" gorm:"type:uuid;not null;uniqueIndex:idx_league_user"`
	UserID   uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_league_user"`
	JoinedAt time.Time `json:"joinedAt"`

	// Relations
	League *League `json:"league,omitempty" gorm:"foreignKey:LeagueID"`
	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
