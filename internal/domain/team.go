package domain

import "github.com/google/uuid"

// Team is static reference data seeded from cmd/seed. Rows are never
// mutated by the API.
type Team struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name       string    `json:"name" gorm:"uniqueIndex;not null"`
	Conference string    `json:"conference" gorm:"not null"`
}
