package entity

import (
	"time"

	"github.com/google/uuid"
)

// Territory represents a sales territory for data transfer between layers.
type Territory struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Area represents an area within a territory.
type Area struct {
	ID          uuid.UUID `json:"id"`
	TerritoryID uuid.UUID `json:"territory_id"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Branch represents one store. Name is the canonical directory name;
// spelling alternates are separated by "/".
type Branch struct {
	ID        uuid.UUID `json:"id"`
	AreaID    uuid.UUID `json:"area_id"`
	Name      string    `json:"name"`
	Code      *string   `json:"code,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
