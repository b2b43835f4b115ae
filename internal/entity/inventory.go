package entity

import (
	"time"

	"github.com/google/uuid"
)

// Flavor represents one tub flavor in the catalog.
type Flavor struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Seasonal  bool      `json:"seasonal"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TubMovement represents one tub ledger row.
type TubMovement struct {
	ID       uuid.UUID `json:"id"`
	BranchID uuid.UUID `json:"branch_id"`
	FlavorID uuid.UUID `json:"flavor_id"`
	Kind     string    `json:"kind"`
	Quantity int       `json:"quantity"`
	Note     *string   `json:"note,omitempty"`
	MovedAt  time.Time `json:"moved_at"`
}

// TubBalance is the net on-hand count for one flavor at one branch.
type TubBalance struct {
	FlavorID   uuid.UUID `json:"flavor_id"`
	FlavorName string    `json:"flavor_name"`
	OnHand     int       `json:"on_hand"`
}
