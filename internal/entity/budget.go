package entity

import (
	"time"

	"github.com/google/uuid"
)

// BudgetDay represents one budgeted branch-day.
type BudgetDay struct {
	ID               uuid.UUID `json:"id"`
	BranchID         uuid.UUID `json:"branch_id"`
	BusinessDate     time.Time `json:"business_date"`
	Weekday          string    `json:"weekday"`
	BudgetAmount     float64   `json:"budget_amount"`
	BudgetGuestCount *int      `json:"budget_guest_count,omitempty"`
	LYSales          *float64  `json:"ly_sales,omitempty"`
	LYGuestCount     *int      `json:"ly_guest_count,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
