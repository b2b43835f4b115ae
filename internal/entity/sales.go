package entity

import (
	"time"

	"github.com/google/uuid"

	"salestracker/internal/parser"
)

// SalesRecord represents one submitted sales reading for data transfer
// between layers.
type SalesRecord struct {
	ID                   uuid.UUID             `json:"id"`
	BranchID             uuid.UUID             `json:"branch_id"`
	BusinessDate         time.Time             `json:"business_date"`
	Window               string                `json:"window"`
	Kind                 string                `json:"kind"`
	GrossSales           *float64              `json:"gross_sales,omitempty"`
	NetSales             *float64              `json:"net_sales,omitempty"`
	GuestCount           *int                  `json:"guest_count,omitempty"`
	CashSales            *float64              `json:"cash_sales,omitempty"`
	Categories           []parser.CategoryLine `json:"categories,omitempty"`
	Status               string                `json:"status"`
	ExtractionConfidence *float32              `json:"extraction_confidence,omitempty"`
	BranchRaw            *string               `json:"branch_raw,omitempty"`
	BranchMatch          bool                  `json:"branch_match"`
	CreatedAt            time.Time             `json:"created_at"`
	UpdatedAt            time.Time             `json:"updated_at"`
}
