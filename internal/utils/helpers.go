package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"salestracker/gen/ent"
	salespb "salestracker/gen/proto/salestracker/v1"
	"salestracker/internal/entity"
	"salestracker/internal/parser"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func decOrEmpty(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *p)
}

func intOrZero(p *int) int32 {
	if p == nil {
		return 0
	}
	return int32(*p)
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToTerritory(e *ent.Territory) *entity.Territory {
	return &entity.Territory{
		ID:        e.ID,
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToArea(e *ent.Area) *entity.Area {
	return &entity.Area{
		ID:          e.ID,
		TerritoryID: e.TerritoryID,
		Name:        e.Name,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToBranch(e *ent.Branch) *entity.Branch {
	return &entity.Branch{
		ID:        e.ID,
		AreaID:    e.AreaID,
		Name:      e.Name,
		Code:      e.Code,
		Active:    e.Active,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToSalesRecord(e *ent.SalesRecord) *entity.SalesRecord {
	rec := &entity.SalesRecord{
		ID:                   e.ID,
		BranchID:             e.BranchID,
		BusinessDate:         e.BusinessDate,
		Window:               e.Window,
		Kind:                 e.Kind,
		GrossSales:           e.GrossSales,
		NetSales:             e.NetSales,
		GuestCount:           e.GuestCount,
		CashSales:            e.CashSales,
		Status:               e.Status,
		ExtractionConfidence: e.ExtractionConfidence,
		BranchRaw:            e.BranchRaw,
		BranchMatch:          e.BranchMatch,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
	if len(e.Categories) > 0 {
		// Stored by us, so a decode failure means a corrupt row; surface
		// it as an empty breakdown rather than failing the read.
		var cats []parser.CategoryLine
		if err := json.Unmarshal(e.Categories, &cats); err == nil {
			rec.Categories = cats
		}
	}
	return rec
}

func ToBudgetDay(e *ent.BudgetDay) *entity.BudgetDay {
	return &entity.BudgetDay{
		ID:               e.ID,
		BranchID:         e.BranchID,
		BusinessDate:     e.BusinessDate,
		Weekday:          e.Weekday,
		BudgetAmount:     e.BudgetAmount,
		BudgetGuestCount: e.BudgetGuestCount,
		LYSales:          e.LySales,
		LYGuestCount:     e.LyGuestCount,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func ToFlavor(e *ent.Flavor) *entity.Flavor {
	return &entity.Flavor{
		ID:        e.ID,
		Name:      e.Name,
		Seasonal:  e.Seasonal,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToTubMovement(e *ent.TubMovement) *entity.TubMovement {
	return &entity.TubMovement{
		ID:       e.ID,
		BranchID: e.BranchID,
		FlavorID: e.FlavorID,
		Kind:     e.Kind,
		Quantity: e.Quantity,
		Note:     e.Note,
		MovedAt:  e.MovedAt,
	}
}

func ToPBTerritory(t *entity.Territory) *salespb.Territory {
	return &salespb.Territory{
		Id:   t.ID.String(),
		Name: t.Name,
	}
}

func ToPBArea(a *entity.Area) *salespb.Area {
	return &salespb.Area{
		Id:          a.ID.String(),
		TerritoryId: a.TerritoryID.String(),
		Name:        a.Name,
	}
}

func ToPBBranch(b *entity.Branch) *salespb.Branch {
	return &salespb.Branch{
		Id:     b.ID.String(),
		AreaId: b.AreaID.String(),
		Name:   b.Name,
		Code:   strOrEmpty(b.Code),
		Active: b.Active,
	}
}

func ToPBCategoryLine(c parser.CategoryLine) *salespb.CategoryLine {
	return &salespb.CategoryLine{
		Name:            c.Name,
		Quantity:        int32(c.Quantity),
		SalesAmount:     fmt.Sprintf("%.2f", c.SalesAmount),
		ContributionPct: fmt.Sprintf("%.1f", c.ContributionPct),
	}
}

func ToPBSummary(sum parser.SalesSummary) *salespb.SalesSummary {
	out := &salespb.SalesSummary{
		GrossSales: decOrEmpty(sum.GrossSales),
		NetSales:   decOrEmpty(sum.NetSales),
		GuestCount: intOrZero(sum.GuestCount),
		CashSales:  decOrEmpty(sum.CashSales),
	}
	for _, c := range sum.Categories {
		out.Categories = append(out.Categories, ToPBCategoryLine(c))
	}
	return out
}

func ToPBSalesRecord(r *entity.SalesRecord) *salespb.SalesRecord {
	out := &salespb.SalesRecord{
		Id:           r.ID.String(),
		BranchId:     r.BranchID.String(),
		BusinessDate: r.BusinessDate.Format("2006-01-02"),
		Window:       r.Window,
		Kind:         r.Kind,
		GrossSales:   decOrEmpty(r.GrossSales),
		NetSales:     decOrEmpty(r.NetSales),
		GuestCount:   intOrZero(r.GuestCount),
		CashSales:    decOrEmpty(r.CashSales),
		Status:       r.Status,
		BranchRaw:    strOrEmpty(r.BranchRaw),
		BranchMatch:  r.BranchMatch,
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if r.ExtractionConfidence != nil {
		out.ExtractionConfidence = *r.ExtractionConfidence
	}
	for _, c := range r.Categories {
		out.Categories = append(out.Categories, ToPBCategoryLine(c))
	}
	return out
}

func ToPBBudgetDay(d *entity.BudgetDay) *salespb.BudgetDay {
	return &salespb.BudgetDay{
		BusinessDate:     d.BusinessDate.Format("2006-01-02"),
		Weekday:          d.Weekday,
		BudgetAmount:     fmt.Sprintf("%.2f", d.BudgetAmount),
		BudgetGuestCount: intOrZero(d.BudgetGuestCount),
		LySales:          decOrEmpty(d.LYSales),
		LyGuestCount:     intOrZero(d.LYGuestCount),
	}
}
