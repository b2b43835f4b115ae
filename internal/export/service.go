package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"salestracker/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	salesRepo  repository.SalesRepository
	branchRepo repository.BranchRepository
	logger     *slog.Logger
}

func NewService(salesRepo repository.SalesRepository, branchRepo repository.BranchRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{salesRepo: salesRepo, branchRepo: branchRepo, logger: logger}
}

// ExportSalesXLSX returns an XLSX workbook (as bytes) for one branch and date window.
// If only from is provided -> from..today (inclusive).
func (s *Service) ExportSalesXLSX(ctx context.Context, branchID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	dateOnly := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	fromDate := time.Time{}
	if from != nil {
		fromDate = dateOnly(*from)
	}
	toDate := dateOnly(time.Now().UTC())
	if to != nil {
		toDate = dateOnly(*to)
	}

	br, err := s.branchRepo.GetBranch(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("load branch: %w", err)
	}
	recs, err := s.salesRepo.ListRange(ctx, branchID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Sales"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Date",
		"Window",
		"Format",
		"Gross Sales",
		"Net Sales",
		"Guest Count",
		"Cash Sales",
		"Top Category",
		"Status",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.BusinessDate.Format("2006-01-02"))
		write(2, r.Window)
		write(3, r.Kind)
		if r.GrossSales != nil {
			write(4, *r.GrossSales)
		}
		if r.NetSales != nil {
			write(5, *r.NetSales)
		}
		if r.GuestCount != nil {
			write(6, *r.GuestCount)
		}
		if r.CashSales != nil {
			write(7, *r.CashSales)
		}

		top := ""
		best := -1.0
		for _, c := range r.Categories {
			if c.ContributionPct > best {
				best = c.ContributionPct
				top = fmt.Sprintf("%s (%.1f%%)", c.Name, c.ContributionPct)
			}
		}
		write(8, top)
		write(9, r.Status)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 12) // date
	_ = f.SetColWidth(sheet, "B", "C", 14) // window, format
	_ = f.SetColWidth(sheet, "D", "G", 13) // amounts
	_ = f.SetColWidth(sheet, "H", "H", 28) // top category
	_ = f.SetColWidth(sheet, "I", "I", 12) // status

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"branch", br.Name,
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
