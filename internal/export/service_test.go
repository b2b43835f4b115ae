package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"salestracker/internal/entity"
	"salestracker/internal/parser"
	"salestracker/internal/repository"
)

type fakeBranchRepo struct {
	repository.BranchRepository
}

func (fakeBranchRepo) GetBranch(_ context.Context, id uuid.UUID) (*entity.Branch, error) {
	return &entity.Branch{ID: id, Name: "KARAMA"}, nil
}

type fakeSalesRepo struct {
	repository.SalesRepository
	recs []*entity.SalesRecord
}

func (f fakeSalesRepo) ListRange(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]*entity.SalesRecord, error) {
	return f.recs, nil
}

func TestExportSalesXLSX(t *testing.T) {
	gross := 1333.31
	gc := 32
	rec := &entity.SalesRecord{
		ID:           uuid.New(),
		BusinessDate: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Window:       "closing",
		Kind:         "POS",
		GrossSales:   &gross,
		GuestCount:   &gc,
		Status:       "VERIFIED",
		Categories: []parser.CategoryLine{
			{Name: "Sundaes", Quantity: 12, SalesAmount: 201, ContributionPct: 15.3},
			{Name: "Cups & Cones", Quantity: 31, SalesAmount: 468.54, ContributionPct: 35.1},
		},
	}

	svc := NewService(fakeSalesRepo{recs: []*entity.SalesRecord{rec}}, fakeBranchRepo{}, nil)
	out, err := svc.ExportSalesXLSX(context.Background(), uuid.New(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Sales", "A2")
	if err != nil {
		t.Fatal(err)
	}
	if got != "2026-08-30" {
		t.Errorf("date cell: got %q", got)
	}
	top, err := f.GetCellValue("Sales", "H2")
	if err != nil {
		t.Fatal(err)
	}
	if top != "Cups & Cones (35.1%)" {
		t.Errorf("top category cell: got %q", top)
	}
}
