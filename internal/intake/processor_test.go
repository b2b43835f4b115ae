package intake

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"salestracker/constants"
	"salestracker/internal/entity"
	"salestracker/internal/extraction"
	"salestracker/internal/repository"
)

type fakeBranchRepo struct {
	repository.BranchRepository
	branch *entity.Branch
}

func (f *fakeBranchRepo) GetBranch(_ context.Context, _ uuid.UUID) (*entity.Branch, error) {
	return f.branch, nil
}

type fakeSalesRepo struct {
	repository.SalesRepository
	last *repository.UpsertSalesRequest
}

func (f *fakeSalesRepo) Upsert(_ context.Context, req *repository.UpsertSalesRequest) (*entity.SalesRecord, error) {
	f.last = req
	return &entity.SalesRecord{
		ID:          uuid.New(),
		BranchID:    req.BranchID,
		Window:      req.Window,
		Kind:        string(req.Kind),
		Status:      string(req.Status),
		BranchMatch: req.BranchMatch,
	}, nil
}

const receiptText = `IBQ LAMCY PLAZA
Sales Summary
Gross Sales: 1,333.31
Net Sales 1314.46
G.C: 32
`

func newProcessor(branchName string) (*Processor, *fakeSalesRepo) {
	branches := &fakeBranchRepo{branch: &entity.Branch{
		ID:   uuid.New(),
		Name: branchName,
	}}
	sales := &fakeSalesRepo{}
	return NewProcessor(sales, branches, extraction.NewService(nil), nil), sales
}

func TestProcessVerifiedSubmission(t *testing.T) {
	proc, sales := newProcessor("LAMCY/LANCY PLAZA")

	rec, err := proc.Process(context.Background(), Submission{
		BranchID:     uuid.New(),
		BusinessDate: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Window:       "7pm",
		Kind:         constants.KindPointOfSale,
		Text:         receiptText,
	})
	if err != nil {
		t.Fatal(err)
	}
	if rec.Status != string(constants.SubmissionVerified) {
		t.Fatalf("expected VERIFIED, got %s", rec.Status)
	}
	if sales.last == nil {
		t.Fatal("nothing stored")
	}
	if sales.last.Summary.GrossSales == nil || *sales.last.Summary.GrossSales != 1333.31 {
		t.Fatalf("gross sales not carried through: %+v", sales.last.Summary)
	}
	if sales.last.BranchRaw == nil {
		t.Fatal("extracted branch name should be stored for audit")
	}
}

func TestProcessFlagsBranchMismatch(t *testing.T) {
	proc, sales := newProcessor("DEIRA CITY CENTRE")

	rec, err := proc.Process(context.Background(), Submission{
		BranchID:     uuid.New(),
		BusinessDate: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Window:       "closing",
		Kind:         constants.KindPointOfSale,
		Text:         receiptText,
	})
	if err != nil {
		t.Fatal(err)
	}
	if rec.Status != string(constants.SubmissionFlagged) {
		t.Fatalf("mismatched branch should flag the record, got %s", rec.Status)
	}
	if sales.last.BranchMatch {
		t.Fatal("branch_match should be false on mismatch")
	}
}

func TestProcessUnverifiableReceiptStaysVerified(t *testing.T) {
	proc, _ := newProcessor("DEIRA CITY CENTRE")

	rec, err := proc.Process(context.Background(), Submission{
		BranchID:     uuid.New(),
		BusinessDate: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Window:       "3pm",
		Kind:         constants.KindPointOfSale,
		Text:         "Sales Summary\nNet Sales 500.00\n",
	})
	if err != nil {
		t.Fatal(err)
	}
	// No branch line on the receipt: nothing to verify, so do not flag.
	if rec.Status != string(constants.SubmissionVerified) {
		t.Fatalf("unverifiable receipt should not be flagged, got %s", rec.Status)
	}
}
