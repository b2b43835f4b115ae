package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"salestracker/constants"
	"salestracker/gen/ent"
	"salestracker/gen/ent/salesrecord"
	"salestracker/internal/entity"
	"salestracker/internal/parser"
	"salestracker/internal/utils"
)

// UpsertSalesRequest wraps parameters for recording one sales reading.
type UpsertSalesRequest struct {
	BranchID     uuid.UUID
	BusinessDate time.Time
	Window       string
	Kind         constants.ReceiptKind
	Summary      parser.SalesSummary
	Status       constants.SubmissionStatus
	Confidence   *float32
	BranchRaw    *string
	BranchMatch  bool
	RawText      *string
}

type SalesRepository interface {
	Upsert(ctx context.Context, req *UpsertSalesRequest) (*entity.SalesRecord, error)
	ListForDay(ctx context.Context, branchID uuid.UUID, date time.Time) ([]*entity.SalesRecord, error)
	ListRange(ctx context.Context, branchID uuid.UUID, from, to time.Time) ([]*entity.SalesRecord, error)
	ListFlagged(ctx context.Context, branchID *uuid.UUID) ([]*entity.SalesRecord, error)
}

type salesRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSalesRepository(client *ent.Client, logger *slog.Logger) SalesRepository {
	return &salesRepository{
		client: client,
		logger: logger,
	}
}

// Upsert replaces any previous reading for the same branch, day, window and
// kind. Stewards resend corrected photos; the latest reading wins.
func (r *salesRepository) Upsert(ctx context.Context, req *UpsertSalesRequest) (*entity.SalesRecord, error) {
	var catJSON json.RawMessage
	if len(req.Summary.Categories) > 0 {
		b, err := json.Marshal(req.Summary.Categories)
		if err != nil {
			return nil, err
		}
		catJSON = b
	}

	_, err := r.client.SalesRecord.Delete().
		Where(
			salesrecord.BranchID(req.BranchID),
			salesrecord.BusinessDate(req.BusinessDate),
			salesrecord.Window(req.Window),
			salesrecord.Kind(string(req.Kind)),
		).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to clear previous sales reading", "branch_id", req.BranchID, "error", err)
		return nil, err
	}

	rec, err := r.client.SalesRecord.Create().
		SetBranchID(req.BranchID).
		SetBusinessDate(req.BusinessDate).
		SetWindow(req.Window).
		SetKind(string(req.Kind)).
		SetNillableGrossSales(req.Summary.GrossSales).
		SetNillableNetSales(req.Summary.NetSales).
		SetNillableGuestCount(req.Summary.GuestCount).
		SetNillableCashSales(req.Summary.CashSales).
		SetCategories(catJSON).
		SetStatus(string(req.Status)).
		SetNillableExtractionConfidence(req.Confidence).
		SetNillableBranchRaw(req.BranchRaw).
		SetBranchMatch(req.BranchMatch).
		SetNillableRawText(req.RawText).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to save sales reading",
			"branch_id", req.BranchID, "window", req.Window, "error", err)
		return nil, err
	}
	return utils.ToSalesRecord(rec), nil
}

func (r *salesRepository) ListForDay(ctx context.Context, branchID uuid.UUID, date time.Time) ([]*entity.SalesRecord, error) {
	recs, err := r.client.SalesRecord.Query().
		Where(
			salesrecord.BranchID(branchID),
			salesrecord.BusinessDate(date),
		).
		Order(salesrecord.ByWindow(), salesrecord.ByKind()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list sales for day", "branch_id", branchID, "error", err)
		return nil, err
	}
	return toSalesRecords(recs), nil
}

func (r *salesRepository) ListRange(ctx context.Context, branchID uuid.UUID, from, to time.Time) ([]*entity.SalesRecord, error) {
	recs, err := r.client.SalesRecord.Query().
		Where(
			salesrecord.BranchID(branchID),
			salesrecord.BusinessDateGTE(from),
			salesrecord.BusinessDateLTE(to),
		).
		Order(salesrecord.ByBusinessDate()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list sales range", "branch_id", branchID, "error", err)
		return nil, err
	}
	return toSalesRecords(recs), nil
}

func (r *salesRepository) ListFlagged(ctx context.Context, branchID *uuid.UUID) ([]*entity.SalesRecord, error) {
	q := r.client.SalesRecord.Query().
		Where(salesrecord.Status(string(constants.SubmissionFlagged)))
	if branchID != nil {
		q = q.Where(salesrecord.BranchID(*branchID))
	}
	recs, err := q.Order(salesrecord.ByBusinessDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list flagged sales", "error", err)
		return nil, err
	}
	return toSalesRecords(recs), nil
}

func toSalesRecords(recs []*ent.SalesRecord) []*entity.SalesRecord {
	result := make([]*entity.SalesRecord, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToSalesRecord(rec)
	}
	return result
}
