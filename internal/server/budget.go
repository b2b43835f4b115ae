package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"salestracker/internal/advisor"
	"salestracker/internal/parser"
	"salestracker/internal/repository"
	"salestracker/internal/utils"
	"salestracker/internal/vision"

	salespb "salestracker/gen/proto/salestracker/v1"
)

type BudgetServer struct {
	salespb.UnimplementedBudgetServiceServer
	budgetRepo repository.BudgetRepository
	salesRepo  repository.SalesRepository
	logger     *slog.Logger
}

func NewBudgetServer(budgetRepo repository.BudgetRepository, salesRepo repository.SalesRepository, logger *slog.Logger) *BudgetServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &BudgetServer{budgetRepo: budgetRepo, salesRepo: salesRepo, logger: logger}
}

// UploadBudgetSheet decodes a vision-transcribed monthly budget sheet and
// stores every populated day for the branch.
func (s *BudgetServer) UploadBudgetSheet(ctx context.Context, req *salespb.UploadBudgetSheetRequest) (*salespb.UploadBudgetSheetResponse, error) {
	branchID, err := uuid.Parse(strings.TrimSpace(req.GetBranchId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "branch_id must be a UUID")
	}
	month, err := time.ParseInLocation("2006-01", strings.TrimSpace(req.GetMonth()), time.UTC)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "month must be YYYY-MM")
	}
	if strings.TrimSpace(req.GetSheetJson()) == "" {
		return nil, status.Error(codes.InvalidArgument, "sheet_json is required")
	}

	sheet, err := vision.DecodeBudgetSheet(req.GetSheetJson())
	if err != nil {
		s.logger.Error("budget sheet rejected", "branch_id", branchID, "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "sheet_json invalid: %v", err)
	}

	saved, err := s.budgetRepo.UpsertSheet(ctx, branchID, month, sheet)
	if err != nil {
		s.logger.Error("failed to store budget sheet", "branch_id", branchID, "error", err)
		return nil, status.Errorf(codes.Internal, "store budget sheet: %v", err)
	}
	return &salespb.UploadBudgetSheetResponse{DaysSaved: int32(saved)}, nil
}

// GetDailyAdvice combines the day's budget row with whatever sales readings
// exist so far and returns the advice list.
func (s *BudgetServer) GetDailyAdvice(ctx context.Context, req *salespb.GetDailyAdviceRequest) (*salespb.GetDailyAdviceResponse, error) {
	branchID, err := uuid.Parse(strings.TrimSpace(req.GetBranchId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "branch_id must be a UUID")
	}
	date, err := utils.ParseYMD(strings.TrimSpace(req.GetDate()))
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "date invalid (YYYY-MM-DD): %v", err)
	}

	day, err := s.budgetRepo.GetDay(ctx, branchID, date)
	if err != nil {
		s.logger.Warn("no budget row for day", "branch_id", branchID, "date", req.GetDate(), "error", err)
		return nil, status.Error(codes.NotFound, "no budget uploaded for that day")
	}

	recs, err := s.salesRepo.ListForDay(ctx, branchID, date)
	if err != nil {
		s.logger.Error("failed to load day sales", "branch_id", branchID, "error", err)
		return nil, status.Errorf(codes.Internal, "load day sales: %v", err)
	}

	snap := advisor.Snapshot{
		Weekday:      day.Weekday,
		BudgetAmount: day.BudgetAmount,
	}
	if day.BudgetGuestCount != nil {
		snap.BudgetGC = *day.BudgetGuestCount
	}
	if day.LYSales != nil {
		snap.LYSales = *day.LYSales
	}
	if day.LYGuestCount != nil {
		snap.LYGuestCount = *day.LYGuestCount
	}

	// The latest reading per format carries the running totals; sum POS
	// and home delivery together for the day's actuals.
	latest := map[string]*parser.SalesSummary{}
	for _, r := range recs {
		sum := parser.SalesSummary{
			GrossSales: r.GrossSales,
			NetSales:   r.NetSales,
			GuestCount: r.GuestCount,
			Categories: r.Categories,
		}
		latest[r.Kind] = &sum
	}
	for _, sum := range latest {
		snap.HasSales = true
		if sum.GrossSales != nil {
			snap.ActualGross += *sum.GrossSales
		}
		if sum.GuestCount != nil {
			snap.ActualGC += *sum.GuestCount
		}
		snap.Categories = append(snap.Categories, sum.Categories...)
	}

	advs := advisor.Advise(snap)
	out := make([]*salespb.Advice, 0, len(advs))
	for _, a := range advs {
		out = append(out, &salespb.Advice{
			Type:     a.Type,
			Priority: string(a.Priority),
			Title:    a.Title,
			Detail:   a.Detail,
		})
	}
	return &salespb.GetDailyAdviceResponse{
		Budget: utils.ToPBBudgetDay(day),
		Advice: out,
	}, nil
}
