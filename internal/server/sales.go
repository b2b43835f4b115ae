package server

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"salestracker/constants"
	"salestracker/internal/common"
	"salestracker/internal/export"
	"salestracker/internal/intake"
	"salestracker/internal/parser"
	"salestracker/internal/repository"
	"salestracker/internal/utils"

	salespb "salestracker/gen/proto/salestracker/v1"
)

type SalesServer struct {
	salespb.UnimplementedSalesServiceServer
	processor *intake.Processor
	salesRepo repository.SalesRepository
	exportSvc *export.Service
	logger    *slog.Logger
}

func NewSalesServer(processor *intake.Processor, salesRepo repository.SalesRepository, exportSvc *export.Service, logger *slog.Logger) *SalesServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &SalesServer{
		processor: processor,
		salesRepo: salesRepo,
		exportSvc: exportSvc,
		logger:    logger,
	}
}

func (s *SalesServer) SubmitSales(ctx context.Context, req *salespb.SubmitSalesRequest) (*salespb.SubmitSalesResponse, error) {
	v := common.NewValidator().
		Field("branch_id", req.GetBranchId(), common.Required, common.UUID).
		Field("business_date", req.GetBusinessDate(), common.Required, common.YMDDate).
		Field("window", req.GetWindow(), common.Required, common.SalesWindow).
		Field("kind", req.GetKind(), common.Required, common.ReceiptKind).
		Field("text", req.GetText(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	branchID, _ := uuid.Parse(req.GetBranchId())
	date, err := utils.ParseYMD(req.GetBusinessDate())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "business_date invalid (YYYY-MM-DD): %v", err)
	}

	rec, err := s.processor.Process(ctx, intake.Submission{
		BranchID:     branchID,
		BusinessDate: date,
		Window:       req.GetWindow(),
		Kind:         constants.ReceiptKind(req.GetKind()),
		Text:         req.GetText(),
		SubmittedAt:  time.Now().UTC(),
		TraceID:      uuid.NewString(),
	})
	if err != nil {
		s.logger.Error("submit sales failed", "branch_id", branchID, "error", err)
		return nil, status.Errorf(codes.Internal, "submit sales: %v", err)
	}
	return &salespb.SubmitSalesResponse{Record: utils.ToPBSalesRecord(rec)}, nil
}

// SubmitManualSales records figures typed in by hand when no receipt photo
// exists. The row is stored MANUAL and never branch-checked.
func (s *SalesServer) SubmitManualSales(ctx context.Context, req *salespb.SubmitManualSalesRequest) (*salespb.SubmitSalesResponse, error) {
	v := common.NewValidator().
		Field("branch_id", req.GetBranchId(), common.Required, common.UUID).
		Field("business_date", req.GetBusinessDate(), common.Required, common.YMDDate).
		Field("window", req.GetWindow(), common.Required, common.SalesWindow).
		Field("kind", req.GetKind(), common.Required, common.ReceiptKind)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	branchID, _ := uuid.Parse(req.GetBranchId())
	date, err := utils.ParseYMD(req.GetBusinessDate())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "business_date invalid (YYYY-MM-DD): %v", err)
	}

	var sum parser.SalesSummary
	dec := func(field, s string) (*float64, error) {
		if strings.TrimSpace(s) == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "%s must be a decimal number", field)
		}
		return &f, nil
	}
	if sum.GrossSales, err = dec("gross_sales", req.GetGrossSales()); err != nil {
		return nil, err
	}
	if sum.NetSales, err = dec("net_sales", req.GetNetSales()); err != nil {
		return nil, err
	}
	if sum.CashSales, err = dec("cash_sales", req.GetCashSales()); err != nil {
		return nil, err
	}
	if gc := int(req.GetGuestCount()); gc > 0 {
		sum.GuestCount = &gc
	}
	if sum.Empty() {
		return nil, status.Error(codes.InvalidArgument, "at least one sales figure is required")
	}

	rec, err := s.salesRepo.Upsert(ctx, &repository.UpsertSalesRequest{
		BranchID:     branchID,
		BusinessDate: date,
		Window:       req.GetWindow(),
		Kind:         constants.ReceiptKind(req.GetKind()),
		Summary:      sum,
		Status:       constants.SubmissionManual,
		BranchMatch:  true,
	})
	if err != nil {
		s.logger.Error("submit manual sales failed", "branch_id", branchID, "error", err)
		return nil, status.Errorf(codes.Internal, "submit manual sales: %v", err)
	}
	return &salespb.SubmitSalesResponse{Record: utils.ToPBSalesRecord(rec)}, nil
}

func (s *SalesServer) ListSales(ctx context.Context, req *salespb.ListSalesRequest) (*salespb.ListSalesResponse, error) {
	branchID, from, to, err := s.parseRange(req.GetBranchId(), req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	recs, err := s.salesRepo.ListRange(ctx, branchID, from, to)
	if err != nil {
		s.logger.Error("failed to list sales", "branch_id", branchID, "error", err)
		return nil, status.Errorf(codes.Internal, "list sales: %v", err)
	}

	out := make([]*salespb.SalesRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBSalesRecord(r))
	}
	return &salespb.ListSalesResponse{Records: out}, nil
}

func (s *SalesServer) ListFlagged(ctx context.Context, req *salespb.ListFlaggedRequest) (*salespb.ListSalesResponse, error) {
	var branchID *uuid.UUID
	if bid := strings.TrimSpace(req.GetBranchId()); bid != "" {
		id, err := uuid.Parse(bid)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "branch_id must be a UUID")
		}
		branchID = &id
	}

	recs, err := s.salesRepo.ListFlagged(ctx, branchID)
	if err != nil {
		s.logger.Error("failed to list flagged sales", "error", err)
		return nil, status.Errorf(codes.Internal, "list flagged: %v", err)
	}

	out := make([]*salespb.SalesRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBSalesRecord(r))
	}
	return &salespb.ListSalesResponse{Records: out}, nil
}

func (s *SalesServer) ExportSales(ctx context.Context, req *salespb.ExportSalesRequest) (*salespb.ExportSalesResponse, error) {
	if strings.TrimSpace(req.GetBranchId()) == "" {
		return nil, status.Error(codes.InvalidArgument, "branch_id is required")
	}
	branchID, err := uuid.Parse(req.GetBranchId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "branch_id must be a UUID")
	}

	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := utils.ParseYMD(td)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	xlsx, err := s.exportSvc.ExportSalesXLSX(ctx, branchID, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "branch_id", branchID, "error", err)
		return nil, status.Errorf(codes.Internal, "export sales: %v", err)
	}
	return &salespb.ExportSalesResponse{Xlsx: xlsx}, nil
}

func (s *SalesServer) parseRange(branchID, fromDate, toDate string) (uuid.UUID, time.Time, time.Time, error) {
	if strings.TrimSpace(branchID) == "" {
		return uuid.Nil, time.Time{}, time.Time{}, status.Error(codes.InvalidArgument, "branch_id is required")
	}
	id, err := uuid.Parse(branchID)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, status.Error(codes.InvalidArgument, "branch_id must be a UUID")
	}

	from := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	if fd := strings.TrimSpace(fromDate); fd != "" {
		if from, err = utils.ParseYMD(fd); err != nil {
			return uuid.Nil, time.Time{}, time.Time{}, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
	}
	now := time.Now().UTC()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if td := strings.TrimSpace(toDate); td != "" {
		if to, err = utils.ParseYMD(td); err != nil {
			return uuid.Nil, time.Time{}, time.Time{}, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
	}
	return id, from, to, nil
}
