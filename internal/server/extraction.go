package server

import (
	"context"
	"log/slog"
	"strings"

	"salestracker/constants"
	"salestracker/internal/common"
	"salestracker/internal/extraction"
	"salestracker/internal/utils"

	salespb "salestracker/gen/proto/salestracker/v1"
)

type ExtractionServer struct {
	salespb.UnimplementedExtractionServiceServer
	extractor *extraction.Service
	logger    *slog.Logger
}

func NewExtractionServer(extractor *extraction.Service, logger *slog.Logger) *ExtractionServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractionServer{extractor: extractor, logger: logger}
}

// ParseReceipt runs the parser and branch check without persisting anything.
// Used by the review UI to preview what a submission would record.
func (s *ExtractionServer) ParseReceipt(_ context.Context, req *salespb.ParseReceiptRequest) (*salespb.ParseReceiptResponse, error) {
	v := common.NewValidator().
		Field("kind", req.GetKind(), common.Required, common.ReceiptKind).
		Field("text", req.GetText(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	res := s.extractor.Extract(
		constants.ReceiptKind(req.GetKind()),
		req.GetText(),
		strings.TrimSpace(req.GetBranchName()),
	)

	return &salespb.ParseReceiptResponse{
		Summary:        utils.ToPBSummary(res.Summary),
		BranchRaw:      res.BranchName,
		BranchStrategy: string(res.BranchStrategy),
		BranchMatch:    res.BranchMatch,
		Confidence:     res.Confidence,
	}, nil
}
