// Package intake turns a raw receipt submission into a stored sales record.
package intake

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"salestracker/constants"
	"salestracker/internal/entity"
	"salestracker/internal/extraction"
	"salestracker/internal/repository"
)

// Submission is one steward upload: the OCR'd text of a sales receipt photo
// plus the context the upload path already knows.
type Submission struct {
	BranchID     uuid.UUID
	BusinessDate time.Time
	Window       string
	Kind         constants.ReceiptKind
	Text         string
	SubmittedAt  time.Time
	TraceID      string
}

type Processor struct {
	salesRepo  repository.SalesRepository
	branchRepo repository.BranchRepository
	extractor  *extraction.Service
	logger     *slog.Logger
}

func NewProcessor(salesRepo repository.SalesRepository, branchRepo repository.BranchRepository, extractor *extraction.Service, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		salesRepo:  salesRepo,
		branchRepo: branchRepo,
		extractor:  extractor,
		logger:     logger,
	}
}

// Process parses the submission text, verifies the branch identity printed
// on the receipt against the branch it was submitted for, and upserts the
// reading. A mismatch stores the record FLAGGED rather than rejecting it;
// area managers review flagged rows.
func (p *Processor) Process(ctx context.Context, sub Submission) (*entity.SalesRecord, error) {
	br, err := p.branchRepo.GetBranch(ctx, sub.BranchID)
	if err != nil {
		return nil, fmt.Errorf("load branch %s: %w", sub.BranchID, err)
	}

	res := p.extractor.Extract(sub.Kind, sub.Text, br.Name)

	status := constants.SubmissionVerified
	if !res.BranchMatch {
		status = constants.SubmissionFlagged
		p.logger.Warn("branch identity mismatch",
			"branch", br.Name,
			"receipt_branch", res.BranchName,
			"strategy", res.BranchStrategy,
			"trace_id", sub.TraceID,
		)
	}

	conf := res.Confidence
	req := &repository.UpsertSalesRequest{
		BranchID:     sub.BranchID,
		BusinessDate: sub.BusinessDate,
		Window:       sub.Window,
		Kind:         sub.Kind,
		Summary:      res.Summary,
		Status:       status,
		Confidence:   &conf,
		BranchMatch:  res.BranchMatch,
	}
	if res.BranchName != "" {
		req.BranchRaw = &res.BranchName
	}
	if sub.Text != "" {
		req.RawText = &sub.Text
	}

	rec, err := p.salesRepo.Upsert(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("store sales reading: %w", err)
	}

	p.logger.Info("submission processed",
		"branch", br.Name,
		"date", sub.BusinessDate.Format("2006-01-02"),
		"window", sub.Window,
		"kind", sub.Kind,
		"status", status,
		"confidence", conf,
		"trace_id", sub.TraceID,
	)
	return rec, nil
}
