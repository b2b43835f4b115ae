// Package extraction combines the receipt parser and the branch-identity
// check into the single result the submission flow consumes.
package extraction

import (
	"log/slog"

	"salestracker/constants"
	"salestracker/internal/branch"
	"salestracker/internal/parser"
)

// Result is the full outcome of one receipt extraction.
//
// BranchMatch defaults to true when no candidate could be extracted: an
// unverifiable receipt must not block submission, it just cannot confirm
// anything either.
type Result struct {
	Summary        parser.SalesSummary `json:"summary"`
	BranchName     string              `json:"branch_name,omitempty"`
	BranchStrategy branch.Strategy     `json:"branch_strategy,omitempty"`
	BranchMatch    bool                `json:"branch_match"`
	Confidence     float32             `json:"confidence"`
}

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// Extract parses one receipt text blob and verifies its branch identity
// against the canonical directory name. Pure per call; safe to run across
// receipts in parallel.
func (s *Service) Extract(kind constants.ReceiptKind, text, canonicalName string) Result {
	res := Result{
		Summary:     parser.Parse(kind, text),
		BranchMatch: true,
	}

	if cand, ok := branch.Extract(kind, text); ok {
		res.BranchName = cand.RawText
		res.BranchStrategy = cand.Strategy
		// No canonical name means there is nothing to verify against;
		// leave the match at its permissive default.
		if canonicalName != "" {
			res.BranchMatch = branch.Match(cand.RawText, canonicalName)
		}
	}

	res.Confidence = heuristicConfidence(&res.Summary, res.BranchName != "")

	s.logger.Info("extraction.done",
		"kind", string(kind),
		"fields", res.Summary.FieldCount(),
		"categories", len(res.Summary.Categories),
		"branch_name", res.BranchName,
		"branch_match", res.BranchMatch,
		"confidence", res.Confidence,
	)
	return res
}

// heuristicConfidence scores how much of the receipt the scan recovered.
// Not a probability: a coarse signal for the caller's review threshold.
func heuristicConfidence(sum *parser.SalesSummary, hasBranch bool) float32 {
	score := float32(0.1) // base
	score += 0.15 * float32(sum.FieldCount())
	if len(sum.Categories) > 0 {
		score += 0.2
	}
	if hasBranch {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
