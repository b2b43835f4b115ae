package extraction

import "testing"

func TestExtract_POSEndToEnd(t *testing.T) {
	svc := NewService(nil)

	text := `1BQ LANCY MALL
Date: 02/03/2026
Sales Summary
Gross Sales: 1,333.31  GC: 32
Net Sales..: 1,314.46
Category Sales Summary
Cups & Cones    31   468.54  35.1`

	res := svc.Extract("POS", text, "LAMCY MALL / KARAMA 3")

	if res.Summary.GrossSales == nil || *res.Summary.GrossSales != 1333.31 {
		t.Errorf("gross sales: got %v", res.Summary.GrossSales)
	}
	if res.BranchName != "1BQ LANCY MALL" {
		t.Errorf("branch name: got %q", res.BranchName)
	}
	if !res.BranchMatch {
		t.Error("expected branch match despite the LANCY/LAMCY misread")
	}
	if res.Confidence <= 0.5 {
		t.Errorf("confidence: got %v, want > 0.5 for a rich extraction", res.Confidence)
	}
}

func TestExtract_NoCandidateDefaultsToMatch(t *testing.T) {
	svc := NewService(nil)
	res := svc.Extract("POS", "nothing useful here", "Lamcy Mall")
	if res.BranchName != "" {
		t.Errorf("branch name: got %q, want empty", res.BranchName)
	}
	if !res.BranchMatch {
		t.Error("missing candidate means cannot-verify, which must not read as a mismatch")
	}
}

func TestExtract_MismatchFlagged(t *testing.T) {
	svc := NewService(nil)
	res := svc.Extract("POS", "1BQ LAMCY MALL\nSales Summary\nNet Sales: 10.00", "Fujairah Tower")
	if res.BranchMatch {
		t.Error("expected a mismatch against an unrelated canonical name")
	}
}

func TestExtract_EmptyTextLowConfidence(t *testing.T) {
	svc := NewService(nil)
	res := svc.Extract("POS", "", "Lamcy Mall")
	if !res.Summary.Empty() {
		t.Errorf("expected empty summary, got %+v", res.Summary)
	}
	if res.Confidence > 0.2 {
		t.Errorf("confidence: got %v, want low for an empty extraction", res.Confidence)
	}
}
