package parser

import "strings"

// posTransition reports the section a line switches a POS scan into.
// Checked in priority order against the lowercased line; a line that fires a
// transition is consumed whole and never feeds field extraction.
func posTransition(lower string) (Section, bool) {
	switch {
	case strings.Contains(lower, "sales summary") &&
		!strings.Contains(lower, "category") && !strings.Contains(lower, "item"):
		return SectionSummary, true
	case isCashHeader(lower):
		return SectionCash, true
	case strings.HasPrefix(lower, "cr. sales") || strings.HasPrefix(lower, "cr.sales"):
		return SectionCredit, true
	case strings.Contains(lower, "telabat") && strings.Contains(lower, "cr"):
		return SectionTelabat, true
	case strings.HasPrefix(lower, "ew. sales") || strings.HasPrefix(lower, "ewallet"):
		return SectionEWallet, true
	case strings.Contains(lower, "category sales summary"):
		return SectionCategory, true
	case strings.Contains(lower, "item sales summary"):
		return SectionItem, true
	}
	return SectionHeader, false
}

// hdTransition is the home-delivery variant: no credit/telabat/e-wallet
// sections, otherwise the same vocabulary.
func hdTransition(lower string) (Section, bool) {
	switch {
	case strings.Contains(lower, "sales summary") &&
		!strings.Contains(lower, "category") && !strings.Contains(lower, "item"):
		return SectionSummary, true
	case isCashHeader(lower):
		return SectionCash, true
	case strings.Contains(lower, "category sales summary"):
		return SectionCategory, true
	case strings.Contains(lower, "item sales summary"):
		return SectionItem, true
	}
	return SectionHeader, false
}

// isCashHeader reports whether the line is exactly "cash sale" or
// "cash sales", ignoring any whitespace. A line that carries an amount
// ("Cash Sales 482.00") is a field line, not a header.
func isCashHeader(lower string) bool {
	stripped := strings.Join(strings.Fields(lower), "")
	return stripped == "cashsale" || stripped == "cashsales"
}

// isTableBorder reports whether the line is a ruled border of a category or
// item table ("======", "------").
func isTableBorder(line string) bool {
	seen := false
	for _, r := range line {
		switch r {
		case '=', '-', ' ':
			if r != ' ' {
				seen = true
			}
		default:
			return false
		}
	}
	return seen
}
