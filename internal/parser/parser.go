// Package parser turns OCR'd receipt text into a structured sales summary.
//
// Receipts arrive as a single text blob produced by an external OCR or
// vision pass over a photo. The scanner walks the lines once, tracking which
// region of the receipt it is inside, and pulls numeric fields out with
// line-oriented heuristics. It never fails on malformed input: fields the
// text does not yield are simply left unset.
package parser

import (
	"strings"
	"unicode"

	"salestracker/constants"
)

// Parse scans the receipt text with the vocabulary for the given kind.
// Parsing is a pure function of the input: same text, same result.
func Parse(kind constants.ReceiptKind, text string) SalesSummary {
	if kind == constants.KindHomeDelivery {
		return ParseHomeDelivery(text)
	}
	return ParsePOS(text)
}

// ParsePOS scans a point-of-sale end-of-day receipt.
func ParsePOS(text string) SalesSummary {
	var sum SalesSummary
	lines := strings.Split(text, "\n")
	sec := SectionHeader

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if next, ok := posTransition(lower); ok {
			sec = next
			continue
		}

		switch sec {
		case SectionSummary:
			scanSummaryLine(&sum, line, lower)
		case SectionCash:
			scanCashLine(&sum, line, lower)
		case SectionCategory, SectionItem:
			if row, ok := parseCategoryRow(line, lower); ok {
				sum.Categories = append(sum.Categories, row)
			}
		}
	}

	// Fallback pass: the guest count often sits outside the summary block,
	// or the summary header itself was garbled past recognition.
	if sum.GuestCount == nil {
		if v, ok := largestGuestCount(lines); ok {
			sum.GuestCount = &v
		}
	}
	return sum
}

// ParseHomeDelivery scans a home-delivery sales report. Same section scanner
// as POS minus the tender-specific sections; the guest-count equivalent is
// the order count.
func ParseHomeDelivery(text string) SalesSummary {
	var sum SalesSummary
	lines := strings.Split(text, "\n")
	sec := SectionHeader

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if next, ok := hdTransition(lower); ok {
			sec = next
			continue
		}

		switch sec {
		case SectionSummary:
			scanHDSummaryLine(&sum, line, lower)
		case SectionCash:
			scanCashLine(&sum, line, lower)
		case SectionCategory, SectionItem:
			if row, ok := parseCategoryRow(line, lower); ok {
				sum.Categories = append(sum.Categories, row)
			}
		}
	}

	if sum.GuestCount == nil {
		// First "Orders: N" anywhere in the text, then the POS guest-count
		// pattern as a last resort.
		for _, line := range lines {
			if v, ok := orderCount(line); ok {
				sum.GuestCount = &v
				break
			}
		}
	}
	if sum.GuestCount == nil {
		if v, ok := largestGuestCount(lines); ok {
			sum.GuestCount = &v
		}
	}
	return sum
}

// scanSummaryLine applies the POS summary-section field rules to one line.
// Scalar fields are first-writer-wins; the guest count is largest-wins.
func scanSummaryLine(sum *SalesSummary, line, lower string) {
	if strings.HasPrefix(lower, "gross sale") && sum.GrossSales == nil {
		if v, ok := firstAmount(line); ok {
			sum.GrossSales = &v
		}
	}
	if strings.Contains(lower, "net sale") && sum.NetSales == nil {
		if v, ok := firstAmount(line); ok {
			sum.NetSales = &v
		}
	}
	if v, ok := guestCount(line); ok {
		if sum.GuestCount == nil || v > *sum.GuestCount {
			sum.GuestCount = &v
		}
	}
}

// scanHDSummaryLine applies the home-delivery summary rules to one line.
func scanHDSummaryLine(sum *SalesSummary, line, lower string) {
	if strings.HasPrefix(lower, "gross sale") && sum.GrossSales == nil {
		if v, ok := firstAmount(line); ok {
			sum.GrossSales = &v
		}
	}
	if strings.Contains(lower, "net sale") && sum.NetSales == nil {
		if v, ok := firstAmount(line); ok {
			sum.NetSales = &v
		}
	}
	if sum.GuestCount == nil {
		if v, ok := orderCount(line); ok {
			sum.GuestCount = &v
		}
	}
}

// scanCashLine records the cash-sales amount. Zero-amount cash lines are
// headers or placeholders, not values.
func scanCashLine(sum *SalesSummary, line, lower string) {
	if !strings.HasPrefix(lower, "cash sale") || sum.CashSales != nil {
		return
	}
	if v, ok := firstAmount(line); ok && v > 0 {
		sum.CashSales = &v
	}
}

// parseCategoryRow parses one row of a category/item table. A row must carry
// at least a quantity and an amount; rows whose first two tokens do not
// convert are dropped rather than defaulted. The synthetic totals row is
// excluded by name.
func parseCategoryRow(line, lower string) (CategoryLine, bool) {
	if strings.Contains(lower, "description") || isTableBorder(line) {
		return CategoryLine{}, false
	}
	toks := NumericTokens(line)
	if len(toks) < 2 {
		return CategoryLine{}, false
	}

	digit := strings.IndexFunc(line, unicode.IsDigit)
	if digit <= 0 {
		return CategoryLine{}, false
	}
	name := strings.TrimRight(strings.TrimSpace(line[:digit]), " .:-")
	if name == "" || strings.EqualFold(name, "total sales") {
		return CategoryLine{}, false
	}

	qty, err := parseCount(toks[0])
	if err != nil {
		return CategoryLine{}, false
	}
	amount, err := parseAmount(toks[1])
	if err != nil {
		return CategoryLine{}, false
	}
	pct := 0.0
	if len(toks) >= 3 {
		// A garbled third token only zeroes the percentage, never drops the row.
		if p, err := parseAmount(toks[2]); err == nil {
			pct = p
		}
	}
	// Known categories get their canonical label; anything else (item
	// rows, garbled labels) is kept as printed.
	if cat, ok := constants.Canonicalize(name); ok {
		name = string(cat)
	}
	return CategoryLine{Name: name, Quantity: qty, SalesAmount: amount, ContributionPct: pct}, true
}
