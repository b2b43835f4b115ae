package parser

// Section identifies the region of the receipt text currently being scanned.
// Transitions are one-directional triggers fired by specific line content;
// once a later section starts, earlier-section field rules no longer apply.
type Section int

const (
	SectionHeader Section = iota
	SectionSummary
	SectionCash
	SectionCredit
	SectionTelabat
	SectionEWallet
	SectionCategory
	SectionItem
)

func (s Section) String() string {
	switch s {
	case SectionHeader:
		return "header"
	case SectionSummary:
		return "summary"
	case SectionCash:
		return "cash"
	case SectionCredit:
		return "credit"
	case SectionTelabat:
		return "telabat"
	case SectionEWallet:
		return "ewallet"
	case SectionCategory:
		return "category"
	case SectionItem:
		return "item"
	}
	return "unknown"
}

// CategoryLine is one row of a category or item sales breakdown.
type CategoryLine struct {
	Name            string  `json:"name"`
	Quantity        int     `json:"quantity"`
	SalesAmount     float64 `json:"sales_amount"`
	ContributionPct float64 `json:"contribution_pct"`
}

// SalesSummary is the flat result of scanning one receipt text.
//
// Pointer fields stay nil when the receipt never showed the value; a printed
// zero is a legitimate amount and must stay distinguishable from absent.
// GuestCount holds the POS guest count or, for home delivery, the order count.
type SalesSummary struct {
	GrossSales *float64       `json:"gross_sales,omitempty"`
	NetSales   *float64       `json:"net_sales,omitempty"`
	GuestCount *int           `json:"guest_count,omitempty"`
	CashSales  *float64       `json:"cash_sales,omitempty"`
	Categories []CategoryLine `json:"categories,omitempty"`
}

// Empty reports whether nothing at all was extracted. Callers should treat
// an empty summary as a low-confidence extraction, not as an error.
func (s *SalesSummary) Empty() bool {
	return s.FieldCount() == 0 && len(s.Categories) == 0
}

// FieldCount returns how many scalar fields were found on the receipt.
func (s *SalesSummary) FieldCount() int {
	n := 0
	if s.GrossSales != nil {
		n++
	}
	if s.NetSales != nil {
		n++
	}
	if s.GuestCount != nil {
		n++
	}
	if s.CashSales != nil {
		n++
	}
	return n
}
