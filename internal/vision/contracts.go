// Package vision handles the JSON output of the external vision model used
// for budget-sheet photos. The model call itself happens outside this
// service; we receive its raw text, clean it up, validate it against a
// schema, and decode it into typed rows.
package vision

// BudgetSheet is the normalized shape we want from the vision model for a
// monthly DAILY SALES TRACKER photo.
type BudgetSheet struct {
	Header BudgetHeader `json:"header"`
	Days   []BudgetDay  `json:"days"`
	Totals BudgetTotals `json:"totals"`
	KPIs   BudgetKPIs   `json:"kpis"`
}

type BudgetHeader struct {
	ParlorName  string `json:"parlor_name"`
	MonthCode   string `json:"month_code"` // YYYY-MM
	AreaManager string `json:"area_manager,omitempty"`
}

// BudgetDay is one row of the tracker sheet. Nil means the cell was empty
// or dashed out; sheets are filled in as the month progresses.
type BudgetDay struct {
	Day          int      `json:"day"`
	Weekday      string   `json:"weekday,omitempty"`
	Budget       *float64 `json:"budget,omitempty"`
	LYSales      *float64 `json:"ly_sales,omitempty"`
	LYGuestCount *int     `json:"ly_guest_count,omitempty"`
	MTDBudget    *float64 `json:"mtd_budget,omitempty"`
	MTDLYSales   *float64 `json:"mtd_ly_sales,omitempty"`
}

type BudgetTotals struct {
	Budget       *float64 `json:"budget,omitempty"`
	LYSales      *float64 `json:"ly_sales,omitempty"`
	LYGuestCount *int     `json:"ly_guest_count,omitempty"`
}

type BudgetKPIs struct {
	LYATV         *float64 `json:"ly_atv,omitempty"`
	LYAUV         *float64 `json:"ly_auv,omitempty"`
	LYCakeQty     *float64 `json:"ly_cake_qty,omitempty"`
	LYHandPackQty *float64 `json:"ly_hand_pack_qty,omitempty"`
}
