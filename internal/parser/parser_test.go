package parser

import (
	"reflect"
	"testing"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func TestParsePOS_FullReceipt(t *testing.T) {
	text := `IBQ LAMCY MALL
Date: 02/03/2026  TM: 104
Sales Summary
Gross Sales: 1,333.31  GC: 32
Returns....: 0.00
Net Sales..: 1,314.46
Cash Sales
Cash Sales  482.00  GC: 2
Category Sales Summary
Description     Qty    Sales   Pct
===============================
Cups & Cones    31   468.54  35.1
Sundaes         12   201.00  15.3
TOTAL SALES     43   669.54  50.4`

	sum := ParsePOS(text)

	if sum.GrossSales == nil || *sum.GrossSales != 1333.31 {
		t.Errorf("gross sales: got %v, want 1333.31", sum.GrossSales)
	}
	if sum.NetSales == nil || *sum.NetSales != 1314.46 {
		t.Errorf("net sales: got %v, want 1314.46", sum.NetSales)
	}
	if sum.GuestCount == nil || *sum.GuestCount != 32 {
		t.Errorf("guest count: got %v, want 32", sum.GuestCount)
	}
	if sum.CashSales == nil || *sum.CashSales != 482.00 {
		t.Errorf("cash sales: got %v, want 482.00", sum.CashSales)
	}

	want := []CategoryLine{
		{Name: "Cups & Cones", Quantity: 31, SalesAmount: 468.54, ContributionPct: 35.1},
		{Name: "Sundaes", Quantity: 12, SalesAmount: 201.00, ContributionPct: 15.3},
	}
	if !reflect.DeepEqual(sum.Categories, want) {
		t.Errorf("categories:\n got %+v\nwant %+v", sum.Categories, want)
	}
}

func TestParsePOS_NoSections(t *testing.T) {
	sum := ParsePOS("thank you for visiting\nplease come again\nxyz 123")
	if !sum.Empty() {
		t.Errorf("expected empty summary, got %+v", sum)
	}
}

func TestParsePOS_FirstNetSaleWins(t *testing.T) {
	text := `Sales Summary
Net Sales: 100.00
Net Sales: 200.00`
	sum := ParsePOS(text)
	if sum.NetSales == nil || *sum.NetSales != 100.00 {
		t.Errorf("net sales: got %v, want first value 100.00", sum.NetSales)
	}
}

func TestParsePOS_LargestGuestCountWins(t *testing.T) {
	// The summary total GC and the smaller cash-only GC both print; the
	// largest figure is authoritative.
	text := `Sales Summary
GC: 32
Cash Sale
Cash Sales  50.00 GC: 2`
	sum := ParsePOS(text)
	if sum.GuestCount == nil || *sum.GuestCount != 32 {
		t.Errorf("guest count: got %v, want 32", sum.GuestCount)
	}
}

func TestParsePOS_GuestCountFallbackPass(t *testing.T) {
	// No summary section at all: the fallback pass scans every line and
	// keeps the largest match.
	text := `GC: 4
something else
gc. 29`
	sum := ParsePOS(text)
	if sum.GuestCount == nil || *sum.GuestCount != 29 {
		t.Errorf("guest count: got %v, want 29", sum.GuestCount)
	}
}

func TestParsePOS_RGCIsNotGuestCount(t *testing.T) {
	text := `Sales Summary
RGC: 99`
	sum := ParsePOS(text)
	if sum.GuestCount != nil {
		t.Errorf("guest count: got %v, want unset (RGC is returns GC)", *sum.GuestCount)
	}
}

func TestParsePOS_OCRConfusedGuestCount(t *testing.T) {
	// OCR reads "GC" as "6C".
	text := `Sales Summary
6C: 41`
	sum := ParsePOS(text)
	if sum.GuestCount == nil || *sum.GuestCount != 41 {
		t.Errorf("guest count: got %v, want 41", sum.GuestCount)
	}
}

func TestParsePOS_CashZeroIgnored(t *testing.T) {
	text := `Cash Sale
Cash Sales 0.00`
	sum := ParsePOS(text)
	if sum.CashSales != nil {
		t.Errorf("cash sales: got %v, want unset for zero amount", *sum.CashSales)
	}
}

func TestParsePOS_CashOutsideCashSection(t *testing.T) {
	// A cash line inside the credit section must not set cash sales.
	text := `Cr.Sales
Cash Sales 75.00`
	sum := ParsePOS(text)
	if sum.CashSales != nil {
		t.Errorf("cash sales: got %v, want unset outside cash section", *sum.CashSales)
	}
}

func TestParsePOS_TotalRowExcluded(t *testing.T) {
	text := `Item Sales Summary
Total Sales   99  1,000.00  100.0
Vanilla Cone  10     45.00    4.5`
	sum := ParsePOS(text)
	if len(sum.Categories) != 1 || sum.Categories[0].Name != "Vanilla Cone" {
		t.Errorf("categories: got %+v, want only Vanilla Cone", sum.Categories)
	}
}

func TestParsePOS_RowMissingAmountDropped(t *testing.T) {
	text := `Category Sales Summary
Beverages 7
Cakes 3 120.00`
	sum := ParsePOS(text)
	if len(sum.Categories) != 1 || sum.Categories[0].Name != "Cakes" {
		t.Errorf("categories: got %+v, want only Cakes", sum.Categories)
	}
}

func TestParsePOS_RowBadQuantityDropped(t *testing.T) {
	// OCR merged two rows: the first token is no longer a clean integer.
	text := `Category Sales Summary
Sundaes 12.5.3 90.00 8.0`
	sum := ParsePOS(text)
	if len(sum.Categories) != 0 {
		t.Errorf("categories: got %+v, want none", sum.Categories)
	}
}

func TestParsePOS_BadPercentKeepsRow(t *testing.T) {
	text := `Category Sales Summary
Sundaes 12 90.00`
	sum := ParsePOS(text)
	if len(sum.Categories) != 1 {
		t.Fatalf("categories: got %+v, want one row", sum.Categories)
	}
	if sum.Categories[0].ContributionPct != 0 {
		t.Errorf("contribution pct: got %v, want 0", sum.Categories[0].ContributionPct)
	}
}

func TestParsePOS_Idempotent(t *testing.T) {
	text := `Sales Summary
Gross Sales: 1,333.31 GC: 32
Net Sales: 1,314.46
Category Sales Summary
Cups & Cones 31 468.54 35.1`
	a := ParsePOS(text)
	b := ParsePOS(text)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("parse is not idempotent:\n a=%+v\n b=%+v", a, b)
	}
}

func TestParseHomeDelivery_Orders(t *testing.T) {
	text := `1H: KARAMA
Sales Summary
Gross Sales: 890.00
Net Sales: 850.50
Orders: 16`
	sum := ParseHomeDelivery(text)
	if sum.GuestCount == nil || *sum.GuestCount != 16 {
		t.Errorf("orders: got %v, want 16", sum.GuestCount)
	}
	if sum.GrossSales == nil || *sum.GrossSales != 890.00 {
		t.Errorf("gross sales: got %v, want 890.00", sum.GrossSales)
	}
	if sum.NetSales == nil || *sum.NetSales != 850.50 {
		t.Errorf("net sales: got %v, want 850.50", sum.NetSales)
	}
}

func TestParseHomeDelivery_OrdersFallbackScan(t *testing.T) {
	// "Orders" line outside any recognized section: found by the full-text
	// fallback, first match wins.
	text := `some header
Orders: 16
Orders: 40`
	sum := ParseHomeDelivery(text)
	if sum.GuestCount == nil || *sum.GuestCount != 16 {
		t.Errorf("orders: got %v, want first match 16", sum.GuestCount)
	}
}

func TestParseHomeDelivery_GCLastResort(t *testing.T) {
	text := `Sales Summary
Net Sales: 300.00
GC: 12`
	sum := ParseHomeDelivery(text)
	if sum.GuestCount == nil || *sum.GuestCount != 12 {
		t.Errorf("orders: got %v, want GC fallback 12", sum.GuestCount)
	}
}

func TestParse_DispatchesByKind(t *testing.T) {
	text := `Sales Summary
Orders: 7`
	if got := Parse("HOME_DELIVERY", text); got.GuestCount == nil || *got.GuestCount != 7 {
		t.Errorf("home delivery dispatch: got %+v", got.GuestCount)
	}
	if got := Parse("POS", text); got.GuestCount != nil {
		t.Errorf("pos dispatch: got %v, want unset (no GC pattern)", *got.GuestCount)
	}
}
