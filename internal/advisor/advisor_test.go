package advisor

import (
	"testing"

	"salestracker/internal/parser"
)

func find(t *testing.T, advs []Advice, typ string) Advice {
	t.Helper()
	for _, a := range advs {
		if a.Type == typ {
			return a
		}
	}
	t.Fatalf("no advice of type %q in %+v", typ, advs)
	return Advice{}
}

func TestAdviseNoSales(t *testing.T) {
	advs := Advise(Snapshot{
		Weekday: "Friday", BudgetAmount: 5000, BudgetGC: 120,
		LYSales: 4200, LYGuestCount: 110,
	})
	if len(advs) != 1 {
		t.Fatalf("expected only the no-data advice, got %d", len(advs))
	}
	if advs[0].Type != "no_data" || advs[0].Priority != PriorityInfo {
		t.Fatalf("unexpected advice %+v", advs[0])
	}
}

func TestAdviseBudgetAchieved(t *testing.T) {
	advs := Advise(Snapshot{
		BudgetAmount: 3000, BudgetGC: 80,
		HasSales: true, ActualGross: 3200, ActualGC: 85,
	})
	a := find(t, advs, "achievement")
	if a.Priority != PrioritySuccess {
		t.Fatalf("achieved budget should be a success, got %s", a.Priority)
	}
}

func TestAdviseCriticalGap(t *testing.T) {
	advs := Advise(Snapshot{
		BudgetAmount: 5000, BudgetGC: 120,
		HasSales: true, ActualGross: 1500, ActualGC: 40,
	})
	if a := find(t, advs, "achievement"); a.Priority != PriorityCritical {
		t.Fatalf("30%% achievement should be critical, got %s", a.Priority)
	}
	// 3500 remaining > 30% of budget, so the hourly strategy escalates too.
	if a := find(t, advs, "strategy"); a.Priority != PriorityCritical {
		t.Fatalf("large remaining gap should make the strategy critical, got %s", a.Priority)
	}
}

func TestAdviseATVBelowBudget(t *testing.T) {
	advs := Advise(Snapshot{
		BudgetAmount: 4000, BudgetGC: 100, // budget ATV 40
		HasSales: true, ActualGross: 3000, ActualGC: 100, // current ATV 30
	})
	a := find(t, advs, "atv")
	if a.Priority != PriorityWarning {
		t.Fatalf("below-budget ATV should warn, got %s", a.Priority)
	}
}

func TestAdviseTopCategory(t *testing.T) {
	advs := Advise(Snapshot{
		BudgetAmount: 4000, BudgetGC: 100,
		HasSales: true, ActualGross: 3000, ActualGC: 90,
		Categories: []parser.CategoryLine{
			{Name: "Beverages", Quantity: 12, SalesAmount: 180, ContributionPct: 6.0},
			{Name: "Cups & Cones", Quantity: 60, SalesAmount: 1900, ContributionPct: 63.3},
		},
	})
	a := find(t, advs, "category")
	if want := "Top seller: Cups & Cones (63.3%)"; a.Title != want {
		t.Fatalf("got %q, want %q", a.Title, want)
	}
}

func TestAdviseVsLastYear(t *testing.T) {
	advs := Advise(Snapshot{
		BudgetAmount: 4000, BudgetGC: 100,
		LYSales: 3500, LYGuestCount: 95,
		HasSales: true, ActualGross: 3000, ActualGC: 90,
	})
	a := find(t, advs, "ly")
	if a.Priority != PriorityWarning {
		t.Fatalf("negative growth vs LY should warn, got %s", a.Priority)
	}
}
