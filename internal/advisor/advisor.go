// Package advisor turns a day's parsed sales numbers and budget targets
// into ranked, human-readable advice for the branch steward. Pure
// aggregation over already-extracted fields; no I/O.
package advisor

import (
	"fmt"
	"sort"

	"salestracker/internal/parser"
)

type Priority string

const (
	PriorityInfo     Priority = "info"
	PrioritySuccess  Priority = "success"
	PriorityWarning  Priority = "warning"
	PriorityCritical Priority = "critical"
)

// Advice is one actionable observation about today's pace.
type Advice struct {
	Type     string   `json:"type"`
	Priority Priority `json:"priority"`
	Title    string   `json:"title"`
	Detail   string   `json:"detail"`
}

// Snapshot carries the day's numbers the strategies work from. Actuals are
// the combined POS + home-delivery figures for the day so far.
type Snapshot struct {
	Weekday      string
	BudgetAmount float64
	BudgetGC     int
	LYSales      float64
	LYGuestCount int

	HasSales    bool
	ActualGross float64
	ActualGC    int
	Categories  []parser.CategoryLine
}

// Advise builds the advice list for one branch-day.
func Advise(s Snapshot) []Advice {
	var out []Advice

	achPct := 0.0
	if s.BudgetAmount > 0 {
		achPct = s.ActualGross / s.BudgetAmount * 100
	}
	remaining := s.BudgetAmount - s.ActualGross

	out = append(out, achievement(s, achPct, remaining))

	if !s.HasSales {
		return out
	}

	currentATV := 0.0
	if s.ActualGC > 0 {
		currentATV = s.ActualGross / float64(s.ActualGC)
	}
	budgetATV := 0.0
	if s.BudgetGC > 0 {
		budgetATV = s.BudgetAmount / float64(s.BudgetGC)
	}
	lyATV := 0.0
	if s.LYGuestCount > 0 {
		lyATV = s.LYSales / float64(s.LYGuestCount)
	}

	if budgetATV > 0 {
		if currentATV >= budgetATV {
			out = append(out, Advice{
				Type: "atv", Priority: PrioritySuccess,
				Title:  fmt.Sprintf("ATV is %.2f AED - above budget (%.2f)", currentATV, budgetATV),
				Detail: fmt.Sprintf("LY ATV was %.2f AED. Spend per guest is strong; focus on footfall.", lyATV),
			})
		} else {
			out = append(out, Advice{
				Type: "atv", Priority: PriorityWarning,
				Title:  fmt.Sprintf("Boost ATV by %.2f AED (%.2f → %.2f)", budgetATV-currentATV, currentATV, budgetATV),
				Detail: fmt.Sprintf("LY ATV: %.2f. Upsell doubles, toppings, sundaes over scoops.", lyATV),
			})
		}
	}

	if gcRemaining := s.BudgetGC - s.ActualGC; gcRemaining > 0 {
		projected := s.ActualGross + float64(gcRemaining)*currentATV
		out = append(out, Advice{
			Type: "gc", Priority: PriorityInfo,
			Title: fmt.Sprintf("Need %d more guests to hit target GC (%d)", gcRemaining, s.BudgetGC),
			Detail: fmt.Sprintf("At current ATV (%.2f), %d guests = %.0f AED more → total %.0f AED",
				currentATV, gcRemaining, float64(gcRemaining)*currentATV, projected),
		})

		if remaining > 0 {
			neededATV := remaining / float64(gcRemaining)
			prio := PriorityInfo
			if remaining > s.BudgetAmount*0.3 {
				prio = PriorityCritical
			}
			push := "Maintain current ATV - focus on footfall."
			if neededATV > currentATV {
				push = "Must increase ATV - push premium items."
			}
			out = append(out, Advice{
				Type: "strategy", Priority: prio,
				Title:  "Remaining hours: ATV x guest strategy",
				Detail: fmt.Sprintf("Need %d guests at %.2f AED each = %.0f AED. %s", gcRemaining, neededATV, remaining, push),
			})
		}
	}

	if top, ok := topCategory(s.Categories); ok {
		out = append(out, Advice{
			Type: "category", Priority: PriorityInfo,
			Title:  fmt.Sprintf("Top seller: %s (%.1f%%)", top.Name, top.ContributionPct),
			Detail: fmt.Sprintf("%d sold, %.0f AED. Leverage this: suggest add-ons and upgrades.", top.Quantity, top.SalesAmount),
		})
	}

	if s.LYSales > 0 {
		growth := (s.ActualGross - s.LYSales) / s.LYSales * 100
		gcGrowth := 0.0
		if s.LYGuestCount > 0 {
			gcGrowth = (float64(s.ActualGC) - float64(s.LYGuestCount)) / float64(s.LYGuestCount) * 100
		}
		prio := PrioritySuccess
		if growth < 0 {
			prio = PriorityWarning
		}
		out = append(out, Advice{
			Type: "ly", Priority: prio,
			Title: fmt.Sprintf("vs LY: %+.1f%% sales | %+.1f%% GC", growth, gcGrowth),
			Detail: fmt.Sprintf("LY %s: %.0f AED (%d GC) → today: %.0f AED (%d GC)",
				s.Weekday, s.LYSales, s.LYGuestCount, s.ActualGross, s.ActualGC),
		})
	}

	return out
}

func achievement(s Snapshot, achPct, remaining float64) Advice {
	switch {
	case !s.HasSales:
		return Advice{
			Type: "no_data", Priority: PriorityInfo,
			Title:  fmt.Sprintf("No sales uploaded yet - target: %.0f AED", s.BudgetAmount),
			Detail: fmt.Sprintf("%s budget: %.0f AED | LY did %.0f AED with %d guests", s.Weekday, s.BudgetAmount, s.LYSales, s.LYGuestCount),
		}
	case achPct >= 100:
		return Advice{
			Type: "achievement", Priority: PrioritySuccess,
			Title:  fmt.Sprintf("Budget achieved! %.1f%%", achPct),
			Detail: fmt.Sprintf("%.0f vs %.0f target, exceeded by %.0f AED", s.ActualGross, s.BudgetAmount, -remaining),
		}
	case achPct >= 75:
		return Advice{
			Type: "achievement", Priority: PriorityWarning,
			Title:  fmt.Sprintf("%.1f%% - only %.0f AED to go", achPct, remaining),
			Detail: fmt.Sprintf("Push hard! %.0f / %.0f AED", s.ActualGross, s.BudgetAmount),
		}
	default:
		return Advice{
			Type: "achievement", Priority: PriorityCritical,
			Title:  fmt.Sprintf("%.1f%% achieved - need %.0f AED more", achPct, remaining),
			Detail: fmt.Sprintf("Current: %.0f → target: %.0f AED", s.ActualGross, s.BudgetAmount),
		}
	}
}

func topCategory(cats []parser.CategoryLine) (parser.CategoryLine, bool) {
	if len(cats) == 0 {
		return parser.CategoryLine{}, false
	}
	sorted := make([]parser.CategoryLine, len(cats))
	copy(sorted, cats)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ContributionPct > sorted[j].ContributionPct
	})
	return sorted[0], true
}
