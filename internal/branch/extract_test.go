package branch

import (
	"strings"
	"testing"

	"salestracker/constants"
)

func TestExtract_POSPrefix(t *testing.T) {
	text := `Galadari Ice Cream Co.
1BQ LAMCY MALL
Date: 02/03/2026`
	c, ok := Extract(constants.KindPointOfSale, text)
	if !ok {
		t.Fatal("expected a candidate")
	}
	if c.Strategy != StrategyPrefix {
		t.Errorf("strategy: got %s, want %s", c.Strategy, StrategyPrefix)
	}
	if c.RawText != "1BQ LAMCY MALL" {
		t.Errorf("raw text: got %q, want %q", c.RawText, "1BQ LAMCY MALL")
	}
}

func TestExtract_POSPrefixOCRVariants(t *testing.T) {
	for _, line := range []string{
		"IBQ DEIRA CITY CENTRE",
		"lBQ DEIRA CITY CENTRE",
		"iB0 DEIRA CITY CENTRE",
		"1B DEIRA CITY CENTRE",
	} {
		c, ok := Extract(constants.KindPointOfSale, line)
		if !ok || c.Strategy != StrategyPrefix {
			t.Errorf("line %q: expected prefix candidate, got %+v ok=%v", line, c, ok)
		}
	}
}

func TestExtract_POSPrefixStripsTrailingNoise(t *testing.T) {
	c, ok := Extract(constants.KindPointOfSale, "1BQ LAMCY MALL ab")
	if !ok || c.RawText != "1BQ LAMCY MALL" {
		t.Errorf("got %+v ok=%v, want trailing noise stripped", c, ok)
	}
}

func TestExtract_HDPrefix(t *testing.T) {
	text := `Home Delivery Summary
1H: KARAMA 3`
	c, ok := Extract(constants.KindHomeDelivery, text)
	if !ok {
		t.Fatal("expected a candidate")
	}
	if c.Strategy != StrategyPrefix {
		t.Errorf("strategy: got %s, want %s", c.Strategy, StrategyPrefix)
	}
	if c.RawText != "KARAMA 3" {
		t.Errorf("raw text: got %q, want %q", c.RawText, "KARAMA 3")
	}
}

func TestExtract_PrefixWindowBound(t *testing.T) {
	// The prefix sits past line 25: the prefix strategy must not see it.
	text := strings.Repeat("x\n", 30) + "1BQ LAMCY MALL"
	c, ok := Extract(constants.KindPointOfSale, text)
	if ok && c.Strategy == StrategyPrefix {
		t.Errorf("prefix strategy matched outside its window: %+v", c)
	}
}

func TestExtract_LocationKeyword(t *testing.T) {
	text := `Galadari Ice Cream Co.
Baskin Robbins
.. Al Qusais Plaza xy
Date: 02/03/2026`
	c, ok := Extract(constants.KindPointOfSale, text)
	if !ok {
		t.Fatal("expected a candidate")
	}
	if c.Strategy != StrategyKeyword {
		t.Errorf("strategy: got %s, want %s", c.Strategy, StrategyKeyword)
	}
	if c.RawText != "Al Qusais Plaza" {
		t.Errorf("raw text: got %q, want %q", c.RawText, "Al Qusais Plaza")
	}
}

func TestExtract_UppercaseHeuristic(t *testing.T) {
	text := `mystore systems
WASL VISTA & GATE
Date: 02/03/2026`
	c, ok := Extract(constants.KindPointOfSale, text)
	if !ok {
		t.Fatal("expected a candidate")
	}
	if c.Strategy != StrategyUppercase {
		t.Errorf("strategy: got %s, want %s", c.Strategy, StrategyUppercase)
	}
	if c.RawText != "WASL VISTA & GATE" {
		t.Errorf("raw text: got %q", c.RawText)
	}
}

func TestExtract_RejectsBrandAndLabels(t *testing.T) {
	text := `BASKIN ROBBINS
SALES SUMMARY REPORT
TOTAL CASH AED`
	if c, ok := Extract(constants.KindPointOfSale, text); ok {
		t.Errorf("expected no candidate, got %+v", c)
	}
}

func TestExtract_NothingFound(t *testing.T) {
	if c, ok := Extract(constants.KindPointOfSale, "just some lowercase noise\n123 456"); ok {
		t.Errorf("expected no candidate, got %+v", c)
	}
}
