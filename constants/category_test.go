package constants

import "testing"

func TestCanonicalize(t *testing.T) {
	cases := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"Cups & Cones", CupsCones, true},
		{"c&c", CupsCones, true},
		{"SUNDAE", Sundaes, true},
		{"h/p", HandPacked, true},
		{"drinks", Beverages, true},
		{"Vanilla Cone", Uncategorized, false},
		{"", Uncategorized, false},
	}
	for _, c := range cases {
		got, ok := Canonicalize(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("Canonicalize(%q) = %v, %v; want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestIsValidWindow(t *testing.T) {
	for _, w := range SalesWindows {
		if !IsValidWindow(w) {
			t.Errorf("window %q should be valid", w)
		}
	}
	if IsValidWindow("noon") {
		t.Error("unknown window accepted")
	}
}
