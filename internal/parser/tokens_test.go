package parser

import (
	"reflect"
	"testing"
)

func TestNumericTokens(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     []string
	}{
		{"grouped decimal", "Gross Sales: 1,333.31", []string{"1,333.31"}},
		{"several tokens in order", "Cups & Cones 31 468.54 35.1", []string{"31", "468.54", "35.1"}},
		{"plain integer", "GC: 82", []string{"82"}},
		{"no digits", "thank you", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NumericTokens(tt.fragment)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NumericTokens(%q) = %v, want %v", tt.fragment, got, tt.want)
			}
		})
	}
}

func TestFirstAmount(t *testing.T) {
	if v, ok := firstAmount("Net Sales..: 1,314.46"); !ok || v != 1314.46 {
		t.Errorf("got (%v, %v), want (1314.46, true)", v, ok)
	}
	if _, ok := firstAmount("no numbers here"); ok {
		t.Error("expected no amount on a digit-free line")
	}
}

func TestIsTableBorder(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"==============", true},
		{"--------------", true},
		{"-= -=", true},
		{"Cups & Cones", false},
		{"", false},
		{"   ", false},
	}
	for _, tt := range tests {
		if got := isTableBorder(tt.line); got != tt.want {
			t.Errorf("isTableBorder(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
