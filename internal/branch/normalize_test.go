package branch

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase and collapse", "  LAMCY   MALL ", "lamcy mall"},
		{"pos code prefix", "1BQ LAMCY MALL", "lamcy mall"},
		{"ocr ell prefix", "lBQ KARAMA", "karama"},
		{"brand prefix", "Baskin Robbins Deira City Centre", "deira city centre"},
		{"hd prefix", "1H KARAMA", "karama"},
		{"leading separators", ":- KARAMA 3", "karama 3"},
		{"dots to spaces", "T. C. BRANCH", "t c branch"},
		{"stacked prefixes", "IBQ BR KARAMA", "karama"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"1BQ LAMCY MALL",
		"1BQ. KARAMA",
		"IBQ BR KARAMA",
		"Baskin Robbins T.C.",
		"  :- DEIRA  ",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
