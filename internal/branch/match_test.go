package branch

import "testing"

func TestMatch_ExactAfterNormalize(t *testing.T) {
	if !Match("1BQ LAMCY MALL", "Lamcy Mall") {
		t.Error("expected exact match after normalization")
	}
}

func TestMatch_Containment(t *testing.T) {
	if !Match("IBQ DEIRA CITY CENTRE", "Deira City Centre Phase 2") {
		t.Error("expected containment match")
	}
	if !Match("BARSHA", "Al Barsha Mall") {
		t.Error("expected reverse containment match")
	}
}

func TestMatch_TypoCorrection(t *testing.T) {
	// "centre" and "center" differ mid-string, so containment alone
	// cannot bridge them.
	if !Match("CITY CENTRE DEIRA", "City Center Deira") {
		t.Error("expected typo-corrected match")
	}
}

func TestMatch_AbbreviationExpansion(t *testing.T) {
	if !Match("1BQ JLT", "Jumeirah Lake Towers") {
		t.Error("expected abbreviation match for JLT")
	}
	if !Match("IBQ WTC", "World Trade Center") {
		t.Error("expected abbreviation match for WTC")
	}
}

func TestMatch_SlashAlternates(t *testing.T) {
	// Scenario from real data: OCR misreads LAMCY as LANCY; canonical name
	// lists two alternates.
	if !Match("1BQ LANCY MALL", "LAMCY MALL / KARAMA 3") {
		t.Error("expected match against a slash alternate")
	}
}

func TestMatch_CharacterFuzz(t *testing.T) {
	// Equal length, one differing position.
	if !closeEnough("lancy", "lamcy") {
		t.Error("lancy/lamcy should be close enough")
	}
	// Length differs by one, first three characters equal.
	if !closeEnough("jumeirah", "jumeira") {
		t.Error("jumeirah/jumeira should be close enough")
	}
	if closeEnough("mall", "city") {
		t.Error("mall/city must not be close")
	}
	if closeEnough("plaza", "playground") {
		t.Error("length gap of five must not match")
	}
}

func TestMatch_NoMatch(t *testing.T) {
	if Match("1BQ LAMCY MALL", "Fujairah Tower") {
		t.Error("unrelated branches must not match")
	}
	if Match("", "Lamcy Mall") {
		t.Error("empty candidate must not match")
	}
}

func TestMatch_AgreesBothDirections(t *testing.T) {
	// Symmetry is not guaranteed by construction; pin the pairs we rely on.
	pairs := [][2]string{
		{"1BQ LAMCY MALL", "Lamcy Mall"},
		{"CITY CENTRE DEIRA", "City Center Deira"},
		{"1BQ LANCY MALL", "LAMCY MALL / KARAMA 3"},
		{"1BQ LAMCY MALL", "Fujairah Tower"},
	}
	for _, p := range pairs {
		if Match(p[0], p[1]) != Match(p[1], p[0]) {
			t.Errorf("Match(%q, %q) disagrees with the reverse direction", p[0], p[1])
		}
	}
}
