package branch

import "strings"

// typoFixes corrects recurring OCR misreads and spelling variants before
// comparison. Applied token-wise; values are the canonical spelling.
var typoFixes = map[string]string{
	"roade":  "road",
	"raod":   "road",
	"centre": "center",
	"cenre":  "center",
	"centr":  "center",
	"trad":   "trade",
	"marne":  "marina",
	"jumera": "jumeirah",
	"jumira": "jumeirah",
}

// abbrevExpansions opens up the short forms branches are known by. Applied
// only where the abbreviation stands as its own token.
var abbrevExpansions = map[string]string{
	"tc":  "trade centre",
	"wtc": "world trade centre",
	"jlt": "jumeirah lake towers",
	"jbr": "jumeirah beach residence",
	"dxb": "dubai",
	"shj": "sharjah",
	"auh": "abu dhabi",
	"fc":  "festival city",
	"cc":  "city centre",
}

// Match decides whether an OCR-derived branch name and the canonical
// directory name denote the same branch. The canonical name may carry
// '/'-separated alternates; any alternate matching under the cascade is
// enough. Cheap high-precision checks run first, character fuzz last.
func Match(candidate, canonical string) bool {
	cand := Normalize(candidate)
	if cand == "" {
		return false
	}
	for _, alt := range alternates(canonical) {
		if matchOne(cand, alt) {
			return true
		}
	}
	return false
}

// alternates normalizes each '/'-part of the canonical name independently,
// plus the whole string with '/' opened to a space.
func alternates(canonical string) []string {
	parts := strings.Split(canonical, "/")
	out := make([]string, 0, len(parts)+1)
	for _, p := range parts {
		if n := Normalize(p); n != "" {
			out = append(out, n)
		}
	}
	if len(parts) > 1 {
		if n := Normalize(strings.ReplaceAll(canonical, "/", " ")); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func matchOne(cand, canon string) bool {
	// 1+2: exact equality, then containment either direction.
	if equalOrContains(cand, canon) {
		return true
	}

	// 3: typo-corrected retest.
	candTypo, canonTypo := applyTypos(cand), applyTypos(canon)
	if equalOrContains(candTypo, canonTypo) {
		return true
	}

	// 4: abbreviation-expanded (typo map re-applied on the expansion).
	candAbbr := applyTypos(expandAbbrevs(cand))
	canonAbbr := applyTypos(expandAbbrevs(canon))
	if equalOrContains(candAbbr, canonAbbr) {
		return true
	}

	// 5: word overlap across the three variants.
	candVariants := []string{cand, candTypo, candAbbr}
	canonVariants := []string{canon, canonTypo, canonAbbr}
	for i := range candVariants {
		if sharesWord(candVariants[i], canonVariants[i]) {
			return true
		}
	}

	// 6: character fuzz over the union of words from all variants.
	return fuzzyWordMatch(wordSet(candVariants), wordSet(canonVariants))
}

func equalOrContains(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

func applyTypos(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if fixed, ok := typoFixes[w]; ok {
			words[i] = fixed
		}
	}
	return strings.Join(words, " ")
}

func expandAbbrevs(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if full, ok := abbrevExpansions[w]; ok {
			words[i] = full
		}
	}
	return strings.Join(words, " ")
}

// sharesWord reports whether the two strings have any significant word in
// common. Words of one or two characters carry no identity signal.
func sharesWord(a, b string) bool {
	seen := map[string]bool{}
	for _, w := range strings.Fields(a) {
		if len(w) > 2 {
			seen[w] = true
		}
	}
	for _, w := range strings.Fields(b) {
		if len(w) > 2 && seen[w] {
			return true
		}
	}
	return false
}

func wordSet(variants []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, v := range variants {
		for _, w := range strings.Fields(v) {
			if len(w) > 2 && !seen[w] {
				seen[w] = true
				out = append(out, w)
			}
		}
	}
	return out
}

// fuzzyWordMatch pairs every candidate word against every canonical word:
// two words denote the same token when they have equal length with at most
// two differing positions ("lancy"/"lamcy"), or lengths within two of each
// other and an identical first three characters ("jumeirah"/"jumeira").
func fuzzyWordMatch(candWords, canonWords []string) bool {
	for _, a := range candWords {
		for _, b := range canonWords {
			if len(a) < 3 || len(b) < 3 {
				continue
			}
			if closeEnough(a, b) {
				return true
			}
		}
	}
	return false
}

func closeEnough(a, b string) bool {
	if len(a) == len(b) {
		diffs := 0
		for i := 0; i < len(a); i++ {
			if a[i] != b[i] {
				diffs++
				if diffs > 2 {
					return false
				}
			}
		}
		return true
	}
	d := len(a) - len(b)
	if d < 0 {
		d = -d
	}
	return d <= 2 && a[:3] == b[:3]
}
