package branch

import (
	"regexp"
	"strings"

	"salestracker/constants"
)

// Strategy identifies which extraction strategy produced a candidate.
type Strategy string

const (
	StrategyPrefix    Strategy = "PREFIX_PATTERN"
	StrategyKeyword   Strategy = "LOCATION_KEYWORD"
	StrategyUppercase Strategy = "UPPERCASE_HEURISTIC"
)

// Candidate is the raw store identity found on a receipt. At most one is
// produced per receipt; extraction stops at the first strategy that yields
// a result.
type Candidate struct {
	RawText  string   `json:"raw_text"`
	Strategy Strategy `json:"strategy"`
}

// Line windows per strategy. Store identity sits in the receipt header;
// scanning further down only picks up item noise.
const (
	prefixWindow    = 25
	keywordWindow   = 20
	uppercaseWindow = 15
)

var (
	// POS branch codes as OCR actually renders them: IBQ misread with
	// ones, ells and zeros. Longest alternatives first.
	posPrefixPattern = regexp.MustCompile(`(?i)^((?:IBQ|1BQ|LBQ|IB0|IBO|1B)\s+\S.*)$`)

	// Home-delivery reports label the branch "1H: <name>" or "1H - <name>".
	hdPrefixPattern = regexp.MustCompile(`(?i)^(?:1H|IH|LH)\s*[:\-]\s*(\S.*)$`)

	// trailingNoise is a short lowercase tail the OCR glues onto header
	// lines ("LAMCY MALL ab").
	trailingNoise = regexp.MustCompile(`\s+[a-z]{1,3}$`)
)

// rejectTokens mark lines that are definitely not a store identity: brand
// name, timestamps, report labels, table borders, tender summaries.
var rejectTokens = []string{
	"baskin",
	"robbins",
	"date:",
	"tm:",
	"sales summary",
	"report",
	"receipt",
	"cash",
	"credit",
	"total",
	"vat",
	"aed",
	"====",
	"----",
}

// locationKeywords are place-name fragments seen across the branch
// directory. A header line containing one is almost certainly the identity
// line even when the branch-code prefix was garbled away.
var locationKeywords = []string{
	"mall",
	"plaza",
	"tower",
	"centre",
	"center",
	"city",
	"street",
	"road",
	"marina",
	"walk",
	"avenue",
	"village",
	"festival",
	"silicon",
	"lamcy",
	"karama",
	"deira",
	"jumeirah",
	"barsha",
	"qusais",
	"nahda",
	"rigga",
	"satwa",
	"mirdif",
	"dubai",
	"sharjah",
	"ajman",
	"fujairah",
	"al ain",
	"abu dhabi",
}

// Extract scans the leading lines of a receipt for the store identity,
// trying strategies in fixed order and stopping at the first hit. Finding
// nothing is a valid outcome: verification is then skipped by the caller,
// not failed.
func Extract(kind constants.ReceiptKind, text string) (Candidate, bool) {
	lines := splitTrimmed(text)

	if c, ok := byPrefix(kind, lines); ok {
		return c, true
	}
	if c, ok := byLocationKeyword(lines); ok {
		return c, true
	}
	if c, ok := byUppercase(lines); ok {
		return c, true
	}
	return Candidate{}, false
}

func splitTrimmed(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

func byPrefix(kind constants.ReceiptKind, lines []string) (Candidate, bool) {
	for _, line := range window(lines, prefixWindow) {
		if kind == constants.KindHomeDelivery {
			if m := hdPrefixPattern.FindStringSubmatch(line); m != nil {
				return Candidate{RawText: stripNoise(m[1]), Strategy: StrategyPrefix}, true
			}
			continue
		}
		if m := posPrefixPattern.FindStringSubmatch(line); m != nil {
			// The POS candidate keeps the prefix; the normalizer knows
			// how to drop it.
			return Candidate{RawText: stripNoise(m[1]), Strategy: StrategyPrefix}, true
		}
	}
	return Candidate{}, false
}

func byLocationKeyword(lines []string) (Candidate, bool) {
	for _, line := range window(lines, keywordWindow) {
		if len(line) <= 5 || rejected(line) {
			continue
		}
		lower := strings.ToLower(line)
		for _, kw := range locationKeywords {
			if strings.Contains(lower, kw) {
				return Candidate{RawText: cleanIdentityLine(line), Strategy: StrategyKeyword}, true
			}
		}
	}
	return Candidate{}, false
}

func byUppercase(lines []string) (Candidate, bool) {
	for _, line := range window(lines, uppercaseWindow) {
		if rejected(line) {
			continue
		}
		if isUppercaseName(line) {
			return Candidate{RawText: cleanIdentityLine(line), Strategy: StrategyUppercase}, true
		}
	}
	return Candidate{}, false
}

func window(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}

func rejected(line string) bool {
	lower := strings.ToLower(line)
	for _, tok := range rejectTokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// isUppercaseName accepts lines made of uppercase letters, spaces and /&-.
// with at least one space: "AL BARSHA CITY CENTRE", "DXB / KARAMA".
func isUppercaseName(line string) bool {
	if len(line) < 6 || !strings.Contains(line, " ") {
		return false
	}
	letters := 0
	for _, r := range line {
		switch {
		case r >= 'A' && r <= 'Z':
			letters++
		case r == ' ' || r == '/' || r == '&' || r == '-' || r == '.':
		default:
			return false
		}
	}
	return letters > 0
}

// cleanIdentityLine trims leading non-uppercase junk (OCR artifacts, bullet
// noise) and a trailing short lowercase word.
func cleanIdentityLine(line string) string {
	s := strings.TrimLeftFunc(line, func(r rune) bool {
		return r < 'A' || r > 'Z'
	})
	return stripNoise(s)
}

func stripNoise(s string) string {
	return strings.TrimSpace(trailingNoise.ReplaceAllString(s, ""))
}
