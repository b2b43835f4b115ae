package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// numberPattern matches a comma-grouped decimal number, e.g. "1,333.31",
// "82", "35.1".
var numberPattern = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// NumericTokens returns the numeric tokens in fragment in left-to-right
// order. Commas are kept; strip them with parseAmount/parseCount before
// converting. Absence of digits yields an empty slice.
func NumericTokens(fragment string) []string {
	return numberPattern.FindAllString(fragment, -1)
}

func parseAmount(tok string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(tok, ",", ""), 64)
}

func parseCount(tok string) (int, error) {
	return strconv.Atoi(strings.ReplaceAll(tok, ",", ""))
}

// firstAmount extracts the first numeric token on a line as a decimal value.
func firstAmount(line string) (float64, bool) {
	toks := NumericTokens(line)
	if len(toks) == 0 {
		return 0, false
	}
	v, err := parseAmount(toks[0])
	if err != nil {
		return 0, false
	}
	return v, true
}
