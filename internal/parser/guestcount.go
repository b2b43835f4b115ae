package parser

import (
	"regexp"
	"strconv"
)

// guestCountPattern matches the POS guest-count figure. OCR frequently reads
// the G of "GC" as a 6, hence the 6c alternative.
var guestCountPattern = regexp.MustCompile(`(?i)(g\.c|gc|6c)[:\s.,]+(\d+)`)

// ordersPattern is the home-delivery equivalent of the guest count.
var ordersPattern = regexp.MustCompile(`(?i)orders[:\s.,]+(\d+)`)

// guestCount finds the guest-count figure on a line. A match sitting right
// after an 'r' is skipped: "RGC" is the returns guest count, a different
// metric. When a line carries more than one figure the largest wins.
func guestCount(line string) (int, bool) {
	best, found := 0, false
	for _, m := range guestCountPattern.FindAllStringSubmatchIndex(line, -1) {
		if m[0] > 0 {
			prev := line[m[0]-1]
			if prev == 'r' || prev == 'R' {
				continue
			}
		}
		v, err := strconv.Atoi(line[m[4]:m[5]])
		if err != nil {
			continue
		}
		if !found || v > best {
			best, found = v, true
		}
	}
	return best, found
}

// largestGuestCount runs the guest-count pattern over every line and keeps
// the largest figure. The real total and a smaller cash-only sub-count can
// both appear on one receipt; the largest value is authoritative.
func largestGuestCount(lines []string) (int, bool) {
	best, found := 0, false
	for _, line := range lines {
		if v, ok := guestCount(line); ok && (!found || v > best) {
			best, found = v, true
		}
	}
	return best, found
}

// orderCount finds the home-delivery order count on a line.
func orderCount(line string) (int, bool) {
	m := ordersPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return v, true
}
