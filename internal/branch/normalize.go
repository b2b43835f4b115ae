// Package branch extracts a store identity from receipt text and reconciles
// it against the canonical directory name for the submitting branch.
//
// Receipt headers are OCR-corrupted and abbreviated inconsistently, so both
// halves are heuristic cascades: an ordered list of extraction strategies,
// and an ordered list of increasingly permissive comparisons. Every function
// here is pure; the dictionaries are read-only package data.
package branch

import "strings"

// namePrefixes are POS/HD branch-code prefixes and brand noise that precede
// the actual location name. Checked longest-variant-first.
var namePrefixes = []string{
	"baskin robbins ",
	"ibq ",
	"1bq ",
	"lbq ",
	"1b ",
	"1h ",
	"ih ",
	"lh ",
	"br ",
}

// Normalize canonicalizes a raw branch name: lowercase, code prefixes and
// leading separators stripped, dots opened to spaces (so "T. C." tends
// toward "t c"), whitespace collapsed. Idempotent.
func Normalize(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, ".", " ")
	s = strings.Join(strings.Fields(s), " ")

	// Prefix stripping can expose another prefix ("ibq br karama"), so run
	// to a fixpoint; Normalize must be idempotent.
	for changed := true; changed; {
		changed = false
		s = strings.TrimLeft(s, ":- \t")
		for _, p := range namePrefixes {
			if strings.HasPrefix(s, p) {
				s = strings.TrimPrefix(s, p)
				changed = true
			}
		}
	}

	return strings.Join(strings.Fields(s), " ")
}
