// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package market

import (
	"strings"
	"unicode"
)

// nonPersonTerms are outcome labels that denote market mechanics rather than
// people: boolean answers, relational words, and calendar months.
var nonPersonTerms = map[string]bool{
	"yes": true, "no": true, "other": true, "none": true,
	"neither": true, "both": true,
	"before": true, "after": true, "over": true, "under": true, "between": true,
	"january": true, "february": true, "march": true, "april": true,
	"may": true, "june": true, "july": true, "august": true,
	"september": true, "october": true, "november": true, "december": true,
}

var digitStripper = strings.NewReplacer(",", "", ".", "", " ", "")

// LooksLikePersonName reports whether an outcome label plausibly denotes a
// person. The heuristic favors precision over recall: a false positive
// triggers a pointless Wikipedia lookup, so ambiguous labels are rejected
// even though that loses the occasional mononymous name.
func LooksLikePersonName(label string) bool {
	if nonPersonTerms[strings.ToLower(strings.TrimSpace(label))] {
		return false
	}

	// Pure numbers and numeric dates ("1,000", "3.5", "20 25").
	if isAllDigits(digitStripper.Replace(label)) {
		return false
	}

	// Person names have at least two parts and don't start with a digit.
	parts := strings.Fields(label)
	if len(parts) < 2 {
		return false
	}
	if unicode.IsDigit([]rune(parts[0])[0]) {
		return false
	}

	return true
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
