// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract identifies birth dates within Wikipedia article wikitext.
//
// Extraction runs a fixed cascade of pattern strategies over the raw text:
// infobox date templates first, then free-text "born ..." phrases, then a
// year-only template as the last resort. The first strategy that produces a
// calendar-valid date wins; an invalid date (e.g. February 30) fails only
// that strategy and the cascade continues.
package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// BirthDate is a canonicalized birth date.
type BirthDate struct {
	// Display is the human-readable form, e.g. "December 22, 1962", or
	// "1955 (month/day unknown)" when only the year is known.
	Display string `json:"display" yaml:"display"`

	// Raw is the normalized form: "1962-12-22", or "1955" for year-only.
	Raw string `json:"raw" yaml:"raw"`

	// YearOnly reports whether the month and day are unknown.
	YearOnly bool `json:"year_only,omitempty" yaml:"year_only,omitempty"`
}

// strategy attempts one extraction pattern against the wikitext. It returns
// ok=false both when the pattern does not match and when the matched values
// fail calendar validation, so the caller falls through either way.
type strategy struct {
	name    string
	extract func(text string) (BirthDate, bool)
}

// strategies is the cascade in precedence order. Order matters: the exact
// template form outranks the permissive one, templates outrank free text,
// and year-only is the fallback of last resort.
var strategies = []strategy{
	{"template-exact", matchTemplate(reTemplateExact)},
	{"template-permissive", matchTemplate(reTemplatePermissive)},
	{"field-assignment", matchTemplate(reFieldAssignment)},
	{"text-month-first", matchBornMonthFirst},
	{"text-day-first", matchBornDayFirst},
	{"year-only", matchBirthYear},
}

var (
	// {{birth date|1962|12|22}} or {{birth date and age|1962|12|22}}, with
	// year/month/day as the first positional arguments.
	reTemplateExact = regexp.MustCompile(`\{\{[Bb]irth date(?: and age)?\|(\d{4})\|(\d{1,2})\|(\d{1,2})`)

	// Same template but tolerating named arguments before the positional
	// ones, e.g. {{birth date and age|df=yes|1962|12|22}}.
	reTemplatePermissive = regexp.MustCompile(`\{\{[Bb]irth date[^}]*\|(\d{4})\|(\d{1,2})\|(\d{1,2})`)

	// Infobox field assignment: birth_date = {{...|1962|12|22}}. The template
	// name is unconstrained; the field name is matched case-insensitively.
	reFieldAssignment = regexp.MustCompile(`(?i)birth_date\s*=\s*\{\{[^|]+\|(\d{4})\|(\d{1,2})\|(\d{1,2})`)

	// Free text "born January 22, 1962", optionally parenthesized.
	reBornMonthFirst = regexp.MustCompile(`\(?\s*born\s+([A-Z][a-z]+)\s+(\d{1,2}),?\s+(\d{4})`)

	// Free text "born 22 January 1962".
	reBornDayFirst = regexp.MustCompile(`born\s+(\d{1,2})\s+([A-Z][a-z]+)\s+(\d{4})`)

	// {{birth year|1955}} or {{birth year and age|1955}}.
	reBirthYear = regexp.MustCompile(`\{\{[Bb]irth year(?: and age)?\|(\d{4})`)
)

// FindBirthDate runs the strategy cascade over text and returns the first
// calendar-valid match, or ok=false when no strategy succeeds.
func FindBirthDate(text string) (BirthDate, bool) {
	if text == "" {
		return BirthDate{}, false
	}
	for _, s := range strategies {
		if d, ok := s.extract(text); ok {
			return d, true
		}
	}
	return BirthDate{}, false
}

// matchTemplate builds a strategy from a pattern whose first three capture
// groups are year, month, day.
func matchTemplate(re *regexp.Regexp) func(string) (BirthDate, bool) {
	return func(text string) (BirthDate, bool) {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return BirthDate{}, false
		}
		return canonicalize(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
}

func matchBornMonthFirst(text string) (BirthDate, bool) {
	m := reBornMonthFirst.FindStringSubmatch(text)
	if m == nil {
		return BirthDate{}, false
	}
	month, ok := monthByName(m[1])
	if !ok {
		return BirthDate{}, false
	}
	return canonicalize(atoi(m[3]), int(month), atoi(m[2]))
}

func matchBornDayFirst(text string) (BirthDate, bool) {
	m := reBornDayFirst.FindStringSubmatch(text)
	if m == nil {
		return BirthDate{}, false
	}
	month, ok := monthByName(m[2])
	if !ok {
		return BirthDate{}, false
	}
	return canonicalize(atoi(m[3]), int(month), atoi(m[1]))
}

func matchBirthYear(text string) (BirthDate, bool) {
	m := reBirthYear.FindStringSubmatch(text)
	if m == nil {
		return BirthDate{}, false
	}
	year := atoi(m[1])
	return BirthDate{
		Display:  fmt.Sprintf("%d (month/day unknown)", year),
		Raw:      strconv.Itoa(year),
		YearOnly: true,
	}, true
}

// canonicalize validates (year, month, day) against the real calendar and
// returns the display and ISO forms. Validation relies on time.Date
// normalizing out-of-range components: if the round trip changes any
// component the input was not a real date.
func canonicalize(year, month, day int) (BirthDate, bool) {
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return BirthDate{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return BirthDate{}, false
	}
	return BirthDate{
		Display: t.Format("January 02, 2006"),
		Raw:     t.Format("2006-01-02"),
	}, true
}

// monthByName resolves an English month name. An unrecognized capitalized
// word (the free-text patterns match any [A-Z][a-z]+) fails the strategy.
func monthByName(name string) (time.Month, bool) {
	for m := time.January; m <= time.December; m++ {
		if m.String() == name {
			return m, true
		}
	}
	return 0, false
}

// atoi converts a digits-only capture group. The patterns guarantee the
// input parses; 0 on failure simply fails calendar validation downstream.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
