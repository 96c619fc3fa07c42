// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"testing"
	"time"
)

// --- Strategy cascade ---

func TestFindBirthDateStrategies(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantDisplay string
		wantRaw     string
	}{
		{
			"exact template with age suffix",
			"{{birth date and age|1962|12|22}}",
			"December 22, 1962", "1962-12-22",
		},
		{
			"exact template without age suffix",
			"{{Birth date|1975|6|9}}",
			"June 09, 1975", "1975-06-09",
		},
		{
			"permissive template with named args first",
			"{{birth date and age|df=yes|1962|12|22}}",
			"December 22, 1962", "1962-12-22",
		},
		{
			"field assignment with unnamed template",
			"| birth_date = {{bda|1962|12|22}}",
			"December 22, 1962", "1962-12-22",
		},
		{
			"field assignment case-insensitive",
			"| BIRTH_DATE = {{dob|1990|3|4}}",
			"March 04, 1990", "1990-03-04",
		},
		{
			"free text month first",
			"born January 5, 1980",
			"January 05, 1980", "1980-01-05",
		},
		{
			"free text month first parenthesized no comma",
			"(born January 5 1980)",
			"January 05, 1980", "1980-01-05",
		},
		{
			"free text day first",
			"born 22 December 1962",
			"December 22, 1962", "1962-12-22",
		},
		{
			"year only template",
			"{{birth year and age|1955}}",
			"1955 (month/day unknown)", "1955",
		},
		{
			"year only without age suffix",
			"{{Birth year|1930}}",
			"1930 (month/day unknown)", "1930",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindBirthDate(tt.text)
			if !ok {
				t.Fatalf("FindBirthDate(%q): no match", tt.text)
			}
			if got.Display != tt.wantDisplay {
				t.Errorf("Display = %q, want %q", got.Display, tt.wantDisplay)
			}
			if got.Raw != tt.wantRaw {
				t.Errorf("Raw = %q, want %q", got.Raw, tt.wantRaw)
			}
		})
	}
}

func TestFindBirthDateNoMatch(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty text", ""},
		{"no date at all", "John Doe is an American actor."},
		{"invalid calendar date falls through every strategy", "{{birth date|1999|02|30}}"},
		{"month 13 rejected", "{{birth date and age|1999|13|01}}"},
		{"unknown month word in free text", "born Quintember 5, 1980"},
		{"death template does not trigger", "{{death date and age|2004|9|2|1920|1|1}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := FindBirthDate(tt.text); ok {
				t.Errorf("FindBirthDate(%q) = %+v, want no match", tt.text, got)
			}
		})
	}
}

// --- Precedence ---

func TestFindBirthDatePrecedence(t *testing.T) {
	// The exact template should win over a conflicting free-text phrase
	// appearing earlier in the article.
	text := "John Doe (born March 1, 1950) was ... {{birth date and age|1950|3|2}}"
	got, ok := FindBirthDate(text)
	if !ok {
		t.Fatal("no match")
	}
	if got.Raw != "1950-03-02" {
		t.Errorf("Raw = %q, want template match %q", got.Raw, "1950-03-02")
	}
}

func TestFindBirthDateInvalidTemplateFallsToFreeText(t *testing.T) {
	// An invalid template date fails those strategies, but a valid free-text
	// phrase further down still matches.
	text := "{{birth date|1999|02|30}} John Doe, born January 5, 1980, was ..."
	got, ok := FindBirthDate(text)
	if !ok {
		t.Fatal("no match")
	}
	if got.Raw != "1980-01-05" {
		t.Errorf("Raw = %q, want free-text match %q", got.Raw, "1980-01-05")
	}
}

func TestFindBirthDateLeapDay(t *testing.T) {
	tests := []struct {
		text    string
		wantOK  bool
		wantRaw string
	}{
		{"{{birth date|2000|02|29}}", true, "2000-02-29"},
		{"{{birth date|1900|02|29}}", false, ""}, // 1900 is not a leap year
	}
	for _, tt := range tests {
		got, ok := FindBirthDate(tt.text)
		if ok != tt.wantOK {
			t.Errorf("FindBirthDate(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			continue
		}
		if ok && got.Raw != tt.wantRaw {
			t.Errorf("Raw = %q, want %q", got.Raw, tt.wantRaw)
		}
	}
}

// --- Canonicalization round trip ---

func TestCanonicalizeRoundTrip(t *testing.T) {
	// For valid triples, parsing the ISO output yields the same triple.
	triples := []struct{ y, m, d int }{
		{1962, 12, 22},
		{1980, 1, 5},
		{2000, 2, 29},
		{1901, 7, 31},
	}
	for _, tr := range triples {
		bd, ok := canonicalize(tr.y, tr.m, tr.d)
		if !ok {
			t.Fatalf("canonicalize(%d, %d, %d): rejected", tr.y, tr.m, tr.d)
		}
		parsed, err := time.Parse("2006-01-02", bd.Raw)
		if err != nil {
			t.Fatalf("parsing %q: %v", bd.Raw, err)
		}
		if parsed.Year() != tr.y || int(parsed.Month()) != tr.m || parsed.Day() != tr.d {
			t.Errorf("round trip of (%d, %d, %d) via %q gave %v", tr.y, tr.m, tr.d, bd.Raw, parsed)
		}
	}
}

func TestCanonicalizeRejectsImpossibleDates(t *testing.T) {
	tests := []struct{ y, m, d int }{
		{1999, 2, 30},
		{1999, 13, 1},
		{1999, 0, 10},
		{1999, 4, 31},
		{1999, 1, 0},
		{0, 1, 1},
	}
	for _, tt := range tests {
		if bd, ok := canonicalize(tt.y, tt.m, tt.d); ok {
			t.Errorf("canonicalize(%d, %d, %d) = %+v, want rejection", tt.y, tt.m, tt.d, bd)
		}
	}
}

func TestYearOnlyFlag(t *testing.T) {
	got, ok := FindBirthDate("{{birth year and age|1955}}")
	if !ok {
		t.Fatal("no match")
	}
	if !got.YearOnly {
		t.Error("YearOnly = false, want true")
	}
	full, ok := FindBirthDate("{{birth date|1955|1|2}}")
	if !ok {
		t.Fatal("no match")
	}
	if full.YearOnly {
		t.Error("YearOnly = true for full date, want false")
	}
}

func TestMonthByName(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		got, ok := monthByName(m.String())
		if !ok || got != m {
			t.Errorf("monthByName(%q) = %v, %v", m.String(), got, ok)
		}
	}
	for _, bad := range []string{"Jan", "january", "Smarch", ""} {
		if _, ok := monthByName(bad); ok {
			t.Errorf("monthByName(%q) matched, want no match", bad)
		}
	}
}

func TestDisplayDayZeroPadded(t *testing.T) {
	// Single-digit days are zero-padded in the display form.
	for day := 1; day <= 9; day++ {
		bd, ok := canonicalize(1980, 1, day)
		if !ok {
			t.Fatalf("canonicalize rejected day %d", day)
		}
		want := fmt.Sprintf("January 0%d, 1980", day)
		if bd.Display != want {
			t.Errorf("Display = %q, want %q", bd.Display, want)
		}
	}
}
