// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// Headers is the column order of every rendered report, fixed so
// downstream consumers can rely on it.
var Headers = []string{
	"Market Title",
	"Person Name",
	"Birth Date",
	"Birth Date (Raw)",
	"Wikipedia URL",
	"Probability %",
	"Market Volume",
	"Market End Date",
	"Status",
	"Last Updated",
}

// WriteCSV renders rows as CSV with the standard header.
func WriteCSV(w io.Writer, rows []StoredRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(csvRecord(r)); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", r.PersonName, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes rows to a CSV file at path, truncating any
// existing file.
func WriteCSVFile(path string, rows []StoredRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, rows); err != nil {
		return err
	}
	return f.Close()
}

func csvRecord(r StoredRow) []string {
	return []string{
		r.MarketTitle,
		r.PersonName,
		orNA(r.BirthDate),
		orNA(r.BirthDateRaw),
		orNA(r.WikipediaURL),
		formatProbability(r.Probability),
		formatUSD(r.MarketVolume),
		orNA(r.MarketEndDate),
		r.Status,
		r.LastUpdated,
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func formatProbability(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// formatUSD renders a dollar amount with thousands separators and no
// cents, e.g. 1234567.8 -> "$1,234,568".
func formatUSD(v float64) string {
	n := int64(math.Round(v))
	neg := n < 0
	if neg {
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}

	if neg {
		return "-$" + string(grouped)
	}
	return "$" + string(grouped)
}
