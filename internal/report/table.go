// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strings"
)

// FormatTable writes rows as a human-readable table to w.
func FormatTable(rows []StoredRow, w io.Writer) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No results stored.")
		return
	}

	fmt.Fprintf(w, "%-40s  %-24s  %-26s  %-7s  %-12s  %s\n",
		"Market", "Person", "Birth Date", "Prob", "Volume", "Status")
	fmt.Fprintln(w, strings.Repeat("-", 125))

	for _, r := range rows {
		title := r.MarketTitle
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		name := r.PersonName
		if len(name) > 24 {
			name = name[:21] + "..."
		}
		fmt.Fprintf(w, "%-40s  %-24s  %-26s  %-7s  %-12s  %s\n",
			title, name, orNA(r.BirthDate),
			formatProbability(r.Probability), formatUSD(r.MarketVolume), r.Status)
	}

	found := 0
	for _, r := range rows {
		if r.BirthDate != "" {
			found++
		}
	}
	fmt.Fprintf(w, "\n%d rows, %d with birth dates\n", len(rows), found)
}
