// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package crawl orchestrates the market-to-birth-date pipeline: fetch
// active markets, pick person contenders, and resolve each one against
// Wikipedia.
package crawl

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/polycheck/internal/market"
	"github.com/pdiddy/polycheck/internal/wiki"
	"github.com/pdiddy/polycheck/pkg/types"
)

// MarketSource lists active markets. *market.GammaClient implements it.
type MarketSource interface {
	ActiveMarkets(ctx context.Context, limit int) ([]market.APIMarket, error)
}

// Summary holds counts from a crawl run.
type Summary struct {
	Markets      int
	Contenders   int
	DatesFound   int
	PagesMissing int
	DatesMissing int
	Errors       int
}

// HasFailures reports whether any lookup hit a transport error.
func (s Summary) HasFailures() bool {
	return s.Errors > 0
}

// Crawler wires a market source to a Wikipedia backend.
type Crawler struct {
	Markets MarketSource
	Wiki    wiki.API

	// TopN is how many top outcomes per market are considered.
	TopN int

	// Delay is an optional pause between successive Wikipedia lookups.
	Delay time.Duration
}

// Run fetches up to limit active markets, resolves every person
// contender, and returns the flat result rows. Individual lookup
// failures are recorded in their row and never abort the run; progress
// goes to w.
func (c *Crawler) Run(ctx context.Context, limit int, w io.Writer) ([]types.Row, Summary, error) {
	var summary Summary

	apiMarkets, err := c.Markets.ActiveMarkets(ctx, limit)
	if err != nil {
		return nil, summary, fmt.Errorf("fetching markets: %w", err)
	}

	markets := market.WithPeople(apiMarkets, c.TopN)
	summary.Markets = len(markets)
	fmt.Fprintf(w, "found %d markets with person contenders (of %d fetched)\n",
		len(markets), len(apiMarkets))

	var rows []types.Row
	for _, m := range markets {
		fmt.Fprintf(w, "\n%s\n", m.Title)

		for _, cont := range m.Contenders {
			select {
			case <-ctx.Done():
				return rows, summary, ctx.Err()
			default:
			}

			summary.Contenders++
			result := wiki.LookupPerson(ctx, c.Wiki, cont.Name)

			switch {
			case result.BirthDate != "":
				summary.DatesFound++
				fmt.Fprintf(w, "  %-30s %s\n", cont.Name, result.BirthDate)
			case !result.Found && strings.HasPrefix(result.Error, "Network error"):
				summary.Errors++
				fmt.Fprintf(w, "  %-30s %s\n", cont.Name, result.Error)
			case !result.Found:
				summary.PagesMissing++
				fmt.Fprintf(w, "  %-30s no Wikipedia page\n", cont.Name)
			default:
				summary.DatesMissing++
				fmt.Fprintf(w, "  %-30s no birth date on page\n", cont.Name)
			}

			rows = append(rows, types.Row{
				MarketTitle:   m.Title,
				PersonName:    cont.Name,
				BirthDate:     result.BirthDate,
				BirthDateRaw:  result.BirthDateRaw,
				WikipediaURL:  result.WikipediaURL,
				Probability:   cont.Probability,
				MarketVolume:  m.Volume,
				MarketEndDate: m.EndDate,
				Status:        result.Status(),
			})

			if c.Delay > 0 {
				select {
				case <-ctx.Done():
					return rows, summary, ctx.Err()
				case <-time.After(c.Delay):
				}
			}
		}
	}

	fmt.Fprintf(w, "\ncontenders: %d, dates found: %d, pages missing: %d, dates missing: %d, errors: %d\n",
		summary.Contenders, summary.DatesFound, summary.PagesMissing, summary.DatesMissing, summary.Errors)

	return rows, summary, nil
}
