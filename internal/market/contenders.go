// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package market

import (
	"sort"

	"github.com/pdiddy/polycheck/pkg/types"
)

// NormalizeOutcomes flattens a Gamma market payload into labeled 0-100
// probabilities. The "tokens" shape wins when the key is present; otherwise
// the parallel outcomes/outcomePrices lists are used, assigning probability
// zero to any label beyond the end of the price list. A payload carrying
// neither shape (or one that failed to decode) yields an empty list.
func NormalizeOutcomes(m *APIMarket) []RawOutcome {
	switch {
	case m.Tokens.present:
		outcomes := make([]RawOutcome, 0, len(m.Tokens.tokens))
		for _, t := range m.Tokens.tokens {
			outcomes = append(outcomes, RawOutcome{
				Label:       t.Outcome,
				Probability: float64(t.Price) * 100,
			})
		}
		return outcomes

	case m.Outcomes.present:
		prices := m.OutcomePrices.values
		outcomes := make([]RawOutcome, 0, len(m.Outcomes.values))
		for i, label := range m.Outcomes.values {
			var price float64
			if i < len(prices) {
				price = prices[i]
			}
			outcomes = append(outcomes, RawOutcome{
				Label:       label,
				Probability: price * 100,
			})
		}
		return outcomes
	}
	return nil
}

// ExtractContenders selects the top person contenders from a market payload:
// normalize, stable-sort by probability descending, truncate to topN, then
// drop empty and non-person labels. Truncation happens before filtering, so
// a market can yield fewer than topN contenders but never more.
func ExtractContenders(m *APIMarket, topN int) types.Market {
	title := m.Question
	if title == "" {
		title = m.Title
	}
	if title == "" {
		title = "Unknown"
	}

	endDate := m.EndDate
	if endDate == "" {
		endDate = m.EndDateISO
	}

	outcomes := NormalizeOutcomes(m)
	sort.SliceStable(outcomes, func(i, j int) bool {
		return outcomes[i].Probability > outcomes[j].Probability
	})
	if topN >= 0 && len(outcomes) > topN {
		outcomes = outcomes[:topN]
	}

	var contenders []types.Contender
	for _, o := range outcomes {
		if o.Label == "" || !LooksLikePersonName(o.Label) {
			continue
		}
		contenders = append(contenders, types.Contender{
			Name:        o.Label,
			Probability: o.Probability,
		})
	}

	return types.Market{
		Title:      title,
		Slug:       m.Slug,
		Volume:     float64(m.Volume),
		EndDate:    endDate,
		Contenders: contenders,
	}
}

// WithPeople extracts contenders from each payload and keeps only markets
// that retained at least one person contender.
func WithPeople(apiMarkets []APIMarket, topN int) []types.Market {
	var markets []types.Market
	for i := range apiMarkets {
		m := ExtractContenders(&apiMarkets[i], topN)
		if len(m.Contenders) > 0 {
			markets = append(markets, m)
		}
	}
	return markets
}
