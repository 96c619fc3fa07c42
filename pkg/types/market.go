// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the polycheck pipeline.
package types

// Contender is a single person/option in a prediction market, kept after
// ranking and person-name filtering. Immutable once created.
type Contender struct {
	// Name is the outcome label with its original casing preserved.
	Name string `json:"name" yaml:"name"`

	// Probability is the market-implied probability as a 0-100 percentage.
	Probability float64 `json:"probability" yaml:"probability"`
}

// Market is a prediction market with its top person contenders. Contenders
// are sorted by probability descending and capped at the configured top-N;
// every entry has passed the person-name filter.
type Market struct {
	// Title is the market question (e.g. "Who will be the next Fed chair?").
	Title string `json:"title" yaml:"title"`

	// Slug is the market's URL slug.
	Slug string `json:"slug" yaml:"slug"`

	// Volume is the market's traded volume in USD.
	Volume float64 `json:"volume" yaml:"volume"`

	// EndDate is the market close date as reported by the API. Empty when
	// the API omits it.
	EndDate string `json:"end_date,omitempty" yaml:"end_date,omitempty"`

	// Contenders lists the surviving person outcomes in rank order.
	Contenders []Contender `json:"contenders" yaml:"contenders"`
}
