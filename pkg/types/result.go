// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ResolutionResult is the outcome of resolving one person name to a
// Wikipedia page and birth date. Exactly one of {both date fields set,
// Error set} holds when Found is true; when Found is false both date
// fields are empty.
type ResolutionResult struct {
	// Name is the person name as it appeared in the market outcome.
	Name string `json:"name" yaml:"name"`

	// Found reports whether a Wikipedia page was located and its content
	// retrieved.
	Found bool `json:"found" yaml:"found"`

	// WikipediaURL is the article URL derived from the resolved page title.
	WikipediaURL string `json:"wikipedia_url,omitempty" yaml:"wikipedia_url,omitempty"`

	// BirthDate is the display form, e.g. "December 22, 1962" or
	// "1955 (month/day unknown)".
	BirthDate string `json:"birth_date,omitempty" yaml:"birth_date,omitempty"`

	// BirthDateRaw is the normalized form, e.g. "1962-12-22" or "1955".
	BirthDateRaw string `json:"birth_date_raw,omitempty" yaml:"birth_date_raw,omitempty"`

	// Error describes why the lookup fell short, when it did.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Status returns the human-readable lookup status used in reports.
func (r ResolutionResult) Status() string {
	if !r.Found {
		return "Wikipedia page not found"
	}
	if r.BirthDate == "" {
		return "Birth date not found on Wikipedia"
	}
	return "Found"
}

// Row is one flat result row as committed to the result sink: a market
// contender joined with their Wikipedia resolution.
type Row struct {
	MarketTitle   string  `json:"market_title" yaml:"market_title"`
	PersonName    string  `json:"person_name" yaml:"person_name"`
	BirthDate     string  `json:"birth_date,omitempty" yaml:"birth_date,omitempty"`
	BirthDateRaw  string  `json:"birth_date_raw,omitempty" yaml:"birth_date_raw,omitempty"`
	WikipediaURL  string  `json:"wikipedia_url,omitempty" yaml:"wikipedia_url,omitempty"`
	Probability   float64 `json:"probability" yaml:"probability"`
	MarketVolume  float64 `json:"market_volume" yaml:"market_volume"`
	MarketEndDate string  `json:"market_end_date,omitempty" yaml:"market_end_date,omitempty"`
	Status        string  `json:"status" yaml:"status"`
}
