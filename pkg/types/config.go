// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "polycheck/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// MarketConfig holds settings for the market discovery stage.
type MarketConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the Gamma API root (default "https://gamma-api.polymarket.com").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Limit is the maximum number of markets to fetch (default 100).
	Limit int `json:"limit" yaml:"limit"`

	// TopContenders is the number of top outcomes kept per market before
	// person-name filtering (default 4, the "chart" entries).
	TopContenders int `json:"top_contenders" yaml:"top_contenders"`
}

// LookupConfig holds settings for the Wikipedia lookup stage.
type LookupConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIURL is the MediaWiki action API endpoint
	// (default "https://en.wikipedia.org/w/api.php").
	APIURL string `json:"api_url" yaml:"api_url"`

	// SearchLimit is the number of ranked search hits requested per name
	// (default 5).
	SearchLimit int `json:"search_limit" yaml:"search_limit"`

	// LookupDelay is the delay between consecutive person lookups (default 0).
	LookupDelay time.Duration `json:"lookup_delay" yaml:"lookup_delay"`
}

// ReportConfig holds settings for the report stage.
type ReportConfig struct {
	// DataDir is the base directory for the result store (contains
	// polycheck.db and export files).
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// CSVPath is the default CSV output file path.
	CSVPath string `json:"csv_path" yaml:"csv_path"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Market MarketConfig `json:"market" yaml:"market"`
	Lookup LookupConfig `json:"lookup" yaml:"lookup"`
	Report ReportConfig `json:"report" yaml:"report"`
}
