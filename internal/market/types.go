// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package market discovers prediction markets and selects person contenders.
//
// The Gamma API serves market outcomes in two shapes: a "tokens" array of
// {outcome, price} objects, or parallel "outcomes"/"outcomePrices" lists that
// are themselves sometimes JSON-encoded strings. The DTO types here absorb
// both, swallowing malformed fields so a bad payload yields an empty outcome
// list instead of an error.
package market

import (
	"encoding/json"
	"strconv"
)

// APIMarket mirrors a market object from the Gamma API.
type APIMarket struct {
	ID            string      `json:"id"`
	Question      string      `json:"question"`
	Title         string      `json:"title"`
	Slug          string      `json:"slug"`
	Volume        flexFloat   `json:"volume"`
	EndDate       string      `json:"endDate"`
	EndDateISO    string      `json:"end_date_iso"`
	Tokens        tokenList   `json:"tokens"`
	Outcomes      flexStrings `json:"outcomes"`
	OutcomePrices flexFloats  `json:"outcomePrices"`
}

// Token is one entry of the Gamma "tokens" outcome shape.
type Token struct {
	TokenID string    `json:"token_id"`
	Outcome string    `json:"outcome"`
	Price   flexFloat `json:"price"`
}

// RawOutcome is an outcome label with its market-implied probability as a
// 0-100 percentage. Produced per payload, discarded after selection.
type RawOutcome struct {
	Label       string
	Probability float64
}

// flexFloat unmarshals from a JSON number or a numeric string ("0.15").
// Anything else leaves the value at zero.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexFloat(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		*f = flexFloat(n)
	}
	return nil
}

// tokenList unmarshals the "tokens" array and records whether the key was
// present at all: shape precedence is decided by key presence, not by the
// array being non-empty.
type tokenList struct {
	present bool
	tokens  []Token
}

func (t *tokenList) UnmarshalJSON(data []byte) error {
	t.present = true
	if string(data) == "null" {
		return nil
	}
	var toks []Token
	if err := json.Unmarshal(data, &toks); err != nil {
		return nil
	}
	t.tokens = toks
	return nil
}

// flexStrings unmarshals a list of strings that may arrive either as a JSON
// array or as a JSON string containing an encoded array
// (e.g. "[\"Yes\",\"No\"]"). Decode failures yield an empty list.
type flexStrings struct {
	present bool
	values  []string
}

func (f *flexStrings) UnmarshalJSON(data []byte) error {
	f.present = true
	if string(data) == "null" {
		return nil
	}
	var vals []string
	if err := json.Unmarshal(data, &vals); err == nil {
		f.values = vals
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	if err := json.Unmarshal([]byte(s), &vals); err != nil {
		return nil
	}
	f.values = vals
	return nil
}

// flexFloats unmarshals a list of prices whose elements may be numbers or
// numeric strings, with the whole list possibly JSON-string-encoded.
// Decode failures yield an empty list; unparseable elements become zero.
type flexFloats struct {
	values []float64
}

func (f *flexFloats) UnmarshalJSON(data []byte) error {
	raw := data
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		raw = []byte(s)
	}
	var elems []any
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil
	}
	for _, e := range elems {
		switch v := e.(type) {
		case float64:
			f.values = append(f.values, v)
		case string:
			n, _ := strconv.ParseFloat(v, 64)
			f.values = append(f.values, n)
		default:
			f.values = append(f.values, 0)
		}
	}
	return nil
}
