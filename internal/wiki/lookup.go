// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wiki

import (
	"context"

	"github.com/pdiddy/polycheck/internal/extract"
	"github.com/pdiddy/polycheck/pkg/types"
)

// LookupPerson resolves one person name to a Wikipedia page and birth
// date. Transport failures never escape as errors; they are folded into
// the result's Error field so a batch run can keep going.
func LookupPerson(ctx context.Context, api API, name string) types.ResolutionResult {
	result := types.ResolutionResult{Name: name}

	hits, err := api.SearchTitles(ctx, name)
	if err != nil {
		result.Error = "Network error: " + err.Error()
		return result
	}

	title, ok := PickTitle(name, hits)
	if !ok {
		result.Error = "No Wikipedia page found"
		return result
	}

	text, err := api.PageWikitext(ctx, title)
	if err != nil {
		result.Error = "Network error: " + err.Error()
		return result
	}
	if text == "" {
		result.Error = "Could not retrieve Wikipedia page content"
		return result
	}

	result.Found = true
	result.WikipediaURL = api.ArticleURL(title)

	if bd, ok := extract.FindBirthDate(text); ok {
		result.BirthDate = bd.Display
		result.BirthDateRaw = bd.Raw
	} else {
		result.Error = "Birth date not found in Wikipedia infobox"
	}
	return result
}
