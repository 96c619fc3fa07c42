// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wiki

import "strings"

// PickTitle chooses a page title for a person from ranked search hits.
// The first title containing the person's name (case-insensitive) wins;
// if none does, the top hit is used. ok is false only when hits is empty.
func PickTitle(name string, hits []string) (title string, ok bool) {
	if len(hits) == 0 {
		return "", false
	}
	needle := strings.ToLower(name)
	for _, hit := range hits {
		if strings.Contains(strings.ToLower(hit), needle) {
			return hit, true
		}
	}
	return hits[0], true
}
