// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wiki resolves person names to Wikipedia pages and birth dates.
package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/polycheck/internal/httputil"
	"github.com/pdiddy/polycheck/pkg/types"
)

// DefaultAPIURL is the English Wikipedia action API endpoint.
const DefaultAPIURL = "https://en.wikipedia.org/w/api.php"

const defaultSearchLimit = 5

// API is the slice of the MediaWiki client the resolution pipeline uses.
// *Client implements it; tests supply fakes.
type API interface {
	// SearchTitles returns ranked page titles for a query, best first.
	SearchTitles(ctx context.Context, query string) ([]string, error)

	// PageWikitext returns the raw wikitext of a page, or "" when the
	// page does not exist.
	PageWikitext(ctx context.Context, title string) (string, error)

	// ArticleURL returns the canonical article URL for a page title.
	ArticleURL(title string) string
}

// Client talks to a MediaWiki action API.
type Client struct {
	apiURL      string
	userAgent   string
	searchLimit int
	client      *http.Client
}

// NewClient creates a Wikipedia client from the lookup configuration,
// filling in defaults for unset endpoint, timeout, search limit, and
// User-Agent.
func NewClient(cfg types.LookupConfig) *Client {
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	searchLimit := cfg.SearchLimit
	if searchLimit <= 0 {
		searchLimit = defaultSearchLimit
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "polycheck/0.1"
	}
	return &Client{
		apiURL:      apiURL,
		userAgent:   userAgent,
		searchLimit: searchLimit,
		client:      &http.Client{Timeout: timeout},
	}
}

// MediaWiki API JSON structures.
type searchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type revisionsResponse struct {
	Query struct {
		Pages map[string]struct {
			Revisions []struct {
				Slots struct {
					Main struct {
						Content string `json:"*"`
					} `json:"main"`
				} `json:"slots"`
			} `json:"revisions"`
		} `json:"pages"`
	} `json:"query"`
}

// SearchTitles runs a full-text search and returns up to the configured
// number of page titles in the provider's relevance order.
func (c *Client) SearchTitles(ctx context.Context, query string) ([]string, error) {
	params := url.Values{
		"action":   {"query"},
		"list":     {"search"},
		"srsearch": {query},
		"srlimit":  {strconv.Itoa(c.searchLimit)},
		"format":   {"json"},
	}

	body, err := c.doGet(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("wiki: search %q: %w", query, err)
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("wiki: decode search response: %w", err)
	}

	titles := make([]string, 0, len(sr.Query.Search))
	for _, hit := range sr.Query.Search {
		titles = append(titles, hit.Title)
	}
	return titles, nil
}

// PageWikitext fetches the raw wikitext of the latest revision of a page.
// A missing page (page id "-1") yields "" without an error.
func (c *Client) PageWikitext(ctx context.Context, title string) (string, error) {
	params := url.Values{
		"action":  {"query"},
		"titles":  {title},
		"prop":    {"revisions"},
		"rvprop":  {"content"},
		"rvslots": {"main"},
		"format":  {"json"},
	}

	body, err := c.doGet(ctx, params)
	if err != nil {
		return "", fmt.Errorf("wiki: fetch page %q: %w", title, err)
	}

	var rr revisionsResponse
	if err := json.Unmarshal(body, &rr); err != nil {
		return "", fmt.Errorf("wiki: decode page response: %w", err)
	}

	for pageID, page := range rr.Query.Pages {
		if pageID == "-1" {
			return "", nil
		}
		if len(page.Revisions) > 0 {
			return page.Revisions[0].Slots.Main.Content, nil
		}
	}
	return "", nil
}

// ArticleURL derives the canonical article URL from the API endpoint:
// spaces in the title become underscores.
func (c *Client) ArticleURL(title string) string {
	base := strings.TrimSuffix(c.apiURL, "/w/api.php")
	return base + "/wiki/" + strings.ReplaceAll(title, " ", "_")
}

func (c *Client) doGet(ctx context.Context, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := httputil.DoWithRetry(ctx, c.client, req, 0)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return httputil.ReadBody(resp)
}
