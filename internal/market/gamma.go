// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pdiddy/polycheck/internal/httputil"
	"github.com/pdiddy/polycheck/pkg/types"
)

// DefaultBaseURL is the public Gamma API root.
const DefaultBaseURL = "https://gamma-api.polymarket.com"

// GammaClient is the REST client for the Polymarket Gamma API, which serves
// market discovery and metadata.
type GammaClient struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewGammaClient creates a Gamma API client from the market configuration,
// filling in defaults for unset base URL, timeout, and User-Agent.
func NewGammaClient(cfg types.MarketConfig) *GammaClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "polycheck/0.1"
	}
	return &GammaClient{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// ActiveMarkets returns up to limit active, unresolved markets.
func (g *GammaClient) ActiveMarkets(ctx context.Context, limit int) ([]APIMarket, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("active", "true")
	params.Set("closed", "false")

	body, err := g.doGet(ctx, "/markets?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("gamma: get markets: %w", err)
	}

	var markets []APIMarket
	if err := json.Unmarshal(body, &markets); err != nil {
		return nil, fmt.Errorf("gamma: decode markets: %w", err)
	}
	return markets, nil
}

// MarketBySlug returns a single market looked up by its URL slug, or nil
// when the Gamma API reports no such market.
func (g *GammaClient) MarketBySlug(ctx context.Context, slug string) (*APIMarket, error) {
	body, err := g.doGet(ctx, "/markets/"+url.PathEscape(slug))
	if err != nil {
		if err == errNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("gamma: get market %s: %w", slug, err)
	}

	var m APIMarket
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, fmt.Errorf("gamma: decode market: %w", err)
	}
	return &m, nil
}

// errNotFound distinguishes a 404 from other HTTP failures inside doGet.
var errNotFound = fmt.Errorf("not found")

func (g *GammaClient) doGet(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := httputil.DoWithRetry(ctx, g.client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errNotFound
	}
	body, err := httputil.ReadBody(resp)
	if err != nil {
		return nil, err
	}
	return body, nil
}
