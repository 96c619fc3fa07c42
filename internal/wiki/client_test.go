// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wiki

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pdiddy/polycheck/pkg/types"
)

func testClient(ts *httptest.Server) *Client {
	return NewClient(types.LookupConfig{
		APIURL:      ts.URL + "/w/api.php",
		SearchLimit: 5,
	})
}

func TestSearchTitles(t *testing.T) {
	var gotQuery map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"action":   q.Get("action"),
			"list":     q.Get("list"),
			"srsearch": q.Get("srsearch"),
			"srlimit":  q.Get("srlimit"),
			"format":   q.Get("format"),
		}
		w.Write([]byte(`{"query":{"search":[{"title":"Jane Smith"},{"title":"Jane Smith (politician)"}]}}`))
	}))
	defer ts.Close()

	titles, err := testClient(ts).SearchTitles(context.Background(), "Jane Smith")
	if err != nil {
		t.Fatalf("SearchTitles: %v", err)
	}

	want := map[string]string{
		"action":   "query",
		"list":     "search",
		"srsearch": "Jane Smith",
		"srlimit":  "5",
		"format":   "json",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query param %s = %q, want %q", k, gotQuery[k], v)
		}
	}

	if len(titles) != 2 || titles[0] != "Jane Smith" || titles[1] != "Jane Smith (politician)" {
		t.Errorf("titles = %v", titles)
	}
}

func TestSearchTitlesEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"query":{"search":[]}}`))
	}))
	defer ts.Close()

	titles, err := testClient(ts).SearchTitles(context.Background(), "zzzz")
	if err != nil {
		t.Fatalf("SearchTitles: %v", err)
	}
	if len(titles) != 0 {
		t.Errorf("titles = %v, want none", titles)
	}
}

func TestPageWikitext(t *testing.T) {
	var gotQuery map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"titles":  q.Get("titles"),
			"prop":    q.Get("prop"),
			"rvprop":  q.Get("rvprop"),
			"rvslots": q.Get("rvslots"),
		}
		w.Write([]byte(`{"query":{"pages":{"12345":{"revisions":[{"slots":{"main":{"*":"{{Infobox person}}"}}}]}}}}`))
	}))
	defer ts.Close()

	text, err := testClient(ts).PageWikitext(context.Background(), "Jane Smith")
	if err != nil {
		t.Fatalf("PageWikitext: %v", err)
	}
	if text != "{{Infobox person}}" {
		t.Errorf("text = %q", text)
	}

	want := map[string]string{
		"titles":  "Jane Smith",
		"prop":    "revisions",
		"rvprop":  "content",
		"rvslots": "main",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query param %s = %q, want %q", k, gotQuery[k], v)
		}
	}
}

func TestPageWikitextMissingPage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"query":{"pages":{"-1":{"title":"Nosuchpage","missing":""}}}}`))
	}))
	defer ts.Close()

	text, err := testClient(ts).PageWikitext(context.Background(), "Nosuchpage")
	if err != nil {
		t.Fatalf("PageWikitext: %v", err)
	}
	if text != "" {
		t.Errorf("text = %q, want empty for missing page", text)
	}
}

func TestPageWikitextNoRevisions(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"query":{"pages":{"12345":{"revisions":[]}}}}`))
	}))
	defer ts.Close()

	text, err := testClient(ts).PageWikitext(context.Background(), "Jane Smith")
	if err != nil {
		t.Fatalf("PageWikitext: %v", err)
	}
	if text != "" {
		t.Errorf("text = %q, want empty", text)
	}
}

func TestArticleURL(t *testing.T) {
	c := NewClient(types.LookupConfig{})
	got := c.ArticleURL("Jane Smith (politician)")
	want := "https://en.wikipedia.org/wiki/Jane_Smith_(politician)"
	if got != want {
		t.Errorf("ArticleURL = %q, want %q", got, want)
	}
}
