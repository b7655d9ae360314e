package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/umputun/eduflow/pkg/domain"
)

// DefaultWikipediaURL is the English Wikipedia host
const DefaultWikipediaURL = "https://en.wikipedia.org"

// Wikipedia looks up the best matching article and returns its summary.
// It takes two calls: opensearch for the title, then the page summary.
type Wikipedia struct {
	httpSource
}

// NewWikipedia makes the provider
func NewWikipedia(opts HTTPOptions) *Wikipedia {
	return &Wikipedia{httpSource: newHTTPSource(opts, DefaultWikipediaURL)}
}

// Name returns the provider name used in citations
func (w *Wikipedia) Name() string { return "Wikipedia" }

type wikiSummary struct {
	Extract     string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// Lookup searches for query and fetches the summary of the first hit
func (w *Wikipedia) Lookup(ctx context.Context, query string) (Contribution, error) {
	if err := w.wait(ctx); err != nil {
		return Contribution{}, fmt.Errorf("wikipedia: %w", err)
	}
	title, pageURL, err := w.search(ctx, query)
	if err != nil {
		return Contribution{}, err
	}
	if title == "" {
		return Contribution{}, nil
	}

	var summary wikiSummary
	summaryURL := w.baseURL + "/api/rest_v1/page/summary/" + url.PathEscape(title)
	if err := w.getJSON(ctx, summaryURL, &summary); err != nil {
		return Contribution{}, fmt.Errorf("wikipedia summary: %w", err)
	}

	if pageURL == "" {
		pageURL = summary.ContentURLs.Desktop.Page
	}
	res := Contribution{Text: w.plainText(summary.Extract)}
	if pageURL != "" {
		res.Source = &domain.Citation{Title: w.Name(), URL: pageURL}
	}
	return res, nil
}

// search returns the first opensearch title and its url, empty title means no match
func (w *Wikipedia) search(ctx context.Context, query string) (title, pageURL string, err error) {
	params := url.Values{}
	params.Set("action", "opensearch")
	params.Set("search", query)
	params.Set("limit", "1")
	params.Set("namespace", "0")
	params.Set("format", "json")

	// response is a heterogeneous array: [query, [titles], [descriptions], [urls]]
	var raw []json.RawMessage
	if err := w.getJSON(ctx, w.baseURL+"/w/api.php?"+params.Encode(), &raw); err != nil {
		return "", "", fmt.Errorf("wikipedia search: %w", err)
	}
	if len(raw) < 2 {
		return "", "", fmt.Errorf("wikipedia search: malformed response")
	}

	var titles, urls []string
	if err := json.Unmarshal(raw[1], &titles); err != nil {
		return "", "", fmt.Errorf("wikipedia search titles: %w", err)
	}
	if len(raw) > 3 {
		if err := json.Unmarshal(raw[3], &urls); err != nil {
			return "", "", fmt.Errorf("wikipedia search urls: %w", err)
		}
	}
	if len(titles) == 0 {
		return "", "", nil
	}
	if len(urls) > 0 {
		pageURL = urls[0]
	}
	return titles[0], pageURL, nil
}
