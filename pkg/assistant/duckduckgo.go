package assistant

import (
	"context"
	"fmt"
	"net/url"

	"github.com/umputun/eduflow/pkg/domain"
)

// DefaultDuckDuckGoURL is the instant answer API host
const DefaultDuckDuckGoURL = "https://api.duckduckgo.com"

// DuckDuckGo queries the instant answer API for an abstract
type DuckDuckGo struct {
	httpSource
}

// NewDuckDuckGo makes the provider
func NewDuckDuckGo(opts HTTPOptions) *DuckDuckGo {
	return &DuckDuckGo{httpSource: newHTTPSource(opts, DefaultDuckDuckGoURL)}
}

// Name returns the provider name used in citations
func (d *DuckDuckGo) Name() string { return "DuckDuckGo" }

// Lookup returns the abstract for query
func (d *DuckDuckGo) Lookup(ctx context.Context, query string) (Contribution, error) {
	if err := d.wait(ctx); err != nil {
		return Contribution{}, fmt.Errorf("duckduckgo: %w", err)
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("no_html", "1")
	params.Set("skip_disambig", "1")

	var resp struct {
		AbstractText string `json:"AbstractText"`
		AbstractURL  string `json:"AbstractURL"`
	}
	if err := d.getJSON(ctx, d.baseURL+"/?"+params.Encode(), &resp); err != nil {
		return Contribution{}, fmt.Errorf("duckduckgo: %w", err)
	}

	res := Contribution{Text: d.plainText(resp.AbstractText)}
	if resp.AbstractURL != "" {
		res.Source = &domain.Citation{Title: d.Name(), URL: resp.AbstractURL}
	}
	return res, nil
}
