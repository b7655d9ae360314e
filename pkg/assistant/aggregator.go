package assistant

import (
	"context"
	"log"
	"runtime/debug"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/umputun/eduflow/pkg/domain"
)

// DefaultProviderTimeout bounds a single provider call
const DefaultProviderTimeout = 5 * time.Second

// SearchAggregator fans a question out to providers and merges their contributions.
// Provider order is priority order: it decides the order of text and citations,
// completion order never does.
type SearchAggregator struct {
	providers []Provider
	timeout   time.Duration
	maxLen    int
}

// AggregatorConfig configures SearchAggregator
type AggregatorConfig struct {
	Providers       []Provider    // in priority order
	ProviderTimeout time.Duration // per provider call, DefaultProviderTimeout if zero
	MaxAnswerLen    int           // in characters, DefaultMaxAnswerLen if zero
}

// NewSearchAggregator makes an aggregator
func NewSearchAggregator(cfg AggregatorConfig) *SearchAggregator {
	if cfg.ProviderTimeout <= 0 {
		cfg.ProviderTimeout = DefaultProviderTimeout
	}
	if cfg.MaxAnswerLen <= 0 {
		cfg.MaxAnswerLen = DefaultMaxAnswerLen
	}
	return &SearchAggregator{
		providers: append([]Provider(nil), cfg.Providers...),
		timeout:   cfg.ProviderTimeout,
		maxLen:    cfg.MaxAnswerLen,
	}
}

// Answer queries all providers concurrently and merges the results
func (a *SearchAggregator) Answer(ctx context.Context, question, subject string) (answer domain.Answer) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[WARN] answer aggregation failed: %v\n%s", r, debug.Stack())
			answer = fallbackAnswer()
		}
	}()

	query := strings.TrimSpace(question + " " + subject)
	if query == "" {
		return fallbackAnswer()
	}

	// all calls are dispatched before any is awaited, each writes only its own slot
	results := make([]Contribution, len(a.providers))
	var g errgroup.Group
	for i, p := range a.providers {
		g.Go(func() error {
			results[i] = a.lookup(ctx, p, query)
			return nil
		})
	}
	_ = g.Wait()

	return a.merge(results)
}

// lookup calls a single provider, any failure becomes an empty contribution
func (a *SearchAggregator) lookup(ctx context.Context, p Provider, query string) (res Contribution) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[WARN] provider %s panicked: %v", p.Name(), r)
			res = Contribution{}
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	started := time.Now()
	c, err := p.Lookup(ctx, query)
	if err != nil {
		log.Printf("[WARN] provider %s failed for %q: %v", p.Name(), query, err)
		return Contribution{}
	}
	c.Text = strings.TrimSpace(c.Text)
	if c.Source != nil && c.Source.URL == "" {
		c.Source = nil
	}
	log.Printf("[DEBUG] provider %s answered in %v, %d chars", p.Name(), time.Since(started), len(c.Text))
	return c
}

func (a *SearchAggregator) merge(results []Contribution) domain.Answer {
	parts := make([]string, 0, len(results))
	sources := []domain.Citation{}
	for _, r := range results {
		if r.Empty() {
			continue // a source without text is not cited
		}
		parts = append(parts, r.Text)
		if r.Source != nil {
			sources = append(sources, *r.Source)
		}
	}

	text := truncate(strings.Join(parts, "\n\n"), a.maxLen)
	if strings.TrimSpace(text) == "" {
		return fallbackAnswer()
	}
	return domain.Answer{Text: text, Sources: sources}
}

// truncate cuts s to at most n characters (runes)
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
