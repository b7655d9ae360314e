package assistant

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/eduflow/pkg/domain"
)

type stubProvider struct {
	name   string
	lookup func(ctx context.Context, query string) (Contribution, error)
}

func (s stubProvider) Name() string { return s.name }

func (s stubProvider) Lookup(ctx context.Context, query string) (Contribution, error) {
	return s.lookup(ctx, query)
}

func fixed(name, text, url string, delay time.Duration) stubProvider {
	return stubProvider{name: name, lookup: func(ctx context.Context, _ string) (Contribution, error) {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return Contribution{}, ctx.Err()
		}
		c := Contribution{Text: text}
		if url != "" {
			c.Source = &domain.Citation{Title: name, URL: url}
		}
		return c, nil
	}}
}

func TestSearchAggregator_Answer(t *testing.T) {
	tests := []struct {
		name      string
		providers []Provider
		wantText  string
		wantSrc   []domain.Citation
	}{
		{
			name: "both providers in priority order",
			providers: []Provider{
				fixed("Wikipedia", "A", "https://w/a", 0),
				fixed("DuckDuckGo", "B", "https://d/b", 0),
			},
			wantText: "A\n\nB",
			wantSrc:  []domain.Citation{{Title: "Wikipedia", URL: "https://w/a"}, {Title: "DuckDuckGo", URL: "https://d/b"}},
		},
		{
			name: "priority wins over arrival order",
			providers: []Provider{
				fixed("Wikipedia", "slow first", "https://w/a", 50*time.Millisecond),
				fixed("DuckDuckGo", "fast second", "https://d/b", 0),
			},
			wantText: "slow first\n\nfast second",
			wantSrc:  []domain.Citation{{Title: "Wikipedia", URL: "https://w/a"}, {Title: "DuckDuckGo", URL: "https://d/b"}},
		},
		{
			name: "only second has text",
			providers: []Provider{
				fixed("Wikipedia", "", "", 0),
				fixed("DuckDuckGo", "B", "https://d/b", 0),
			},
			wantText: "B",
			wantSrc:  []domain.Citation{{Title: "DuckDuckGo", URL: "https://d/b"}},
		},
		{
			name: "url without text gives no citation",
			providers: []Provider{
				fixed("Wikipedia", "", "https://w/a", 0),
				fixed("DuckDuckGo", "B", "https://d/b", 0),
			},
			wantText: "B",
			wantSrc:  []domain.Citation{{Title: "DuckDuckGo", URL: "https://d/b"}},
		},
		{
			name: "text without url gives no citation",
			providers: []Provider{
				fixed("Wikipedia", "A", "", 0),
			},
			wantText: "A",
			wantSrc:  []domain.Citation{},
		},
		{
			name: "all empty falls back",
			providers: []Provider{
				fixed("Wikipedia", "", "", 0),
				fixed("DuckDuckGo", "  ", "", 0),
			},
			wantText: FallbackText,
			wantSrc:  []domain.Citation{},
		},
		{
			name: "failing provider contributes nothing",
			providers: []Provider{
				stubProvider{name: "Wikipedia", lookup: func(context.Context, string) (Contribution, error) {
					return Contribution{}, errors.New("boom")
				}},
				fixed("DuckDuckGo", "B", "https://d/b", 0),
			},
			wantText: "B",
			wantSrc:  []domain.Citation{{Title: "DuckDuckGo", URL: "https://d/b"}},
		},
		{
			name: "panicking provider contributes nothing",
			providers: []Provider{
				fixed("Wikipedia", "A", "https://w/a", 0),
				stubProvider{name: "DuckDuckGo", lookup: func(context.Context, string) (Contribution, error) {
					panic("unexpected")
				}},
			},
			wantText: "A",
			wantSrc:  []domain.Citation{{Title: "Wikipedia", URL: "https://w/a"}},
		},
		{
			name:      "no providers",
			providers: nil,
			wantText:  FallbackText,
			wantSrc:   []domain.Citation{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := NewSearchAggregator(AggregatorConfig{Providers: tt.providers})
			res := agg.Answer(context.Background(), "what is inertia", "Physics")
			assert.Equal(t, tt.wantText, res.Text)
			assert.Equal(t, tt.wantSrc, res.Sources)
		})
	}
}

func TestSearchAggregator_Timeout(t *testing.T) {
	hang := stubProvider{name: "Wikipedia", lookup: func(ctx context.Context, _ string) (Contribution, error) {
		<-ctx.Done()
		return Contribution{}, ctx.Err()
	}}
	agg := NewSearchAggregator(AggregatorConfig{
		Providers:       []Provider{hang, fixed("DuckDuckGo", "B", "https://d/b", 0)},
		ProviderTimeout: 50 * time.Millisecond,
	})

	started := time.Now()
	res := agg.Answer(context.Background(), "q", "s")
	assert.Less(t, time.Since(started), time.Second)
	assert.Equal(t, "B", res.Text)
}

func TestSearchAggregator_Concurrent(t *testing.T) {
	var inFlight, peak int32
	slow := func(name string) stubProvider {
		return stubProvider{name: name, lookup: func(context.Context, string) (Contribution, error) {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(50 * time.Millisecond)
			atomic.AddInt32(&inFlight, -1)
			return Contribution{Text: name}, nil
		}}
	}
	agg := NewSearchAggregator(AggregatorConfig{Providers: []Provider{slow("a"), slow("b")}})
	res := agg.Answer(context.Background(), "q", "s")
	assert.Equal(t, "a\n\nb", res.Text)
	assert.Equal(t, int32(2), atomic.LoadInt32(&peak), "providers should run together")
}

func TestSearchAggregator_Query(t *testing.T) {
	var got string
	p := stubProvider{name: "p", lookup: func(_ context.Context, q string) (Contribution, error) {
		got = q
		return Contribution{Text: "ok"}, nil
	}}
	agg := NewSearchAggregator(AggregatorConfig{Providers: []Provider{p}})

	agg.Answer(context.Background(), "what is inertia", "Physics")
	assert.Equal(t, "what is inertia Physics", got)

	got = ""
	res := agg.Answer(context.Background(), "  ", "")
	assert.Empty(t, got, "empty query should not reach providers")
	assert.Equal(t, FallbackText, res.Text)
}

func TestSearchAggregator_MaxLen(t *testing.T) {
	long := strings.Repeat("é", 800)
	agg := NewSearchAggregator(AggregatorConfig{Providers: []Provider{fixed("Wikipedia", long, "https://w/a", 0)}})
	res := agg.Answer(context.Background(), "q", "s")
	assert.Equal(t, DefaultMaxAnswerLen, len([]rune(res.Text)))
	require.Len(t, res.Sources, 1)

	agg = NewSearchAggregator(AggregatorConfig{
		Providers:    []Provider{fixed("a", "12345", "", 0), fixed("b", "67890", "", 0)},
		MaxAnswerLen: 8,
	})
	assert.Equal(t, "12345\n\n6", agg.Answer(context.Background(), "q", "s").Text)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "пр", truncate("привет", 2))
	assert.Empty(t, truncate("abc", 0))
}
