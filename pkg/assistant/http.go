package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/time/rate"
)

const maxResponseSize = 1 << 20

// HTTPOptions are shared by the HTTP providers
type HTTPOptions struct {
	BaseURL   string
	UserAgent string
	Client    *http.Client  // default client with 30s timeout if nil
	RateLimit time.Duration // minimal interval between requests, no limit if zero
}

// httpSource is the common plumbing of JSON-over-HTTP providers
type httpSource struct {
	baseURL   string
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
	policy    *bluemonday.Policy
}

func newHTTPSource(opts HTTPOptions, defaultBase string) httpSource {
	src := httpSource{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		userAgent: opts.UserAgent,
		client:    opts.Client,
		limiter:   rate.NewLimiter(rate.Inf, 1),
		policy:    bluemonday.StrictPolicy(),
	}
	if src.baseURL == "" {
		src.baseURL = defaultBase
	}
	if src.userAgent == "" {
		src.userAgent = "EduFlow/1.0"
	}
	if src.client == nil {
		src.client = &http.Client{Timeout: 30 * time.Second}
	}
	if opts.RateLimit > 0 {
		src.limiter = rate.NewLimiter(rate.Every(opts.RateLimit), 1)
	}
	return src
}

// wait takes the rate limit slot of one lookup, however many requests the lookup makes
func (s httpSource) wait(ctx context.Context) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}
	return nil
}

// getJSON fetches url and decodes the JSON body into dst
func (s httpSource) getJSON(ctx context.Context, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// plainText strips any markup a provider may leave in its text
func (s httpSource) plainText(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
}
