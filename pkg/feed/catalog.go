package feed

import (
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/umputun/eduflow/pkg/domain"
)

// avatarPalette colors creators without an explicit color
var avatarPalette = []string{"#7c3aed", "#06b6d4", "#22c55e", "#f59e0b", "#ef4444", "#ec4899"}

// CatalogLoader reads the fixed item sequence from an RSS/Atom/Media RSS document.
// Entries without a video are skipped, document order is kept.
type CatalogLoader struct {
	client    *http.Client
	userAgent string
}

// NewCatalogLoader creates a new catalog loader
func NewCatalogLoader(timeout time.Duration, userAgent string) *CatalogLoader {
	return &CatalogLoader{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Load fetches and converts the catalog at url
func (l *CatalogLoader) Load(ctx context.Context, url string) ([]domain.FeedItem, error) {
	body, err := l.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer body.Close()

	parsed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	items := make([]domain.FeedItem, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		item, ok := convertEntry(parsed, entry)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no video entries in catalog %s", url)
	}
	return items, nil
}

func convertEntry(parsed *gofeed.Feed, entry *gofeed.Item) (domain.FeedItem, bool) {
	video := videoURL(entry)
	if video == "" {
		return domain.FeedItem{}, false
	}

	item := domain.FeedItem{
		Title:      entry.Title,
		Difficulty: domain.DifficultyBeginner,
		VideoURL:   video,
		Subject:    parsed.Title,
	}

	switch {
	case entry.GUID != "":
		item.ID = entry.GUID
	case entry.Link != "":
		item.ID = entry.Link
	default:
		item.ID = video
	}

	if entry.Author != nil {
		item.Creator = entry.Author.Name
	} else if len(entry.Authors) > 0 && entry.Authors[0] != nil {
		item.Creator = entry.Authors[0].Name
	}
	item.AvatarColor = avatarColor(item.Creator)

	// difficulty rides along as a category, the first other category is the subject
	subjectSet := false
	for _, cat := range entry.Categories {
		cat = strings.TrimSpace(cat)
		if d := domain.Difficulty(cat); d.Valid() {
			item.Difficulty = d
			continue
		}
		if !subjectSet && cat != "" {
			item.Subject = cat
			subjectSet = true
		}
	}
	return item, true
}

// videoURL picks the first video enclosure, then media:content
func videoURL(entry *gofeed.Item) string {
	for _, enc := range entry.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "video/") && enc.URL != "" {
			return enc.URL
		}
	}
	for _, content := range entry.Extensions["media"]["content"] {
		if url := content.Attrs["url"]; url != "" {
			if medium := content.Attrs["medium"]; medium == "" || medium == "video" {
				return url
			}
		}
	}
	return ""
}

func avatarColor(creator string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(creator))
	return avatarPalette[h.Sum32()%uint32(len(avatarPalette))]
}

// fetch retrieves content from a URL
func (l *CatalogLoader) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", l.userAgent)
	addFeedHeaders(req)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
