package feeds

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"news-curator/internal/adapter/httpclient"
	"news-curator/internal/domain/model"
	"news-curator/internal/domain/ports"
	"news-curator/internal/metrics"
)

const (
	defaultTimeout  = 10 * time.Second
	maxParallelism  = 8
	acceptFeedTypes = "application/rss+xml, application/atom+xml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"
)

// Fetcher retrieves and parses syndication feeds.
type Fetcher struct {
	client  httpclient.Client
	policy  *bluemonday.Policy
	logger  ports.Logger
	timeout time.Duration
}

var _ ports.FeedFetcher = (*Fetcher)(nil)

// NewFetcher builds a Fetcher. Each source fetch is bounded by timeout.
func NewFetcher(client httpclient.Client, timeout time.Duration, logger ports.Logger) *Fetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if client == nil {
		client = httpclient.NewRestyClient(timeout)
	}
	return &Fetcher{
		client:  client,
		policy:  bluemonday.UGCPolicy(),
		logger:  logger,
		timeout: timeout,
	}
}

// FetchAll fetches every source concurrently and concatenates the entries in
// source order. A failing source is logged and contributes nothing.
func (f *Fetcher) FetchAll(ctx context.Context, sources []model.FeedSource, perFeedLimit int) []model.Article {
	results := make([][]model.Article, len(sources))

	var g errgroup.Group
	g.SetLimit(maxParallelism)
	for i, src := range sources {
		g.Go(func() error {
			items, err := f.FetchSource(ctx, src, perFeedLimit)
			if err != nil {
				if f.logger != nil {
					f.logger.Warn(ctx, "feed source skipped", "source", src.Name, "url", src.URL, "error", err)
				}
				return nil
			}
			results[i] = items
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, items := range results {
		total += len(items)
	}
	articles := make([]model.Article, 0, total)
	for _, items := range results {
		articles = append(articles, items...)
	}
	return articles
}

// FetchSource fetches one source and maps at most limit entries, in document
// order, to articles.
func (f *Fetcher) FetchSource(ctx context.Context, source model.FeedSource, limit int) (articles []model.Article, err error) {
	defer func() {
		outcome := metrics.OutcomeOK
		if err != nil {
			outcome = metrics.OutcomeError
		}
		metrics.RecordFeedFetch(source.Name, outcome)
	}()

	if strings.TrimSpace(source.URL) == "" {
		return nil, fmt.Errorf("feed source %q has no url", source.Name)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	resp, err := f.client.Get(ctx, source.URL, map[string]string{"Accept": acceptFeedTypes})
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", source.Name, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d body: %s", source.Name, resp.StatusCode(), responseSnippet(resp.Body()))
	}

	// gofeed parsers keep per-document state, so each fetch gets its own.
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", source.Name, err)
	}

	return f.toArticles(feed.Items, limit), nil
}

func (f *Fetcher) toArticles(items []*gofeed.Item, limit int) []model.Article {
	if limit <= 0 {
		return []model.Article{}
	}
	if len(items) > limit {
		items = items[:limit]
	}

	articles := make([]model.Article, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		articles = append(articles, model.Article{
			Title:   item.Title,
			Link:    item.Link,
			Summary: f.summaryOf(item),
		})
	}
	return articles
}

// summaryOf prefers the entry description and falls back to its content.
// Markup is sanitized; plain text is kept verbatim.
func (f *Fetcher) summaryOf(item *gofeed.Item) string {
	summary := item.Description
	if strings.TrimSpace(summary) == "" {
		summary = item.Content
	}
	if strings.ContainsAny(summary, "<>") {
		summary = strings.TrimSpace(f.policy.Sanitize(summary))
	}
	return summary
}

// responseSnippet returns a truncated snippet of the response body for logging.
func responseSnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
