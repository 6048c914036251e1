package usecase

import (
	"context"
	"errors"
	"time"

	"news-curator/internal/domain/model"
	"news-curator/internal/domain/ports"
)

// NewsAggregator composes feed fetching, keyword filtering and summarization
// for a single news request.
type NewsAggregator struct {
	fetcher    ports.FeedFetcher
	keywords   ports.KeywordExtractor
	summarizer ports.Summarizer
	logger     ports.Logger
	sources    []model.FeedSource
}

// NewNewsAggregator constructs a NewsAggregator. A nil keyword extractor or
// summarizer behaves as if no completion credential were configured.
func NewNewsAggregator(
	fetcher ports.FeedFetcher,
	keywords ports.KeywordExtractor,
	summarizer ports.Summarizer,
	logger ports.Logger,
	sources []model.FeedSource,
) *NewsAggregator {
	return &NewsAggregator{
		fetcher:    fetcher,
		keywords:   keywords,
		summarizer: summarizer,
		logger:     logger,
		sources:    sources,
	}
}

// GetNews returns at most req.Limit() articles. When a summary was produced
// it replaces the summary of the first article.
func (n *NewsAggregator) GetNews(ctx context.Context, req model.NewsRequest) []model.Article {
	return n.Digest(ctx, req).SplicedArticles()
}

// Digest runs the news pipeline and reports the aggregate summary separately
// from the articles. It never fails; upstream failures degrade the result.
func (n *NewsAggregator) Digest(ctx context.Context, req model.NewsRequest) model.NewsDigest {
	start := time.Now()
	limit := req.Limit()

	var fetched []model.Article
	if limit > 0 {
		fetched = n.fetcher.FetchAll(ctx, n.sources, limit)
	}

	var keywords []string
	if req.Query != "" {
		keywords = n.extractKeywords(ctx, req.Query)
	}

	filtered := FilterArticles(fetched, keywords)

	digest := model.NewsDigest{SummaryStatus: model.SummarySkipped}
	if req.Query != "" && len(filtered) > 0 {
		digest.Summary, digest.SummaryStatus = n.summarize(ctx, filtered, req.Query)
	}

	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	digest.Articles = make([]model.Article, len(filtered))
	copy(digest.Articles, filtered)
	digest.Keywords = keywords
	if digest.Keywords == nil {
		digest.Keywords = []string{}
	}

	n.logger.Info(ctx, "news request served",
		"fetched", len(fetched),
		"keywords", len(keywords),
		"returned", len(digest.Articles),
		"summary_status", string(digest.SummaryStatus),
		"duration", time.Since(start))
	return digest
}

func (n *NewsAggregator) extractKeywords(ctx context.Context, query string) []string {
	if n.keywords == nil {
		n.logger.Debug(ctx, "keyword extraction disabled, serving unfiltered articles")
		return nil
	}

	keywords, err := n.keywords.ExtractKeywords(ctx, query)
	switch {
	case errors.Is(err, ports.ErrCompletionDisabled):
		n.logger.Debug(ctx, "keyword extraction disabled, serving unfiltered articles")
		return nil
	case err != nil:
		n.logger.Warn(ctx, "keyword extraction failed, serving unfiltered articles", "error", err)
		return nil
	}
	return keywords
}

func (n *NewsAggregator) summarize(ctx context.Context, articles []model.Article, query string) (string, model.SummaryStatus) {
	if n.summarizer == nil {
		return model.SummaryPlaceholder, model.SummaryDisabled
	}

	summary, err := n.summarizer.Summarize(ctx, articles, query)
	switch {
	case errors.Is(err, ports.ErrCompletionDisabled):
		return model.SummaryPlaceholder, model.SummaryDisabled
	case err != nil:
		n.logger.Warn(ctx, "summarization failed", "error", err, "articles", len(articles))
		return "", model.SummaryFailed
	}
	return summary, model.SummaryOK
}
