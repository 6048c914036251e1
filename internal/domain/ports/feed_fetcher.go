package ports

import (
	"context"

	"news-curator/internal/domain/model"
)

//go:generate mockgen -source=feed_fetcher.go -destination=../../mocks/mock_feed_fetcher.go -package=mocks

// FeedFetcher retrieves syndication entries from feed sources.
type FeedFetcher interface {
	// FetchSource returns at most limit entries of one source in document order.
	FetchSource(ctx context.Context, source model.FeedSource, limit int) ([]model.Article, error)
	// FetchAll concatenates FetchSource results in source order. Failing
	// sources contribute nothing.
	FetchAll(ctx context.Context, sources []model.FeedSource, perFeedLimit int) []model.Article
}
