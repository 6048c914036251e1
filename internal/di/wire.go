//go:build wireinject

package di

import (
	"github.com/google/wire"

	"news-curator/internal/adapter/feeds"
	"news-curator/internal/adapter/logging"
	"news-curator/internal/adapter/readinglist"
	"news-curator/internal/app"
	"news-curator/internal/config"
	"news-curator/internal/domain/ports"
	"news-curator/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp(cfg *config.Config) (*app.App, error) {
	wire.Build(
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideFeedSources,
		provideFeedFetcher,
		wire.Bind(new(ports.FeedFetcher), new(*feeds.Fetcher)),
		provideCompletionClient,
		provideKeywordExtractor,
		provideSummarizer,
		usecase.NewNewsAggregator,
		readinglist.NewMemoryStore,
		wire.Bind(new(ports.ReadingListStore), new(*readinglist.MemoryStore)),
		usecase.NewReadingList,
		usecase.NewFeedProbe,
		wire.Bind(new(app.Job), new(*usecase.FeedProbe)),
		provideServer,
		provideAppConfig,
		app.New,
	)
	return nil, nil
}
