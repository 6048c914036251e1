package di

import (
	"log/slog"
	"os"

	"news-curator/internal/adapter/completion"
	"news-curator/internal/adapter/feeds"
	"news-curator/internal/adapter/httpclient"
	"news-curator/internal/adapter/logging"
	"news-curator/internal/adapter/rest"
	"news-curator/internal/app"
	"news-curator/internal/config"
	"news-curator/internal/domain/model"
	"news-curator/internal/domain/ports"
	"news-curator/internal/usecase"
)

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return logging.NewJSONLogger(os.Stdout, cfg.Level())
}

func provideFeedSources() []model.FeedSource {
	return feeds.DefaultSources()
}

func provideFeedFetcher(cfg *config.Config, logger ports.Logger) *feeds.Fetcher {
	return feeds.NewFetcher(httpclient.NewRestyClient(cfg.FeedTimeout), cfg.FeedTimeout, logger)
}

// provideCompletionClient leaves the transport unbounded; each call applies
// its own keyword or summary timeout.
func provideCompletionClient(cfg *config.Config, logger ports.Logger) *completion.Client {
	return completion.NewClient(httpclient.NewRestyClient(0), completion.Config{
		APIKey: cfg.OpenAIAPIKey,
		URL:    cfg.OpenAIURL,
		Model:  cfg.OpenAIModel,
	}, logger)
}

// provideKeywordExtractor returns nil without a completion key; the news
// aggregator then serves unfiltered articles.
func provideKeywordExtractor(cfg *config.Config, client *completion.Client) ports.KeywordExtractor {
	if !cfg.CompletionEnabled() {
		return nil
	}
	return completion.NewKeywordExtractor(client, cfg.KeywordTimeout)
}

func provideSummarizer(cfg *config.Config, client *completion.Client) ports.Summarizer {
	if !cfg.CompletionEnabled() {
		return nil
	}
	return completion.NewSummarizer(client, cfg.SummaryTimeout)
}

func provideServer(cfg *config.Config, news *usecase.NewsAggregator, readingList *usecase.ReadingList, logger ports.Logger) app.HTTPServer {
	return rest.NewServer(cfg.HTTPAddr, news, readingList, logger)
}

func provideAppConfig(cfg *config.Config) app.Config {
	schedule := ""
	if cfg.ProbeEnabled() {
		schedule = cfg.FeedProbeCron
	}
	return app.Config{
		ProbeSchedule:   schedule,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}
}
