package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"news-curator/internal/adapter/logging"
	"news-curator/internal/domain/model"
	"news-curator/internal/domain/ports"
	"news-curator/internal/mocks"
)

var testSources = []model.FeedSource{
	{Name: "a", URL: "https://a.example/rss"},
	{Name: "b", URL: "https://b.example/rss"},
}

func discardLogger() ports.Logger {
	return logging.New(slog.New(slog.DiscardHandler))
}

func maxArticles(n int) *int {
	return &n
}

func makeArticles(n int, title string) []model.Article {
	out := make([]model.Article, n)
	for i := range out {
		out[i] = model.Article{
			Title:   fmt.Sprintf("%s %d", title, i),
			Link:    fmt.Sprintf("https://example.com/%d", i),
			Summary: fmt.Sprintf("summary %d", i),
		}
	}
	return out
}

type newsMocks struct {
	fetcher    *mocks.MockFeedFetcher
	keywords   *mocks.MockKeywordExtractor
	summarizer *mocks.MockSummarizer
}

func newTestAggregator(t *testing.T) (*NewsAggregator, newsMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := newsMocks{
		fetcher:    mocks.NewMockFeedFetcher(ctrl),
		keywords:   mocks.NewMockKeywordExtractor(ctrl),
		summarizer: mocks.NewMockSummarizer(ctrl),
	}
	return NewNewsAggregator(m.fetcher, m.keywords, m.summarizer, discardLogger(), testSources), m
}

func TestGetNewsEmptyQueryBypassesCompletion(t *testing.T) {
	agg, m := newTestAggregator(t)
	fetched := makeArticles(12, "Item")

	m.fetcher.EXPECT().FetchAll(gomock.Any(), testSources, 5).Return(fetched)
	// keywords and summarizer carry no expectations, any call fails the test.

	got := agg.GetNews(context.Background(), model.NewsRequest{Query: "", MaxArticles: maxArticles(5)})

	assert.Equal(t, fetched[:5], got)
}

func TestGetNewsDefaultsLimit(t *testing.T) {
	agg, m := newTestAggregator(t)

	m.fetcher.EXPECT().FetchAll(gomock.Any(), testSources, model.DefaultMaxArticles).Return(makeArticles(8, "Item"))

	got := agg.GetNews(context.Background(), model.NewsRequest{})

	assert.Len(t, got, model.DefaultMaxArticles)
}

func TestGetNewsFiltersSummarizesAndTruncates(t *testing.T) {
	agg, m := newTestAggregator(t)
	fetched := []model.Article{
		{Title: "Chip A", Link: "1", Summary: "a"},
		{Title: "Weather", Link: "2", Summary: "rain"},
		{Title: "Chip B", Link: "3", Summary: "b"},
		{Title: "Chip C", Link: "4", Summary: "c"},
	}
	matching := []model.Article{fetched[0], fetched[2], fetched[3]}

	m.fetcher.EXPECT().FetchAll(gomock.Any(), testSources, 2).Return(fetched)
	m.keywords.EXPECT().ExtractKeywords(gomock.Any(), "latest chips").Return([]string{"CHIP"}, nil)
	m.summarizer.EXPECT().Summarize(gomock.Any(), matching, "latest chips").Return("Chips everywhere.", nil)

	got := agg.GetNews(context.Background(), model.NewsRequest{Query: "latest chips", MaxArticles: maxArticles(2)})

	require.Len(t, got, 2)
	assert.Equal(t, "Chip A", got[0].Title)
	assert.Equal(t, "Chips everywhere.", got[0].Summary)
	assert.Equal(t, fetched[2], got[1])
	assert.Equal(t, "a", fetched[0].Summary, "fetched articles must not be mutated")
}

func TestGetNewsWithoutCredential(t *testing.T) {
	agg, m := newTestAggregator(t)
	fetched := makeArticles(10, "Item")

	m.fetcher.EXPECT().FetchAll(gomock.Any(), testSources, 5).Return(fetched)
	m.keywords.EXPECT().ExtractKeywords(gomock.Any(), "chip").Return(nil, ports.ErrCompletionDisabled)
	m.summarizer.EXPECT().Summarize(gomock.Any(), fetched, "chip").Return("", ports.ErrCompletionDisabled)

	digest := agg.Digest(context.Background(), model.NewsRequest{Query: "chip", MaxArticles: maxArticles(5)})

	assert.Equal(t, fetched[:5], digest.Articles)
	assert.Equal(t, model.SummaryDisabled, digest.SummaryStatus)
	assert.Equal(t, model.SummaryPlaceholder, digest.Summary)
	assert.Empty(t, digest.Keywords)
	assert.Equal(t, fetched[:5], digest.SplicedArticles())
}

func TestDigestCompletionFailures(t *testing.T) {
	agg, m := newTestAggregator(t)
	fetched := makeArticles(3, "Item")

	m.fetcher.EXPECT().FetchAll(gomock.Any(), testSources, 5).Return(fetched)
	m.keywords.EXPECT().ExtractKeywords(gomock.Any(), "chip").Return(nil, errors.New("status 500"))
	m.summarizer.EXPECT().Summarize(gomock.Any(), fetched, "chip").Return("", errors.New("timeout"))

	digest := agg.Digest(context.Background(), model.NewsRequest{Query: "chip"})

	assert.Equal(t, fetched, digest.Articles)
	assert.Equal(t, model.SummaryFailed, digest.SummaryStatus)
	assert.Empty(t, digest.Summary)
	assert.Equal(t, fetched, digest.SplicedArticles())
}

func TestDigestNoMatchSkipsSummary(t *testing.T) {
	agg, m := newTestAggregator(t)

	m.fetcher.EXPECT().FetchAll(gomock.Any(), testSources, 5).Return(makeArticles(4, "Weather"))
	m.keywords.EXPECT().ExtractKeywords(gomock.Any(), "chip").Return([]string{"chip"}, nil)

	digest := agg.Digest(context.Background(), model.NewsRequest{Query: "chip"})

	assert.Empty(t, digest.Articles)
	assert.NotNil(t, digest.Articles)
	assert.Equal(t, model.SummarySkipped, digest.SummaryStatus)
	assert.Equal(t, []string{"chip"}, digest.Keywords)
}

func TestDigestNilCompletionPorts(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFeedFetcher(ctrl)
	fetched := makeArticles(2, "Item")
	fetcher.EXPECT().FetchAll(gomock.Any(), testSources, 5).Return(fetched)

	agg := NewNewsAggregator(fetcher, nil, nil, discardLogger(), testSources)
	digest := agg.Digest(context.Background(), model.NewsRequest{Query: "chip"})

	assert.Equal(t, fetched, digest.Articles)
	assert.Equal(t, model.SummaryDisabled, digest.SummaryStatus)
}

func TestGetNewsZeroLimitReturnsNothing(t *testing.T) {
	agg, _ := newTestAggregator(t)
	// no expectations: a zero cap must not touch feeds or the completion API

	got := agg.GetNews(context.Background(), model.NewsRequest{Query: "", MaxArticles: maxArticles(0)})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetNewsLargeLimit(t *testing.T) {
	agg, m := newTestAggregator(t)
	fetched := makeArticles(160, "Item")

	m.fetcher.EXPECT().FetchAll(gomock.Any(), testSources, 150).Return(fetched)

	got := agg.GetNews(context.Background(), model.NewsRequest{MaxArticles: maxArticles(150)})

	assert.Equal(t, fetched[:150], got)
}
