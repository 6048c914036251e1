package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"news-curator/internal/domain/model"
	"news-curator/internal/metrics"
	"news-curator/internal/mocks"
)

func TestFeedProbeRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFeedFetcher(ctrl)
	sources := []model.FeedSource{
		{Name: "probe-up", URL: "https://up.example/rss"},
		{Name: "probe-down", URL: "https://down.example/rss"},
	}

	fetcher.EXPECT().FetchSource(gomock.Any(), sources[0], 1).Return([]model.Article{{Title: "x"}}, nil)
	fetcher.EXPECT().FetchSource(gomock.Any(), sources[1], 1).Return(nil, errors.New("status 503"))

	err := NewFeedProbe(fetcher, discardLogger(), sources).Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.FeedSourceUp.WithLabelValues("probe-up")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.FeedSourceUp.WithLabelValues("probe-down")))
}

func TestFeedProbeAllDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFeedFetcher(ctrl)
	sources := []model.FeedSource{{Name: "probe-a"}, {Name: "probe-b"}}

	fetcher.EXPECT().FetchSource(gomock.Any(), gomock.Any(), 1).Return(nil, errors.New("down")).Times(2)

	err := NewFeedProbe(fetcher, discardLogger(), sources).Run(context.Background())

	assert.ErrorIs(t, err, ErrNoSourceUp)
}

func TestFeedProbeNoSources(t *testing.T) {
	ctrl := gomock.NewController(t)

	err := NewFeedProbe(mocks.NewMockFeedFetcher(ctrl), discardLogger(), nil).Run(context.Background())

	assert.NoError(t, err)
}
