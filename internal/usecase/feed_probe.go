package usecase

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"news-curator/internal/domain/model"
	"news-curator/internal/domain/ports"
	"news-curator/internal/metrics"
)

// ErrNoSourceUp is returned by FeedProbe.Run when every source failed.
var ErrNoSourceUp = errors.New("no feed source reachable")

// FeedProbe checks that each configured source still serves a parsable feed.
type FeedProbe struct {
	fetcher ports.FeedFetcher
	logger  ports.Logger
	sources []model.FeedSource
}

// NewFeedProbe constructs a FeedProbe.
func NewFeedProbe(fetcher ports.FeedFetcher, logger ports.Logger, sources []model.FeedSource) *FeedProbe {
	return &FeedProbe{fetcher: fetcher, logger: logger, sources: sources}
}

// Run fetches one entry from every source and publishes the reachability
// gauge. It returns ErrNoSourceUp when none of the sources answered.
func (p *FeedProbe) Run(ctx context.Context) error {
	var (
		mu sync.Mutex
		up int
	)

	var g errgroup.Group
	for _, source := range p.sources {
		g.Go(func() error {
			_, err := p.fetcher.FetchSource(ctx, source, 1)
			metrics.SetFeedSourceUp(source.Name, err == nil)
			if err != nil {
				p.logger.Warn(ctx, "feed source down", "source", source.Name, "error", err)
				return nil
			}
			mu.Lock()
			up++
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	p.logger.Info(ctx, "feed probe finished", "up", up, "total", len(p.sources))
	if len(p.sources) > 0 && up == 0 {
		return ErrNoSourceUp
	}
	return nil
}
