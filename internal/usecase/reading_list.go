package usecase

import (
	"context"
	"fmt"

	"news-curator/internal/domain/model"
	"news-curator/internal/domain/ports"
)

// ReadingList saves and lists articles kept by callers.
type ReadingList struct {
	store  ports.ReadingListStore
	logger ports.Logger
}

// NewReadingList constructs a ReadingList use case.
func NewReadingList(store ports.ReadingListStore, logger ports.Logger) *ReadingList {
	return &ReadingList{store: store, logger: logger}
}

// Save appends article. Duplicates are kept.
func (r *ReadingList) Save(ctx context.Context, article model.Article) error {
	if err := r.store.Append(ctx, article); err != nil {
		r.logger.Error(ctx, "failed to save article", "link", article.Link, "error", err)
		return fmt.Errorf("save article: %w", err)
	}
	r.logger.Info(ctx, "article saved", "link", article.Link)
	return nil
}

// List returns every saved article in insertion order.
func (r *ReadingList) List(ctx context.Context) ([]model.Article, error) {
	articles, err := r.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reading list: %w", err)
	}
	if articles == nil {
		articles = []model.Article{}
	}
	return articles, nil
}
