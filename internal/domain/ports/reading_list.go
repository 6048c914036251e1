package ports

import (
	"context"

	"news-curator/internal/domain/model"
)

//go:generate mockgen -source=reading_list.go -destination=../../mocks/mock_reading_list.go -package=mocks

// ReadingListStore keeps articles saved by callers for the process lifetime.
type ReadingListStore interface {
	Append(ctx context.Context, article model.Article) error
	All(ctx context.Context) ([]model.Article, error)
}
