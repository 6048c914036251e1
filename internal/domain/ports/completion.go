package ports

import (
	"context"
	"errors"

	"news-curator/internal/domain/model"
)

//go:generate mockgen -source=completion.go -destination=../../mocks/mock_completion.go -package=mocks

// ErrCompletionDisabled is returned by completion-backed ports when no API
// credential is configured. No network call is made in that case.
var ErrCompletionDisabled = errors.New("completion API key not set")

// KeywordExtractor derives news filter keywords from a free-text query.
type KeywordExtractor interface {
	ExtractKeywords(ctx context.Context, query string) ([]string, error)
}

// Summarizer writes one combined summary for a set of articles.
type Summarizer interface {
	Summarize(ctx context.Context, articles []model.Article, query string) (string, error)
}
