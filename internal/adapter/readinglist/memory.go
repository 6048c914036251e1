package readinglist

import (
	"context"
	"sync"

	"news-curator/internal/domain/model"
	"news-curator/internal/domain/ports"
	"news-curator/internal/metrics"
)

// MemoryStore keeps the reading list in process memory. Entries are never
// deduplicated and are lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	articles []model.Article
}

var _ ports.ReadingListStore = (*MemoryStore)(nil)

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append adds article to the end of the list.
func (s *MemoryStore) Append(_ context.Context, article model.Article) error {
	s.mu.Lock()
	s.articles = append(s.articles, article)
	n := len(s.articles)
	s.mu.Unlock()

	metrics.SetReadingListSize(n)
	return nil
}

// All returns a snapshot of the list in insertion order.
func (s *MemoryStore) All(_ context.Context) ([]model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Article, len(s.articles))
	copy(out, s.articles)
	return out, nil
}
