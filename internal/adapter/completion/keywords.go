package completion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"news-curator/internal/domain/ports"
)

const (
	keywordSystemPrompt = "You extract keywords from user queries for news search."
	keywordUserPrompt   = "Extract the main keywords (1-5 words) from this search query for news filtering. " +
		"Return them as a comma-separated list, no explanations.\nQuery: %s"
	keywordMaxTokens = 30
)

// KeywordExtractor asks the completion API for news filter keywords.
type KeywordExtractor struct {
	client  *Client
	timeout time.Duration
}

var _ ports.KeywordExtractor = (*KeywordExtractor)(nil)

// NewKeywordExtractor constructs a KeywordExtractor.
func NewKeywordExtractor(client *Client, timeout time.Duration) *KeywordExtractor {
	return &KeywordExtractor{client: client, timeout: timeout}
}

// ExtractKeywords returns the keywords for query in the order the model gave them.
func (k *KeywordExtractor) ExtractKeywords(ctx context.Context, query string) ([]string, error) {
	text, err := k.client.Complete(ctx, PurposeKeywords, []Message{
		{Role: "system", Content: keywordSystemPrompt},
		{Role: "user", Content: fmt.Sprintf(keywordUserPrompt, query)},
	}, keywordMaxTokens, k.timeout)
	if err != nil {
		return nil, err
	}
	return splitKeywords(text), nil
}

// splitKeywords splits a comma-separated list, trimming and dropping empty pieces.
func splitKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		if kw := strings.TrimSpace(part); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
