package usecase

import (
	"strings"

	"golang.org/x/text/cases"

	"news-curator/internal/domain/model"
)

// FilterArticles keeps the articles whose title or summary contains at least
// one keyword, ignoring case. Input order is preserved. With no keywords the
// input slice is returned as is.
func FilterArticles(articles []model.Article, keywords []string) []model.Article {
	if len(keywords) == 0 {
		return articles
	}

	// A fold Caser carries state and must not be shared across goroutines.
	fold := cases.Fold()
	folded := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		folded = append(folded, fold.String(kw))
	}
	if len(folded) == 0 {
		return articles
	}

	kept := make([]model.Article, 0, len(articles))
	for _, a := range articles {
		title := fold.String(a.Title)
		summary := fold.String(a.Summary)
		for _, kw := range folded {
			if strings.Contains(title, kw) || strings.Contains(summary, kw) {
				kept = append(kept, a)
				break
			}
		}
	}
	return kept
}
