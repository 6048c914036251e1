package completion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/net/html"

	"news-curator/internal/domain/model"
	"news-curator/internal/domain/ports"
)

const (
	summarySystemPrompt = "You are a helpful assistant that summarizes news articles."
	summaryMaxTokens    = 200
)

// Summarizer asks the completion API for one summary of several articles.
type Summarizer struct {
	client  *Client
	timeout time.Duration
}

var _ ports.Summarizer = (*Summarizer)(nil)

// NewSummarizer constructs a Summarizer.
func NewSummarizer(client *Client, timeout time.Duration) *Summarizer {
	return &Summarizer{client: client, timeout: timeout}
}

// Summarize returns a combined summary of articles about query.
func (s *Summarizer) Summarize(ctx context.Context, articles []model.Article, query string) (string, error) {
	return s.client.Complete(ctx, PurposeSummary, []Message{
		{Role: "system", Content: summarySystemPrompt},
		{Role: "user", Content: buildSummaryPrompt(articles, query)},
	}, summaryMaxTokens, s.timeout)
}

func buildSummaryPrompt(articles []model.Article, query string) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Summarize these articles about '%s':\n", query))
	for i, a := range articles {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(a.Title)
		builder.WriteString(": ")
		builder.WriteString(plainText(a.Summary))
	}
	return builder.String()
}

// plainText renders an HTML fragment as whitespace-collapsed text.
func plainText(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return fragment
	}

	var builder strings.Builder
	z := html.NewTokenizer(strings.NewReader(fragment))
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(builder.String()), " ")
		case html.StartTagToken:
			if name, _ := z.TagName(); isRawTextTag(name) {
				skip++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); isRawTextTag(name) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				builder.Write(z.Text())
				builder.WriteByte(' ')
			}
		}
	}
}

func isRawTextTag(name []byte) bool {
	switch string(name) {
	case "script", "style":
		return true
	}
	return false
}
