package model

// DefaultMaxArticles applies when a request leaves MaxArticles unset.
const DefaultMaxArticles = 5

// SummaryPlaceholder stands in for the aggregate summary when no completion
// credential is configured.
const SummaryPlaceholder = "[completion API key not set]"

// NewsRequest is a caller query for news.
type NewsRequest struct {
	Query string
	// Timeframe is accepted for compatibility and never consulted.
	Timeframe string
	// MaxArticles caps both the entries taken per feed and the final result.
	// Nil means DefaultMaxArticles; zero asks for no articles.
	MaxArticles *int
}

// Limit returns the effective article cap. Negative values count as zero.
func (r NewsRequest) Limit() int {
	if r.MaxArticles == nil {
		return DefaultMaxArticles
	}
	return max(*r.MaxArticles, 0)
}

// SummaryStatus tells how the aggregate summary of a digest came about.
type SummaryStatus string

const (
	SummaryOK       SummaryStatus = "ok"
	SummarySkipped  SummaryStatus = "skipped"
	SummaryDisabled SummaryStatus = "disabled"
	SummaryFailed   SummaryStatus = "failed"
)

// NewsDigest is the full outcome of one news request.
type NewsDigest struct {
	Articles      []Article
	Keywords      []string
	Summary       string
	SummaryStatus SummaryStatus
}

// SplicedArticles returns a copy of Articles in which the first article's
// summary is replaced by the aggregate summary. Only a successful, non-empty
// summary is spliced.
func (d NewsDigest) SplicedArticles() []Article {
	out := make([]Article, len(d.Articles))
	copy(out, d.Articles)
	if d.SummaryStatus == SummaryOK && d.Summary != "" && len(out) > 0 {
		out[0].Summary = d.Summary
	}
	return out
}
