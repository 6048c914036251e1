package rest

import "news-curator/internal/domain/model"

// NewsRequestPayload is the body of POST /news and POST /news/digest.
type NewsRequestPayload struct {
	Query       *string `json:"query" validate:"required"`
	Timeframe   *string `json:"timeframe"`
	MaxArticles *int    `json:"max_articles" validate:"omitempty,min=0"`
}

func (p NewsRequestPayload) toModel() model.NewsRequest {
	req := model.NewsRequest{MaxArticles: p.MaxArticles}
	if p.Query != nil {
		req.Query = *p.Query
	}
	if p.Timeframe != nil {
		req.Timeframe = *p.Timeframe
	}
	return req
}

// ArticlePayload is the body of POST /reading-list. Title and link must be
// present but may be empty.
type ArticlePayload struct {
	Title   *string `json:"title" validate:"required"`
	Link    *string `json:"link" validate:"required"`
	Summary *string `json:"summary"`
}

func (p ArticlePayload) toModel() model.Article {
	var a model.Article
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Link != nil {
		a.Link = *p.Link
	}
	if p.Summary != nil {
		a.Summary = *p.Summary
	}
	return a
}

// ArticleResponse is one article as returned to callers. Summary is always
// present, possibly empty.
type ArticleResponse struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Summary string `json:"summary"`
}

func toArticleResponses(articles []model.Article) []ArticleResponse {
	out := make([]ArticleResponse, len(articles))
	for i, a := range articles {
		out[i] = ArticleResponse{Title: a.Title, Link: a.Link, Summary: a.Summary}
	}
	return out
}

// DigestResponse is the body returned by POST /news/digest.
type DigestResponse struct {
	Articles      []ArticleResponse `json:"articles"`
	Keywords      []string          `json:"keywords"`
	Summary       string            `json:"summary"`
	SummaryStatus string            `json:"summary_status"`
}

// StatusResponse is a bare acknowledgement.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse describes a rejected request.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
