package completion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"news-curator/internal/adapter/httpclient"
	"news-curator/internal/domain/ports"
	"news-curator/internal/metrics"
)

const (
	DefaultURL   = "https://api.openai.com/v1/chat/completions"
	DefaultModel = "gpt-3.5-turbo"
)

// Call purposes, used as metric and log labels.
const (
	PurposeKeywords = "keywords"
	PurposeSummary  = "summary"
)

// ErrEmptyResponse is returned when the API answers without any choice.
var ErrEmptyResponse = errors.New("completion response has no choices")

// Config holds the credential and endpoint of the completion API.
type Config struct {
	APIKey string
	URL    string
	Model  string
}

// Message is one chat message of a completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// StatusError reports a non-success HTTP status from the completion API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("completion API returned status %d: %s", e.Code, e.Body)
}

// Client calls an OpenAI-compatible chat completions endpoint.
type Client struct {
	http   httpclient.Client
	cfg    Config
	logger ports.Logger
}

// NewClient constructs a Client. Empty URL and model fall back to the defaults.
func NewClient(http httpclient.Client, cfg Config, logger ports.Logger) *Client {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if http == nil {
		http = httpclient.NewRestyClient(0)
	}
	return &Client{http: http, cfg: cfg, logger: logger}
}

// Enabled reports whether a credential is configured.
func (c *Client) Enabled() bool {
	return c.cfg.APIKey != ""
}

// Complete sends one chat completion and returns the generated text. Without
// a credential it returns ports.ErrCompletionDisabled and makes no call.
func (c *Client) Complete(ctx context.Context, purpose string, messages []Message, maxTokens int, timeout time.Duration) (string, error) {
	if !c.Enabled() {
		metrics.RecordCompletion(purpose, metrics.OutcomeDisabled, 0)
		return "", ports.ErrCompletionDisabled
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := c.do(ctx, purpose, messages, maxTokens)
	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeError
	}
	metrics.RecordCompletion(purpose, outcome, time.Since(start).Seconds())
	return text, err
}

func (c *Client) do(ctx context.Context, purpose string, messages []Message, maxTokens int) (string, error) {
	if c.logger != nil {
		c.logger.Debug(ctx, "calling completion API",
			"purpose", purpose,
			"model", c.cfg.Model,
			"max_tokens", maxTokens)
	}

	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	resp, err := c.http.PostJSON(ctx, c.cfg.URL, headers, chatRequest{
		Model:     c.cfg.Model,
		Messages:  messages,
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("call completion API: %w", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", &StatusError{Code: resp.StatusCode(), Body: snippet(resp.Body(), 512)}
	}

	var payload chatResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(payload.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return payload.Choices[0].Message.Content, nil
}

func snippet(body []byte, max int) string {
	s := strings.TrimSpace(string(body))
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
