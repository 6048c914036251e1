package httpclient

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "news-curator/1.0 (+https://github.com)"

// Client is the outbound HTTP surface shared by the feed and completion adapters.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (*resty.Response, error)
	PostJSON(ctx context.Context, url string, headers map[string]string, body any) (*resty.Response, error)
}

// RestyClient implements Client on top of resty.
type RestyClient struct {
	client *resty.Client
}

var _ Client = (*RestyClient)(nil)

// NewRestyClient builds a client whose requests never outlive timeout.
// A non-positive timeout leaves deadlines to the request context.
func NewRestyClient(timeout time.Duration) *RestyClient {
	c := resty.New().
		SetHeader("User-Agent", userAgent).
		SetRetryCount(0)
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &RestyClient{client: c}
}

// Get issues a GET request.
func (c *RestyClient) Get(ctx context.Context, url string, headers map[string]string) (*resty.Response, error) {
	return c.client.R().
		SetContext(ctx).
		SetHeaders(headers).
		Get(url)
}

// PostJSON issues a POST request with body encoded as JSON.
func (c *RestyClient) PostJSON(ctx context.Context, url string, headers map[string]string, body any) (*resty.Response, error) {
	return c.client.R().
		SetContext(ctx).
		SetHeaders(headers).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(url)
}
