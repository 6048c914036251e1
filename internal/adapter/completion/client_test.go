package completion

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-curator/internal/adapter/httpclient"
	"news-curator/internal/adapter/logging"
	"news-curator/internal/domain/ports"
)

type recordedRequest struct {
	Auth string
	Body chatRequest
}

func completionServer(t *testing.T, status int, response string) (*httptest.Server, *atomic.Int32, chan recordedRequest) {
	t.Helper()
	var hits atomic.Int32
	requests := make(chan recordedRequest, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		var body chatRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		requests <- recordedRequest{Auth: r.Header.Get("Authorization"), Body: body}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits, requests
}

func newTestClient(url, apiKey string) *Client {
	return NewClient(httpclient.NewRestyClient(0), Config{APIKey: apiKey, URL: url, Model: "test-model"},
		logging.New(slog.New(slog.DiscardHandler)))
}

func TestClientComplete(t *testing.T) {
	srv, _, requests := completionServer(t, http.StatusOK, `{"choices":[{"message":{"role":"assistant","content":"hello"}}]}`)

	text, err := newTestClient(srv.URL, "sk-test").Complete(context.Background(), PurposeSummary,
		[]Message{{Role: "user", Content: "hi"}}, 42, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	req := <-requests
	assert.Equal(t, "Bearer sk-test", req.Auth)
	assert.Equal(t, "test-model", req.Body.Model)
	assert.Equal(t, 42, req.Body.MaxTokens)
	assert.Equal(t, []Message{{Role: "user", Content: "hi"}}, req.Body.Messages)
}

func TestClientCompleteDisabledMakesNoCall(t *testing.T) {
	srv, hits, _ := completionServer(t, http.StatusOK, `{}`)

	client := newTestClient(srv.URL, "")
	assert.False(t, client.Enabled())

	_, err := client.Complete(context.Background(), PurposeKeywords, nil, 10, time.Second)
	assert.ErrorIs(t, err, ports.ErrCompletionDisabled)
	assert.Equal(t, int32(0), hits.Load())
}

func TestClientCompleteFailures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		response string
		check    func(t *testing.T, err error)
	}{
		{
			name:     "non-success status",
			status:   http.StatusTooManyRequests,
			response: `{"error":{"message":"slow down"}}`,
			check: func(t *testing.T, err error) {
				var statusErr *StatusError
				require.True(t, errors.As(err, &statusErr))
				assert.Equal(t, http.StatusTooManyRequests, statusErr.Code)
				assert.Contains(t, statusErr.Body, "slow down")
			},
		},
		{
			name:     "malformed body",
			status:   http.StatusOK,
			response: `{"choices":`,
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "decode completion response")
			},
		},
		{
			name:     "no choices",
			status:   http.StatusOK,
			response: `{"choices":[]}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrEmptyResponse)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _, _ := completionServer(t, tt.status, tt.response)
			_, err := newTestClient(srv.URL, "sk-test").Complete(context.Background(), PurposeSummary, nil, 10, time.Second)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestClientCompleteTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := newTestClient(srv.URL, "sk-test").Complete(context.Background(), PurposeSummary, nil, 10, 50*time.Millisecond)
	assert.Error(t, err)
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(nil, Config{APIKey: "k"}, nil)
	assert.Equal(t, DefaultURL, client.cfg.URL)
	assert.Equal(t, DefaultModel, client.cfg.Model)
	assert.True(t, client.Enabled())
}
