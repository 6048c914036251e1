package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordFeedFetch(t *testing.T) {
	before := testutil.ToFloat64(FeedFetchTotal.WithLabelValues("metrics-test", OutcomeOK))
	RecordFeedFetch("metrics-test", OutcomeOK)
	RecordFeedFetch("metrics-test", OutcomeOK)
	assert.Equal(t, before+2, testutil.ToFloat64(FeedFetchTotal.WithLabelValues("metrics-test", OutcomeOK)))
}

func TestSetFeedSourceUp(t *testing.T) {
	SetFeedSourceUp("metrics-test", true)
	assert.Equal(t, 1.0, testutil.ToFloat64(FeedSourceUp.WithLabelValues("metrics-test")))
	SetFeedSourceUp("metrics-test", false)
	assert.Equal(t, 0.0, testutil.ToFloat64(FeedSourceUp.WithLabelValues("metrics-test")))
}

func TestRecordCompletion(t *testing.T) {
	RecordCompletion("metrics-disabled", OutcomeDisabled, 0)
	assert.Equal(t, 1.0, testutil.ToFloat64(CompletionRequestsTotal.WithLabelValues("metrics-disabled", OutcomeDisabled)))

	RecordCompletion("metrics-ok", OutcomeOK, 0.25)
	assert.Equal(t, 1.0, testutil.ToFloat64(CompletionRequestsTotal.WithLabelValues("metrics-ok", OutcomeOK)))
}

func TestRecordHTTPRequest(t *testing.T) {
	RecordHTTPRequest("GET", "/metrics-test", 200)
	assert.Equal(t, 1.0, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/metrics-test", "200")))
}
