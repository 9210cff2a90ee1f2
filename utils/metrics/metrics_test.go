package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("test")

	m.ObserveTransition("accept", OutcomeApplied)
	m.ObserveTransition("accept", OutcomeConflict)
	m.ObserveTransition("accept", OutcomeConflict)
	m.ObservePublish(nil)
	m.ObservePublish(errors.New("broker down"))
	m.ObserveHTTP(http.MethodGet, "/api/requests", http.StatusOK, 10*time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `test_request_transitions_total{event="accept",outcome="applied"} 1`)
	assert.Contains(t, body, `test_request_transitions_total{event="accept",outcome="conflict"} 2`)
	assert.Contains(t, body, `test_events_published_total{result="failed"} 1`)
	assert.Contains(t, body, `test_http_requests_total{method="GET",route="/api/requests",status="200"} 1`)
}

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMetrics_Handler(t *testing.T) {
	m := New("test")
	m.ObserveTransition("complete", OutcomeApplied)

	assert.True(t, strings.Contains(scrape(t, m), `test_request_transitions_total{event="complete",outcome="applied"} 1`))
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveTransition("accept", OutcomeApplied)
		m.ObserveHTTP(http.MethodGet, "/", http.StatusOK, time.Second)
		m.ObservePublish(nil)
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
