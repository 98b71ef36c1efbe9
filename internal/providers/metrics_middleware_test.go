package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type middlewareTestMetrics struct {
	countingCacheMetrics
	endpoint      string
	status        int
	requestCalls  int
	durationCalls int
}

func (m *middlewareTestMetrics) IncRequestsTotal(endpoint string, status int) {
	m.endpoint = endpoint
	m.status = status
	m.requestCalls++
}

func (m *middlewareTestMetrics) ObserveRequestDuration(_ string, _ time.Duration) {
	m.durationCalls++
}

func TestMetricsMiddleware_RecordsRequest(t *testing.T) {
	metrics := &middlewareTestMetrics{}
	handler := MetricsMiddleware(metrics, nopLogger{}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/", metrics.endpoint)
	assert.Equal(t, http.StatusCreated, metrics.status)
	assert.Equal(t, 1, metrics.requestCalls)
	assert.Equal(t, 1, metrics.durationCalls)
}

func TestMetricsMiddleware_DefaultsToOK(t *testing.T) {
	metrics := &middlewareTestMetrics{}
	handler := MetricsMiddleware(metrics, nopLogger{}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, metrics.status)
	assert.Equal(t, "/health", metrics.endpoint)
}
