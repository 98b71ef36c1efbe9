package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ross-rotordynamics/ross-bott/internal/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncWebhookEvents(event, action string)
	IncWebhookRejected()
	IncHandlerErrors(event, action string)
	IncIssuesMarkedStale()
	IncScanErrors()
	ObserveScanDuration(duration time.Duration)
	ObserveRefreshDuration(metric string, duration time.Duration)
	SetSeriesRecords(metric string, count int)
	IncMirrorErrors(op string)
	IncCacheHits()
	IncCacheMisses()
}

type MetricsProvider struct {
	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	webhookEvents     *prometheus.CounterVec
	webhookRejected   prometheus.Counter
	handlerErrors     *prometheus.CounterVec
	issuesMarkedStale prometheus.Counter
	scanErrors        prometheus.Counter
	scanDuration      prometheus.Histogram
	refreshDuration   *prometheus.HistogramVec
	seriesRecords     *prometheus.GaugeVec
	mirrorErrors      *prometheus.CounterVec
	cacheHits         prometheus.Counter
	cacheMisses       prometheus.Counter
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncWebhookEvents(event, action string) {
	m.webhookEvents.WithLabelValues(event, action).Inc()
}

func (m *MetricsProvider) IncWebhookRejected() {
	m.webhookRejected.Inc()
}

func (m *MetricsProvider) IncHandlerErrors(event, action string) {
	m.handlerErrors.WithLabelValues(event, action).Inc()
}

func (m *MetricsProvider) IncIssuesMarkedStale() {
	m.issuesMarkedStale.Inc()
}

func (m *MetricsProvider) IncScanErrors() {
	m.scanErrors.Inc()
}

func (m *MetricsProvider) ObserveScanDuration(duration time.Duration) {
	m.scanDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) ObserveRefreshDuration(metric string, duration time.Duration) {
	m.refreshDuration.WithLabelValues(metric).Observe(duration.Seconds())
}

func (m *MetricsProvider) SetSeriesRecords(metric string, count int) {
	m.seriesRecords.WithLabelValues(metric).Set(float64(count))
}

func (m *MetricsProvider) IncMirrorErrors(op string) {
	m.mirrorErrors.WithLabelValues(op).Inc()
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bott_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bott_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		webhookEvents: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bott_webhook_events_total",
			Help: "Verified webhook events received, by type and action",
		}, []string{"event", "action"}),

		webhookRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bott_webhook_rejected_total",
			Help: "Webhook deliveries rejected for a bad or missing signature",
		}),

		handlerErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bott_webhook_handler_errors_total",
			Help: "Errors returned by webhook event handlers",
		}, []string{"event", "action"}),

		issuesMarkedStale: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bott_issues_marked_stale_total",
			Help: "Issues that received a stale comment and label",
		}),

		scanErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bott_scan_errors_total",
			Help: "Per-issue failures during stale scans",
		}),

		scanDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bott_scan_duration_seconds",
			Help:    "Duration of stale issue scans in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		refreshDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bott_refresh_duration_seconds",
			Help:    "Duration of statistics refreshes in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"metric"}),

		seriesRecords: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bott_series_records",
			Help: "Records in the persisted series per metric",
		}, []string{"metric"}),

		mirrorErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bott_mirror_errors_total",
			Help: "Failed object storage operations by kind",
		}, []string{"op"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bott_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bott_cache_misses_total",
			Help: "Total number of cache misses",
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncWebhookEvents(_, _ string)                     {}
func (n *noopMetrics) IncWebhookRejected()                              {}
func (n *noopMetrics) IncHandlerErrors(_, _ string)                     {}
func (n *noopMetrics) IncIssuesMarkedStale()                            {}
func (n *noopMetrics) IncScanErrors()                                   {}
func (n *noopMetrics) ObserveScanDuration(_ time.Duration)              {}
func (n *noopMetrics) ObserveRefreshDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) SetSeriesRecords(_ string, _ int)                 {}
func (n *noopMetrics) IncMirrorErrors(_ string)                         {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
