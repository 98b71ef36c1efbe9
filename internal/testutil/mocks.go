package testutil

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/ross-rotordynamics/ross-bott/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at the given level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu            sync.Mutex
	Requests      int
	WebhookEvents int
	Rejected      int
	HandlerErrors int
	MarkedStale   int
	ScanErrors    int
	MirrorErrors  int
	CacheHits     int
	CacheMisses   int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 { m.mu.Lock(); m.Requests++; m.mu.Unlock() }
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncWebhookEvents(_, _ string) {
	m.mu.Lock()
	m.WebhookEvents++
	m.mu.Unlock()
}
func (m *MockMetrics) IncWebhookRejected() { m.mu.Lock(); m.Rejected++; m.mu.Unlock() }
func (m *MockMetrics) IncHandlerErrors(_, _ string) {
	m.mu.Lock()
	m.HandlerErrors++
	m.mu.Unlock()
}
func (m *MockMetrics) IncIssuesMarkedStale()                            { m.mu.Lock(); m.MarkedStale++; m.mu.Unlock() }
func (m *MockMetrics) IncScanErrors()                                   { m.mu.Lock(); m.ScanErrors++; m.mu.Unlock() }
func (m *MockMetrics) ObserveScanDuration(_ time.Duration)              {}
func (m *MockMetrics) ObserveRefreshDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) SetSeriesRecords(_ string, _ int)                 {}
func (m *MockMetrics) IncMirrorErrors(_ string)                         { m.mu.Lock(); m.MirrorErrors++; m.mu.Unlock() }
func (m *MockMetrics) IncCacheHits()                                    { m.mu.Lock(); m.CacheHits++; m.mu.Unlock() }
func (m *MockMetrics) IncCacheMisses()                                  { m.mu.Lock(); m.CacheMisses++; m.mu.Unlock() }

// MockReporter implements providers.ReporterInterface and records errors.
type MockReporter struct {
	mu     sync.Mutex
	Errors []error
}

func (m *MockReporter) CaptureError(err error) {
	m.mu.Lock()
	m.Errors = append(m.Errors, err)
	m.mu.Unlock()
}
func (m *MockReporter) CaptureMessage(_ string) {}
func (m *MockReporter) Flush()                  {}

// MockCache implements providers.CacheProviderInterface with a plain map.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.Data[key]
	return v, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	m.Data[key] = value
	m.mu.Unlock()
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	delete(m.Data, key)
	m.mu.Unlock()
}

// MockMirror implements storage.Mirror with an in-memory object map.
type MockMirror struct {
	mu       sync.Mutex
	Objects  map[string][]byte
	Uploads  int
	FetchErr error
	PutErr   error
}

func NewMockMirror() *MockMirror {
	return &MockMirror{Objects: make(map[string][]byte)}
}

func (m *MockMirror) Upload(_ context.Context, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PutErr != nil {
		return m.PutErr
	}
	m.Objects[name] = append([]byte(nil), data...)
	m.Uploads++
	return nil
}

func (m *MockMirror) Fetch(_ context.Context, name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	data, ok := m.Objects[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}
