package providers

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/ross-rotordynamics/ross-bott/internal/structures"
)

// ReporterInterface surfaces failures to the configured error reporting
// service. A noop implementation is used when no DSN is set, so callers
// never have to check.
type ReporterInterface interface {
	CaptureError(err error)
	CaptureMessage(msg string)
	Flush()
}

type SentryReporter struct{}

func NewReportProvider(conf *structures.Config, logger Logger) (ReporterInterface, error) {
	if conf.Reporting.DSN == "" {
		logger.Infof(TypeApp, "Error reporting disabled (no DSN)")
		return &noopReporter{}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         conf.Reporting.DSN,
		ServerName:  conf.AppName,
		Environment: environment(conf.Debug),
	})
	if err != nil {
		return nil, fmt.Errorf("sentry init: %w", err)
	}
	return &SentryReporter{}, nil
}

func environment(debug bool) string {
	if debug {
		return "development"
	}
	return "production"
}

func (s *SentryReporter) CaptureError(err error) {
	sentry.CaptureException(err)
}

func (s *SentryReporter) CaptureMessage(msg string) {
	sentry.CaptureMessage(msg)
}

func (s *SentryReporter) Flush() {
	sentry.Flush(2 * time.Second)
}

type noopReporter struct{}

func (n *noopReporter) CaptureError(_ error)    {}
func (n *noopReporter) CaptureMessage(_ string) {}
func (n *noopReporter) Flush()                  {}
