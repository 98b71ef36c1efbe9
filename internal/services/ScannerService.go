package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/atomic"

	"github.com/ross-rotordynamics/ross-bott/internal/models"
	"github.com/ross-rotordynamics/ross-bott/internal/providers"
	"github.com/ross-rotordynamics/ross-bott/internal/structures"
)

// IssueSource is the read-plus-append view over the remote issue tracker.
type IssueSource interface {
	ListOpenIssues(ctx context.Context) ([]*models.Issue, error)
	CreateComment(ctx context.Context, number int, body string) error
	AddLabel(ctx context.Context, number int, label string) error
}

type ScannerServiceInterface interface {
	ScanAndMark(ctx context.Context, now time.Time) error
	LastScan() time.Time
}

type ScannerService struct {
	config   *structures.Config
	logger   providers.Logger
	source   IssueSource
	metrics  providers.MetricsProviderInterface
	reporter providers.ReporterInterface
	lastScan atomic.Time
}

func NewScannerService(config *structures.Config, logger providers.Logger, source IssueSource, metrics providers.MetricsProviderInterface, reporter providers.ReporterInterface) ScannerServiceInterface {
	return &ScannerService{
		config:   config,
		logger:   logger,
		source:   source,
		metrics:  metrics,
		reporter: reporter,
	}
}

func staleMessage(days int) string {
	return fmt.Sprintf("Hi there!\n"+
		"I have marked this issue as stale because it has not had activity for %d days.\n"+
		"Consider the following options:\n"+
		"- If the issue refers to a large task, break it in smaller issues that can be solved in\n"+
		"less than %d days;\n"+
		"- Label the issue as `wontfix` or `wontfix for now` and close it.", days, days)
}

// ScanAndMark fetches all open issues and marks the stale ones with an
// explanatory comment and the stale label. Issues already carrying the label
// are skipped, so a stale issue is marked exactly once. A failure on one
// issue is logged and the batch continues; there is no rollback, so a comment
// without a label can happen and is left for the tracker to show.
func (s *ScannerService) ScanAndMark(ctx context.Context, now time.Time) error {
	start := time.Now()
	s.logger.Infof(providers.TypeScan, "Scanning %s/%s for stale issues", s.config.Repo.Owner, s.config.Repo.Name)

	issues, err := s.source.ListOpenIssues(ctx)
	if err != nil {
		s.logger.Errorf(providers.TypeScan, "Listing open issues failed: %s", err)
		s.reporter.CaptureError(err)
		return err
	}

	threshold := s.config.StaleThreshold()
	message := staleMessage(s.config.Repo.StaleAfterDays)
	label := s.config.Repo.StaleLabel

	marked := 0
	for _, issue := range issues {
		if !IsStale(issue, threshold, now) {
			continue
		}
		if issue.HasLabel(label) {
			s.logger.Debugf(providers.TypeScan, "Issue #%d already labeled %q, skipping", issue.Number, label)
			continue
		}

		if err := s.source.CreateComment(ctx, issue.Number, message); err != nil {
			s.logger.Errorf(providers.TypeScan, "Issue #%d: %s", issue.Number, err)
			s.reporter.CaptureError(err)
			s.metrics.IncScanErrors()
			continue
		}
		if err := s.source.AddLabel(ctx, issue.Number, label); err != nil {
			// The comment went through; the issue stays commented-but-unlabeled
			// until the next tick finds it stale again.
			s.logger.Errorf(providers.TypeScan, "Issue #%d: %s", issue.Number, err)
			s.reporter.CaptureError(err)
			s.metrics.IncScanErrors()
			continue
		}

		s.logger.Infof(providers.TypeScan, "Marked issue #%d (%s) as stale", issue.Number, issue.Title)
		s.metrics.IncIssuesMarkedStale()
		marked++
	}

	s.lastScan.Store(now)
	s.metrics.ObserveScanDuration(time.Since(start))
	s.logger.Infof(providers.TypeScan, "Scan finished: %d open, %d newly marked", len(issues), marked)
	return nil
}

func (s *ScannerService) LastScan() time.Time {
	return s.lastScan.Load()
}
