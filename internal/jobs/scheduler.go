package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/roylee0704/gron"
	"github.com/roylee0704/gron/xtime"

	"github.com/ross-rotordynamics/ross-bott/internal/dashboard"
	"github.com/ross-rotordynamics/ross-bott/internal/jobs/interfaces"
	"github.com/ross-rotordynamics/ross-bott/internal/providers"
	"github.com/ross-rotordynamics/ross-bott/internal/services"
	"github.com/ross-rotordynamics/ross-bott/internal/structures"
)

// DashboardCacheKey is where the rendered page bytes live in the response cache.
const DashboardCacheKey = "dashboard"

// Scheduler owns the two daily timers: the stale issue scan and the
// statistics refresh + dashboard re-render. Registrations are explicit
// (time-of-day, task) pairs on an owned gron instance; missed ticks are not
// backfilled.
type Scheduler struct {
	config   *structures.Config
	logger   providers.Logger
	scanner  services.ScannerServiceInterface
	stats    services.StatisticsServiceInterface
	renderer dashboard.RendererInterface
	cache    providers.CacheProviderInterface
	reporter providers.ReporterInterface
	cron     *gron.Cron
	opsMu    sync.Mutex
}

func NewScheduler(config *structures.Config, logger providers.Logger, scanner services.ScannerServiceInterface, stats services.StatisticsServiceInterface, renderer dashboard.RendererInterface, cache providers.CacheProviderInterface, reporter providers.ReporterInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:   config,
		logger:   logger,
		scanner:  scanner,
		stats:    stats,
		renderer: renderer,
		cache:    cache,
		reporter: reporter,
	}
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(1*xtime.Day).At(s.config.Schedule.ScanAt), func() {
		s.runScan()
	})
	s.cron.AddFunc(gron.Every(1*xtime.Day).At(s.config.Schedule.StatsAt), func() {
		s.runRefresh()
	})

	s.cron.Start()
	s.logger.Infof(providers.TypeApp, "Scheduled stale scan at %s and stats refresh at %s (daily)",
		s.config.Schedule.ScanAt, s.config.Schedule.StatsAt)
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Bootstrap runs one refresh cycle at startup so the dashboard exists before
// the first scheduled tick.
func (s *Scheduler) Bootstrap() error {
	return s.runRefresh()
}

func (s *Scheduler) runScan() {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	if err := s.scanner.ScanAndMark(context.Background(), time.Now().UTC()); err != nil {
		// Already logged and reported by the scanner; the next tick retries.
		return
	}
}

// runRefresh refreshes all three series and re-renders the page. A failed
// metric aborts the render so viewers keep the last good page; the remaining
// metrics are still refreshed and persisted.
func (s *Scheduler) runRefresh() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	ctx := context.Background()
	today := time.Now().UTC()

	var firstErr error
	views, err := s.stats.Refresh(ctx, services.MetricViews, today)
	if err != nil {
		firstErr = err
	}
	clones, err := s.stats.Refresh(ctx, services.MetricClones, today)
	if err != nil && firstErr == nil {
		firstErr = err
	}
	stars, err := s.stats.RefreshStars(ctx)
	if err != nil && firstErr == nil {
		firstErr = err
	}
	if firstErr != nil {
		return firstErr
	}

	data, err := s.renderer.RenderPage(views, clones, stars)
	if err != nil {
		s.logger.Errorf(providers.TypeStats, "Rendering dashboard failed: %s", err)
		s.reporter.CaptureError(err)
		return err
	}
	if err := s.renderer.WritePage(data); err != nil {
		s.logger.Errorf(providers.TypeStats, "Writing dashboard failed: %s", err)
		s.reporter.CaptureError(err)
		return err
	}
	s.cache.Set(DashboardCacheKey, data)
	return nil
}
