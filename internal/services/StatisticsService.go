package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/atomic"

	"github.com/ross-rotordynamics/ross-bott/internal/models"
	"github.com/ross-rotordynamics/ross-bott/internal/providers"
	"github.com/ross-rotordynamics/ross-bott/internal/storage"
	"github.com/ross-rotordynamics/ross-bott/internal/structures"
)

const (
	MetricViews  = "views"
	MetricClones = "clones"
	MetricStars  = "stars"
)

// TrafficSource fetches fresh traffic and star data from the tracker's
// parent API.
type TrafficSource interface {
	TrafficDaily(ctx context.Context, metric string) ([]models.StatRecord, error)
	ListStargazers(ctx context.Context) ([]models.StarRecord, error)
}

type StatisticsServiceInterface interface {
	Refresh(ctx context.Context, metric string, today time.Time) ([]models.StatRecord, error)
	RefreshStars(ctx context.Context) ([]models.StarRecord, error)
	LastRefresh() time.Time
}

type StatisticsService struct {
	logger      providers.Logger
	source      TrafficSource
	metrics     providers.MetricsProviderInterface
	reporter    providers.ReporterInterface
	statStores  map[string]*storage.SeriesStore[models.StatRecord]
	starStore   *storage.SeriesStore[models.StarRecord]
	lastRefresh atomic.Time
}

func NewStatisticsService(conf *structures.Config, logger providers.Logger, source TrafficSource, mirror storage.Mirror, metrics providers.MetricsProviderInterface, reporter providers.ReporterInterface) StatisticsServiceInterface {
	dir := conf.Storage.DataDir
	return &StatisticsService{
		logger:   logger,
		source:   source,
		metrics:  metrics,
		reporter: reporter,
		statStores: map[string]*storage.SeriesStore[models.StatRecord]{
			MetricViews:  storage.NewSeriesStore(dir, "views.csv", storage.StatCodec{}, mirror, logger, metrics),
			MetricClones: storage.NewSeriesStore(dir, "clones.csv", storage.StatCodec{}, mirror, logger, metrics),
		},
		starStore: storage.NewSeriesStore(dir, "stars.csv", storage.StarCodec{}, mirror, logger, metrics),
	}
}

// Refresh merges freshly fetched traffic for a metric into the persisted
// series and persists the result. The returned series has exactly one record
// per calendar day from the earliest known date through today, ascending.
func (s *StatisticsService) Refresh(ctx context.Context, metric string, today time.Time) ([]models.StatRecord, error) {
	start := time.Now()
	store, ok := s.statStores[metric]
	if !ok {
		return nil, fmt.Errorf("unknown traffic metric %q", metric)
	}

	persisted, err := store.Load(ctx)
	if err != nil {
		s.logger.Errorf(providers.TypeStats, "Loading %s series failed: %s", metric, err)
		s.reporter.CaptureError(err)
		return nil, err
	}

	fetched, err := s.source.TrafficDaily(ctx, metric)
	if err != nil {
		s.logger.Errorf(providers.TypeStats, "Fetching %s traffic failed: %s", metric, err)
		s.reporter.CaptureError(err)
		return nil, err
	}

	merged := models.MergeStatSeries(persisted, fetched, today)
	if err := store.Save(ctx, merged); err != nil {
		s.logger.Errorf(providers.TypeStats, "Persisting %s series failed: %s", metric, err)
		s.reporter.CaptureError(err)
		return nil, err
	}

	s.lastRefresh.Store(time.Now())
	s.metrics.SetSeriesRecords(metric, len(merged))
	s.metrics.ObserveRefreshDuration(metric, time.Since(start))
	s.logger.Infof(providers.TypeStats, "Refreshed %s: %d records (%d fetched)", metric, len(merged), len(fetched))
	return merged, nil
}

// RefreshStars appends stargazers not yet in the persisted set and persists
// the result. Existing records are never touched.
func (s *StatisticsService) RefreshStars(ctx context.Context) ([]models.StarRecord, error) {
	start := time.Now()

	persisted, err := s.starStore.Load(ctx)
	if err != nil {
		s.logger.Errorf(providers.TypeStats, "Loading stars series failed: %s", err)
		s.reporter.CaptureError(err)
		return nil, err
	}

	fetched, err := s.source.ListStargazers(ctx)
	if err != nil {
		s.logger.Errorf(providers.TypeStats, "Fetching stargazers failed: %s", err)
		s.reporter.CaptureError(err)
		return nil, err
	}

	merged := models.MergeStarRecords(persisted, fetched)
	if err := s.starStore.Save(ctx, merged); err != nil {
		s.logger.Errorf(providers.TypeStats, "Persisting stars series failed: %s", err)
		s.reporter.CaptureError(err)
		return nil, err
	}

	s.lastRefresh.Store(time.Now())
	s.metrics.SetSeriesRecords(MetricStars, len(merged))
	s.metrics.ObserveRefreshDuration(MetricStars, time.Since(start))
	s.logger.Infof(providers.TypeStats, "Refreshed stars: %d records (%d new)", len(merged), len(merged)-len(persisted))
	return merged, nil
}

func (s *StatisticsService) LastRefresh() time.Time {
	return s.lastRefresh.Load()
}
