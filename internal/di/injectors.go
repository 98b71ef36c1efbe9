//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"github.com/ross-rotordynamics/ross-bott/internal"
	"github.com/ross-rotordynamics/ross-bott/internal/controllers"
	"github.com/ross-rotordynamics/ross-bott/internal/dashboard"
	gh "github.com/ross-rotordynamics/ross-bott/internal/github"
	"github.com/ross-rotordynamics/ross-bott/internal/jobs"
	"github.com/ross-rotordynamics/ross-bott/internal/providers"
	"github.com/ross-rotordynamics/ross-bott/internal/services"
	"github.com/ross-rotordynamics/ross-bott/internal/storage"
	"github.com/ross-rotordynamics/ross-bott/internal/structures"
	"github.com/ross-rotordynamics/ross-bott/internal/webhook"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewReportProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewMetricsProvider,

		gh.NewClient,
		wire.Bind(new(services.IssueSource), new(*gh.Client)),
		wire.Bind(new(services.TrafficSource), new(*gh.Client)),
		wire.Bind(new(webhook.CommentSource), new(*gh.Client)),

		storage.NewMirrorProvider,
		services.NewScannerService,
		services.NewStatisticsService,
		dashboard.NewRenderer,
		webhook.NewIssueGreeter,
		webhook.NewDispatcher,
		jobs.NewScheduler,
		controllers.NewWebhookController,
		controllers.NewDashboardController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
