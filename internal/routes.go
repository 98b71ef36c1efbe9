package internal

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"

	"github.com/ross-rotordynamics/ross-bott/internal/controllers"
	"github.com/ross-rotordynamics/ross-bott/internal/providers"
	"github.com/ross-rotordynamics/ross-bott/internal/structures"
)

func InitRoutes(webhookController *controllers.WebhookController, dashboardController *controllers.DashboardController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	static := http.StripPrefix("/static/", http.FileServer(http.Dir(conf.Storage.StaticDir)))

	routers.Post("/", http.HandlerFunc(webhookController.HandleEvent))
	routers.Get("/", gzhttp.GzipHandler(http.HandlerFunc(dashboardController.Dashboard)))
	routers.Get("/static/", gzhttp.GzipHandler(static))
	return routers
}
