package controllers

import (
	"net/http"
	"os"

	"github.com/ross-rotordynamics/ross-bott/internal/dashboard"
	"github.com/ross-rotordynamics/ross-bott/internal/jobs"
	"github.com/ross-rotordynamics/ross-bott/internal/providers"
)

// DashboardController serves the most recently rendered statistics page.
// It never triggers a refresh: viewers get the last good page even when
// later refreshes fail.
type DashboardController struct {
	logger   providers.Logger
	cache    providers.CacheProviderInterface
	renderer dashboard.RendererInterface
}

func NewDashboardController(logger providers.Logger, cache providers.CacheProviderInterface, renderer dashboard.RendererInterface) *DashboardController {
	return &DashboardController{
		logger:   logger,
		cache:    cache,
		renderer: renderer,
	}
}

func (dc *DashboardController) Dashboard(w http.ResponseWriter, r *http.Request) {
	if data, ok := dc.cache.Get(jobs.DashboardCacheKey); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	data, err := os.ReadFile(dc.renderer.PagePath())
	if err != nil {
		if os.IsNotExist(err) {
			http.Error(w, "Dashboard not rendered yet", http.StatusServiceUnavailable)
			return
		}
		dc.logger.Errorf(providers.TypeGet, "Reading dashboard page: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	dc.cache.Set(jobs.DashboardCacheKey, data)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
