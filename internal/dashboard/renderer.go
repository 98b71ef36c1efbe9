package dashboard

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/components"

	"github.com/ross-rotordynamics/ross-bott/internal/models"
	"github.com/ross-rotordynamics/ross-bott/internal/providers"
	"github.com/ross-rotordynamics/ross-bott/internal/structures"
)

const PageFileName = "main.html"

type RendererInterface interface {
	RenderPage(views, clones []models.StatRecord, stars []models.StarRecord) ([]byte, error)
	WritePage(data []byte) error
	PagePath() string
}

// Renderer turns the three statistics series into the static dashboard page.
// Rendering is a pure transform: identical input series produce an identical
// page (chart IDs are fixed).
type Renderer struct {
	config *structures.Config
	logger providers.Logger
}

func NewRenderer(config *structures.Config, logger providers.Logger) RendererInterface {
	return &Renderer{config: config, logger: logger}
}

func (r *Renderer) RenderPage(views, clones []models.StatRecord, stars []models.StarRecord) ([]byte, error) {
	page := components.NewPage()
	page.PageTitle = r.config.AppName
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		trafficChart("views-chart", "Views", views),
		trafficChart("clones-chart", "Clones", clones),
		starsChart("stars-chart", stars),
	)

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) PagePath() string {
	return filepath.Join(r.config.Storage.StaticDir, PageFileName)
}

// WritePage replaces the served page atomically so a concurrent request
// never reads a half-written file.
func (r *Renderer) WritePage(data []byte) error {
	if err := os.MkdirAll(r.config.Storage.StaticDir, 0755); err != nil {
		return err
	}

	path := r.PagePath()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	r.logger.Infof(providers.TypeStats, "Rendered dashboard to %s (%d bytes)", path, len(data))
	return nil
}
