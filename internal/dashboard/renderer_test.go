package dashboard

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ross-rotordynamics/ross-bott/internal/models"
	"github.com/ross-rotordynamics/ross-bott/internal/structures"
	"github.com/ross-rotordynamics/ross-bott/internal/testutil"
)

func rendererTestConfig(staticDir string) *structures.Config {
	return &structures.Config{
		AppName: "ross-bott",
		Storage: structures.StorageConfig{StaticDir: staticDir},
	}
}

func sampleSeries() ([]models.StatRecord, []models.StatRecord, []models.StarRecord) {
	d := func(day int) time.Time { return time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC) }
	views := []models.StatRecord{
		{Timestamp: d(1), Count: 10, Uniques: 4},
		{Timestamp: d(2), Count: 7, Uniques: 3},
	}
	clones := []models.StatRecord{
		{Timestamp: d(1), Count: 2, Uniques: 1},
		{Timestamp: d(2), Count: 0, Uniques: 0},
	}
	stars := []models.StarRecord{
		{User: "alice", StarredAt: d(1)},
		{User: "bob", StarredAt: d(2)},
	}
	return views, clones, stars
}

func TestRenderPage_ContainsAllThreeCharts(t *testing.T) {
	r := NewRenderer(rendererTestConfig(t.TempDir()), &testutil.MockLogger{})
	views, clones, stars := sampleSeries()

	data, err := r.RenderPage(views, clones, stars)

	require.NoError(t, err)
	page := string(data)
	assert.Contains(t, page, "views-chart")
	assert.Contains(t, page, "clones-chart")
	assert.Contains(t, page, "stars-chart")
	assert.Contains(t, page, "ross-bott")
}

func TestRenderPage_Deterministic(t *testing.T) {
	r := NewRenderer(rendererTestConfig(t.TempDir()), &testutil.MockLogger{})
	views, clones, stars := sampleSeries()

	first, err := r.RenderPage(views, clones, stars)
	require.NoError(t, err)
	second, err := r.RenderPage(views, clones, stars)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderPage_EmptySeries(t *testing.T) {
	r := NewRenderer(rendererTestConfig(t.TempDir()), &testutil.MockLogger{})

	data, err := r.RenderPage(nil, nil, nil)

	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestWritePage_AtomicReplace(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(rendererTestConfig(dir), &testutil.MockLogger{})

	require.NoError(t, r.WritePage([]byte("<html>v1</html>")))
	require.NoError(t, r.WritePage([]byte("<html>v2</html>")))

	data, err := os.ReadFile(filepath.Join(dir, PageFileName))
	require.NoError(t, err)
	assert.Equal(t, "<html>v2</html>", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestWritePage_CreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "static")
	r := NewRenderer(rendererTestConfig(dir), &testutil.MockLogger{})

	require.NoError(t, r.WritePage([]byte("<html>v1</html>")))

	data, err := os.ReadFile(filepath.Join(dir, PageFileName))
	require.NoError(t, err)
	assert.Equal(t, "<html>v1</html>", string(data))
}

func TestPagePath(t *testing.T) {
	r := NewRenderer(rendererTestConfig("/srv/static"), &testutil.MockLogger{})
	assert.Equal(t, filepath.Join("/srv/static", PageFileName), r.PagePath())
}
