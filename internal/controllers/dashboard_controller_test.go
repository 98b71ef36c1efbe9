package controllers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ross-rotordynamics/ross-bott/internal/dashboard"
	"github.com/ross-rotordynamics/ross-bott/internal/jobs"
	"github.com/ross-rotordynamics/ross-bott/internal/models"
	"github.com/ross-rotordynamics/ross-bott/internal/testutil"
)

type stubRenderer struct {
	path string
}

func (r *stubRenderer) RenderPage(_, _ []models.StatRecord, _ []models.StarRecord) ([]byte, error) {
	return []byte("<html>rendered</html>"), nil
}
func (r *stubRenderer) WritePage(_ []byte) error { return nil }
func (r *stubRenderer) PagePath() string         { return r.path }

func TestDashboard_ServesFromCache(t *testing.T) {
	cache := testutil.NewMockCache()
	cache.Set(jobs.DashboardCacheKey, []byte("<html>cached</html>"))
	dc := NewDashboardController(&testutil.MockLogger{}, cache, &stubRenderer{path: "/nowhere"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	dc.Dashboard(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "<html>cached</html>", rr.Body.String())
}

func TestDashboard_FallsBackToFileAndPopulatesCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), dashboard.PageFileName)
	require.NoError(t, os.WriteFile(path, []byte("<html>on disk</html>"), 0644))

	cache := testutil.NewMockCache()
	dc := NewDashboardController(&testutil.MockLogger{}, cache, &stubRenderer{path: path})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	dc.Dashboard(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "<html>on disk</html>", rr.Body.String())

	cached, ok := cache.Get(jobs.DashboardCacheKey)
	require.True(t, ok)
	assert.Equal(t, []byte("<html>on disk</html>"), cached)
}

func TestDashboard_NotRenderedYet(t *testing.T) {
	path := filepath.Join(t.TempDir(), dashboard.PageFileName)
	dc := NewDashboardController(&testutil.MockLogger{}, testutil.NewMockCache(), &stubRenderer{path: path})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	dc.Dashboard(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), "not rendered yet")
}
