package controllers

import (
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/ross-rotordynamics/ross-bott/internal/services"
)

type HealthController struct {
	scanner   services.ScannerServiceInterface
	stats     services.StatisticsServiceInterface
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	LastScan      string  `json:"last_scan,omitempty"`
	LastRefresh   string  `json:"last_refresh,omitempty"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
	}
	if t := hc.scanner.LastScan(); !t.IsZero() {
		resp.LastScan = t.UTC().Format(time.RFC3339)
	}
	if t := hc.stats.LastRefresh(); !t.IsZero() {
		resp.LastRefresh = t.UTC().Format(time.RFC3339)
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(scanner services.ScannerServiceInterface, stats services.StatisticsServiceInterface) *HealthController {
	return &HealthController{
		scanner:   scanner,
		stats:     stats,
		startTime: time.Now(),
	}
}
