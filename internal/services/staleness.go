package services

import (
	"time"

	"github.com/ross-rotordynamics/ross-bott/internal/models"
)

// IsStale reports whether an issue has had no activity for longer than the
// threshold. An update time in the future (clock skew between us and the
// tracker) is never stale.
func IsStale(issue *models.Issue, threshold time.Duration, now time.Time) bool {
	if issue.UpdatedAt.After(now) {
		return false
	}
	return now.Sub(issue.UpdatedAt) > threshold
}
