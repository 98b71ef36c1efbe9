package models

import (
	"sort"
	"time"
)

// SeriesTimeLayout is the timestamp format used in the persisted CSV files.
// GitHub's traffic API reports midnight-UTC timestamps in the same shape.
const SeriesTimeLayout = "2006-01-02T15:04:05Z"

// StatRecord is one day of a traffic metric (views or clones).
type StatRecord struct {
	Timestamp time.Time
	Count     int
	Uniques   int
}

// Day truncates the record timestamp to its UTC calendar day.
func (r StatRecord) Day() time.Time {
	t := r.Timestamp.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MergeStatSeries merges freshly fetched traffic days into a persisted series
// and returns a complete, date-sorted, gap-free sequence running from the
// earliest known day through today. Days present in neither input are filled
// with zero counts. Persisted records win over fetched ones for the same day,
// so re-running a merge with no new remote data is a no-op.
func MergeStatSeries(persisted, fetched []StatRecord, today time.Time) []StatRecord {
	byDay := make(map[time.Time]StatRecord, len(persisted)+len(fetched))
	for _, r := range fetched {
		byDay[r.Day()] = r
	}
	for _, r := range persisted {
		byDay[r.Day()] = r
	}
	if len(byDay) == 0 {
		return nil
	}

	earliest := today.UTC()
	earliest = time.Date(earliest.Year(), earliest.Month(), earliest.Day(), 0, 0, 0, 0, time.UTC)
	for day := range byDay {
		if day.Before(earliest) {
			earliest = day
		}
	}

	end := today.UTC()
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	merged := make([]StatRecord, 0, len(byDay))
	for day := earliest; !day.After(end); day = day.AddDate(0, 0, 1) {
		if r, ok := byDay[day]; ok {
			merged = append(merged, r)
			continue
		}
		merged = append(merged, StatRecord{Timestamp: day})
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Day().Before(merged[j].Day())
	})
	return merged
}
