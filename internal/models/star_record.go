package models

import "time"

// StarRecord is one stargazer of the tracked repository.
type StarRecord struct {
	User      string
	StarredAt time.Time
}

// MergeStarRecords appends fetched stargazers whose login is not already in
// the persisted set. Existing records are never dropped or reordered; the
// persisted file is append-only.
func MergeStarRecords(persisted, fetched []StarRecord) []StarRecord {
	seen := make(map[string]struct{}, len(persisted))
	for _, r := range persisted {
		seen[r.User] = struct{}{}
	}

	merged := make([]StarRecord, len(persisted), len(persisted)+len(fetched))
	copy(merged, persisted)
	for _, r := range fetched {
		if _, ok := seen[r.User]; ok {
			continue
		}
		seen[r.User] = struct{}{}
		merged = append(merged, r)
	}
	return merged
}
