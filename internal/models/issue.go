package models

import "time"

// Issue is the read-only view over a tracked repository issue. It carries
// only the fields the scanner needs; the remote tracker owns everything else.
type Issue struct {
	Number    int
	Title     string
	State     string
	UpdatedAt time.Time
	Labels    []string
}

func (i *Issue) HasLabel(name string) bool {
	for _, l := range i.Labels {
		if l == name {
			return true
		}
	}
	return false
}
