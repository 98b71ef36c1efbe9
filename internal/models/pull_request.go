package models

import "time"

// PullRequest is the slice of a merged pull request the release notes
// generator cares about.
type PullRequest struct {
	Number    int
	Title     string
	Body      string
	Labels    []string
	Milestone string
	MergedAt  time.Time
}

func (p *PullRequest) HasLabel(name string) bool {
	for _, l := range p.Labels {
		if l == name {
			return true
		}
	}
	return false
}
