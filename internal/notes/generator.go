package notes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ross-rotordynamics/ross-bott/internal/models"
	"github.com/ross-rotordynamics/ross-bott/internal/providers"
)

// PullSource lists merged pull requests for the tracked repository.
type PullSource interface {
	MergedPullRequests(ctx context.Context, start, end time.Time) ([]models.PullRequest, error)
}

// sections, in the order they appear in the generated notes.
var sections = []struct {
	Title string
	Label string
}{
	{"Enhancements", "enhancement"},
	{"API changes", "api change"},
	{"Bug fixes", "bug"},
}

// Generator produces markdown release notes from the pull requests merged
// within a date window, grouped by label.
type Generator struct {
	logger providers.Logger
	source PullSource
}

func NewGenerator(logger providers.Logger, source PullSource) *Generator {
	return &Generator{logger: logger, source: source}
}

// Generate writes version-<version>.md into outDir and returns its path.
// The optional milestone restricts the notes to pull requests carrying it.
func (g *Generator) Generate(ctx context.Context, version, milestone string, start, end time.Time, outDir string) (string, error) {
	pulls, err := g.source.MergedPullRequests(ctx, start, end)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Version %s\n\n", version)
	sb.WriteString("The following enhancements and bug fixes were implemented for this release:\n")

	for _, sec := range sections {
		filtered := filterPulls(pulls, sec.Label, milestone)
		if len(filtered) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n## %s\n\n", sec.Title)
		for _, pr := range filtered {
			fmt.Fprintf(&sb, "### %s (#%d)\n\n", pr.Title, pr.Number)
			if body := strings.TrimSpace(pr.Body); body != "" {
				sb.WriteString(body)
				sb.WriteString("\n\n")
			}
		}
	}

	path := filepath.Join(outDir, fmt.Sprintf("version-%s.md", version))
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return "", err
	}
	g.logger.Infof(providers.TypeApp, "Wrote release notes for %d pull requests to %s", len(pulls), path)
	return path, nil
}

// filterPulls keeps pull requests carrying the label (and the milestone, if
// one is given), sorted by merge time ascending.
func filterPulls(pulls []models.PullRequest, label, milestone string) []models.PullRequest {
	var filtered []models.PullRequest
	for _, pr := range pulls {
		if !pr.HasLabel(label) {
			continue
		}
		if milestone != "" && pr.Milestone != milestone {
			continue
		}
		filtered = append(filtered, pr)
	}
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].MergedAt.Before(filtered[j].MergedAt)
	})
	return filtered
}
