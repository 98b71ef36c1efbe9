package github

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-github/v74/github"

	"github.com/ross-rotordynamics/ross-bott/internal/models"
	"github.com/ross-rotordynamics/ross-bott/internal/structures"
)

// Client wraps the GitHub REST API for the single tracked repository.
// Everything above this package works with internal/models types only.
type Client struct {
	gh    *github.Client
	owner string
	repo  string
}

func NewClient(conf *structures.Config) *Client {
	gh := github.NewClient(nil)
	if conf.Repo.Token != "" {
		gh = gh.WithAuthToken(conf.Repo.Token)
	}
	return &Client{
		gh:    gh,
		owner: conf.Repo.Owner,
		repo:  conf.Repo.Name,
	}
}

// ListOpenIssues returns every open issue of the tracked repository.
// Pull requests (which GitHub reports as issues) are filtered out.
func (c *Client) ListOpenIssues(ctx context.Context) ([]*models.Issue, error) {
	opts := &github.IssueListByRepoOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var issues []*models.Issue
	for {
		page, resp, err := c.gh.Issues.ListByRepo(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("list open issues: %w", err)
		}
		for _, is := range page {
			if is.IsPullRequest() {
				continue
			}
			issues = append(issues, convertIssue(is))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.ListOptions.Page = resp.NextPage
	}
	return issues, nil
}

func convertIssue(is *github.Issue) *models.Issue {
	labels := make([]string, 0, len(is.Labels))
	for _, l := range is.Labels {
		labels = append(labels, l.GetName())
	}
	return &models.Issue{
		Number:    is.GetNumber(),
		Title:     is.GetTitle(),
		State:     is.GetState(),
		UpdatedAt: is.GetUpdatedAt().Time,
		Labels:    labels,
	}
}

func (c *Client) CreateComment(ctx context.Context, number int, body string) error {
	_, _, err := c.gh.Issues.CreateComment(ctx, c.owner, c.repo, number, &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		return fmt.Errorf("comment on issue #%d: %w", number, err)
	}
	return nil
}

func (c *Client) AddLabel(ctx context.Context, number int, label string) error {
	_, _, err := c.gh.Issues.AddLabelsToIssue(ctx, c.owner, c.repo, number, []string{label})
	if err != nil {
		return fmt.Errorf("label issue #%d: %w", number, err)
	}
	return nil
}

// TrafficDaily fetches the per-day traffic breakdown for "views" or "clones".
// GitHub only reports the trailing two weeks.
func (c *Client) TrafficDaily(ctx context.Context, metric string) ([]models.StatRecord, error) {
	opts := &github.TrafficBreakdownOptions{Per: "day"}

	var data []*github.TrafficData
	switch metric {
	case "views":
		views, _, err := c.gh.Repositories.ListTrafficViews(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("traffic views: %w", err)
		}
		data = views.Views
	case "clones":
		clones, _, err := c.gh.Repositories.ListTrafficClones(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("traffic clones: %w", err)
		}
		data = clones.Clones
	default:
		return nil, fmt.Errorf("unknown traffic metric %q", metric)
	}

	records := make([]models.StatRecord, 0, len(data))
	for _, d := range data {
		records = append(records, models.StatRecord{
			Timestamp: d.GetTimestamp().Time,
			Count:     d.GetCount(),
			Uniques:   d.GetUniques(),
		})
	}
	return records, nil
}

// ListStargazers returns every stargazer with the time they starred.
func (c *Client) ListStargazers(ctx context.Context) ([]models.StarRecord, error) {
	opts := &github.ListOptions{PerPage: 100}

	var stars []models.StarRecord
	for {
		page, resp, err := c.gh.Activity.ListStargazers(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("list stargazers: %w", err)
		}
		for _, s := range page {
			stars = append(stars, models.StarRecord{
				User:      s.GetUser().GetLogin(),
				StarredAt: s.GetStarredAt().Time,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return stars, nil
}

// MergedPullRequests lists pull requests merged within [start, end].
// Results come back sorted by update time descending, so pagination stops
// once a page falls entirely before the window.
func (c *Client) MergedPullRequests(ctx context.Context, start, end time.Time) ([]models.PullRequest, error) {
	opts := &github.PullRequestListOptions{
		State:       "closed",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var pulls []models.PullRequest
	for {
		page, resp, err := c.gh.PullRequests.List(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("list pull requests: %w", err)
		}
		stale := true
		for _, pr := range page {
			if pr.GetUpdatedAt().Time.After(start) {
				stale = false
			}
			mergedAt := pr.GetMergedAt().Time
			if mergedAt.IsZero() || mergedAt.Before(start) || mergedAt.After(end) {
				continue
			}
			labels := make([]string, 0, len(pr.Labels))
			for _, l := range pr.Labels {
				labels = append(labels, l.GetName())
			}
			pulls = append(pulls, models.PullRequest{
				Number:    pr.GetNumber(),
				Title:     pr.GetTitle(),
				Body:      pr.GetBody(),
				Labels:    labels,
				Milestone: pr.GetMilestone().GetTitle(),
				MergedAt:  mergedAt,
			})
		}
		if resp.NextPage == 0 || stale {
			break
		}
		opts.Page = resp.NextPage
	}
	return pulls, nil
}
