// Package github provides a ticket tracker adapter over the GitHub
// Issues API. One repository and one bearer token are fixed at
// construction; every call is a live round trip with no retry.
package github

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/torqueware/assist/internal/core/domain"
	"github.com/torqueware/assist/internal/core/ports/driven"
)

// Ensure Tracker implements the interface.
var _ driven.TicketTracker = (*Tracker)(nil)

// Default configuration values.
const (
	// DefaultTimeout is the transport timeout; no per-call override.
	DefaultTimeout = 30 * time.Second

	// DefaultListLimit caps ticket listings when no limit is given.
	DefaultListLimit = 5
)

// Config holds configuration for the GitHub tracker.
type Config struct {
	// Repo is the "owner/name" repository identifier (required).
	Repo string

	// Token is the bearer credential (required).
	Token string

	// BaseURL overrides the GitHub API endpoint, for GitHub Enterprise
	// or tests. Empty means api.github.com.
	BaseURL string

	// Timeout is the transport timeout (default: 30s).
	Timeout time.Duration
}

// Tracker is a thin client over the GitHub Issues API.
type Tracker struct {
	gh      *gh.Client
	owner   string
	repo    string
	limiter *rateLimiter
}

// New creates a tracker scoped to one repository and credential.
func New(cfg Config) (*Tracker, error) {
	owner, repo, ok := strings.Cut(cfg.Repo, "/")
	if !ok || owner == "" || repo == "" {
		return nil, fmt.Errorf("%w: repository must be \"owner/name\", got %q", domain.ErrInvalidInput, cfg.Repo)
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("%w: tracker token is required", domain.ErrInvalidInput)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
	tc := oauth2.NewClient(context.Background(), ts)
	tc.Timeout = cfg.Timeout

	client := gh.NewClient(tc)
	if cfg.BaseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(cfg.BaseURL, cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("set base URL: %w", err)
		}
	}

	return &Tracker{
		gh:      client,
		owner:   owner,
		repo:    repo,
		limiter: newRateLimiter(),
	}, nil
}

// Create opens a new support ticket. Title is the summary; the body
// carries the requester's name, email and description. Fails wrapping
// domain.ErrTicketCreate on any non-201 response.
func (t *Tracker) Create(ctx context.Context, req domain.TicketRequest) (*domain.Ticket, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	issue, resp, err := t.gh.Issues.Create(ctx, t.owner, t.repo, &gh.IssueRequest{
		Title:  gh.Ptr(req.Summary),
		Body:   gh.Ptr(formatBody(req)),
		Labels: &domain.TicketLabels,
	})
	if err != nil {
		return nil, wrapErr(domain.ErrTicketCreate, "create", resp, err)
	}
	if resp.StatusCode != 201 {
		return nil, fmt.Errorf("%w: %w", domain.ErrTicketCreate, &domain.TrackerError{
			Op:         "create",
			StatusCode: resp.StatusCode,
			Body:       resp.Status,
		})
	}

	return &domain.Ticket{
		ID:    issue.GetNumber(),
		Title: issue.GetTitle(),
		URL:   issue.GetHTMLURL(),
		State: issue.GetState(),
	}, nil
}

// List returns up to limit open, support-labelled tickets, in the
// order the tracker reports them (most recent first). Pull requests
// surface on the issues endpoint and are filtered out.
func (t *Tracker) List(ctx context.Context, limit int) ([]domain.Ticket, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	if err := t.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	issues, resp, err := t.gh.Issues.ListByRepo(ctx, t.owner, t.repo, &gh.IssueListByRepoOptions{
		State:       domain.TicketStateOpen,
		Labels:      []string{"support"},
		ListOptions: gh.ListOptions{PerPage: limit},
	})
	if err != nil {
		return nil, wrapErr(domain.ErrTicketList, "list", resp, err)
	}

	tickets := make([]domain.Ticket, 0, len(issues))
	for _, issue := range issues {
		if issue.IsPullRequest() {
			continue
		}
		if len(tickets) == limit {
			break
		}
		tickets = append(tickets, domain.Ticket{
			ID:    issue.GetNumber(),
			Title: issue.GetTitle(),
			URL:   issue.GetHTMLURL(),
			State: issue.GetState(),
		})
	}

	return tickets, nil
}

// Close transitions the ticket to the closed state. Fails wrapping
// domain.ErrTicketClose on any non-2xx response, including 404.
func (t *Tracker) Close(ctx context.Context, id int) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return err
	}

	_, resp, err := t.gh.Issues.Edit(ctx, t.owner, t.repo, id, &gh.IssueRequest{
		State: gh.Ptr(domain.TicketStateClosed),
	})
	if err != nil {
		return wrapErr(domain.ErrTicketClose, "close", resp, err)
	}

	return nil
}

// formatBody renders the requester's details and description as the
// issue body.
func formatBody(req domain.TicketRequest) string {
	return fmt.Sprintf("**User name:** %s\n**User email:** %s\n\n---\n\n%s",
		req.Name, req.Email, req.Description)
}

// wrapErr attaches the tracker's status and raw error body to the
// matching domain sentinel.
func wrapErr(sentinel error, op string, resp *gh.Response, err error) error {
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}

	body := err.Error()
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Message != "" {
		body = ghErr.Message
	}

	return fmt.Errorf("%w: %w", sentinel, &domain.TrackerError{
		Op:         op,
		StatusCode: status,
		Body:       body,
	})
}
