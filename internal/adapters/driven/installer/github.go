package installer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/evsearch/internal/core/ports/driven"
)

const (
	// ReleaseOwner and ReleaseRepo locate the es.exe releases.
	ReleaseOwner = "voidtools"
	ReleaseRepo  = "ES"

	// DefaultTimeout is the HTTP timeout for API requests.
	DefaultTimeout = 30 * time.Second
)

// Ensure GitHubReleases implements the interface.
var _ driven.ReleaseSource = (*GitHubReleases)(nil)

// RateLimitError reports an exhausted GitHub API quota.
type RateLimitError struct {
	ResetAt time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("github: rate limit exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// APIError is a GitHub API error response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: API error %d: %s", e.StatusCode, e.Message)
}

// GitHubReleases reads release metadata from the GitHub REST API.
type GitHubReleases struct {
	gh          *gh.Client
	rateLimiter *RateLimiter
	owner       string
	repo        string
}

// ReleasesOption configures GitHubReleases.
type ReleasesOption func(*GitHubReleases) error

// WithBaseURL points the client at another API root, such as a test
// server or GitHub Enterprise.
func WithBaseURL(rawURL string) ReleasesOption {
	return func(r *GitHubReleases) error {
		if !strings.HasSuffix(rawURL, "/") {
			rawURL += "/"
		}
		u, err := url.Parse(rawURL)
		if err != nil {
			return fmt.Errorf("parse base url: %w", err)
		}
		r.gh.BaseURL = u
		return nil
	}
}

// WithRepository overrides the release repository.
func WithRepository(owner, repo string) ReleasesOption {
	return func(r *GitHubReleases) error {
		r.owner = owner
		r.repo = repo
		return nil
	}
}

// NewGitHubReleases creates a release source. An empty token uses
// unauthenticated requests.
func NewGitHubReleases(token string, opts ...ReleasesOption) (*GitHubReleases, error) {
	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(context.Background(), ts)
	} else {
		hc = &http.Client{}
	}
	hc.Timeout = DefaultTimeout

	r := &GitHubReleases{
		gh:          gh.NewClient(hc),
		rateLimiter: NewRateLimiter(),
		owner:       ReleaseOwner,
		repo:        ReleaseRepo,
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Latest returns the most recent release and its assets.
func (r *GitHubReleases) Latest(ctx context.Context) (*driven.Release, error) {
	if err := r.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	rel, resp, err := r.gh.Repositories.GetLatestRelease(ctx, r.owner, r.repo)
	if resp != nil {
		r.rateLimiter.UpdateFromResponse(resp.Response)
	}
	if err != nil {
		return nil, r.wrapError(err, "get latest release")
	}

	out := &driven.Release{Tag: rel.GetTagName()}
	for _, a := range rel.Assets {
		out.Assets = append(out.Assets, driven.ReleaseAsset{
			Name:        a.GetName(),
			DownloadURL: a.GetBrowserDownloadURL(),
			Digest:      a.GetDigest(),
		})
	}
	return out, nil
}

func (r *GitHubReleases) wrapError(err error, operation string) error {
	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{ResetAt: rateLimitErr.Rate.Reset.Time}
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return &APIError{StatusCode: ghErr.Response.StatusCode, Message: ghErr.Message}
	}

	return fmt.Errorf("%s: %w", operation, err)
}
