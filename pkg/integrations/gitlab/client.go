package gitlab

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/matzehuels/lablist/pkg/cache"
	apperr "github.com/matzehuels/lablist/pkg/errors"
	"github.com/matzehuels/lablist/pkg/integrations"
	"github.com/matzehuels/lablist/pkg/integrations/gitlab/projects"
	"github.com/matzehuels/lablist/pkg/observability"
)

// DefaultBaseURL is the REST API root of gitlab.com.
const DefaultBaseURL = "https://gitlab.com/api/v4"

// Project is a GitLab project as returned by the projects API.
// With simple=true GitLab omits several fields, which then stay zero.
type Project struct {
	ID                int        `json:"id"`
	Name              string     `json:"name"`
	Path              string     `json:"path"`
	PathWithNamespace string     `json:"path_with_namespace"`
	Description       string     `json:"description,omitempty"`
	Visibility        string     `json:"visibility,omitempty"`
	WebURL            string     `json:"web_url"`
	HTTPURLToRepo     string     `json:"http_url_to_repo,omitempty"`
	SSHURLToRepo      string     `json:"ssh_url_to_repo,omitempty"`
	Archived          bool       `json:"archived"`
	StarCount         int        `json:"star_count"`
	LastActivityAt    *time.Time `json:"last_activity_at,omitempty"`
}

// RepoURL returns the canonical HTTPS clone location of the project.
func (p Project) RepoURL() string {
	for _, u := range []string{p.HTTPURLToRepo, p.SSHURLToRepo, p.WebURL} {
		if u != "" {
			return integrations.NormalizeRepoURL(u)
		}
	}
	return ""
}

// Client provides access to the GitLab projects API.
// It handles HTTP requests with caching, automatic retries, and optional authentication.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
	keyer   cache.Keyer
}

// NewClient creates a GitLab API client with optional authentication.
//
// Parameters:
//   - backend: Cache backend for listing responses (nil or [cache.NullCache] for no caching)
//   - baseURL: API root, e.g. "https://gitlab.com/api/v4" (empty means [DefaultBaseURL])
//   - token: GitLab personal access token (empty string for unauthenticated)
//   - cacheTTL: How long responses are cached (typical: 1-24 hours)
//
// Cache keys are scoped to a fingerprint of token, so results visible to one
// token are never served to another.
//
// The returned Client is safe for concurrent use.
func NewClient(backend cache.Cache, baseURL, token string, cacheTTL time.Duration) *Client {
	if backend == nil {
		backend = cache.NewNullCache()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	var headers map[string]string
	if token != "" {
		headers = map[string]string{"PRIVATE-TOKEN": token}
	}

	return &Client{
		Client:  integrations.NewClient(cache.Instrument(backend, "listing"), "gitlab:", cacheTTL, headers),
		baseURL: strings.TrimRight(baseURL, "/"),
		keyer:   cache.NewScopedKeyer(nil, cache.TokenScope(token)),
	}
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// ListProjects fetches one page of projects in scope filtered by l.
// A nil Listing applies no filters. If refresh is true, the cache is bypassed.
//
// The request path is the scoped query of l with the search term
// percent-encoded. Errors carry codes from [apperr]: NOT_FOUND,
// UNAUTHORIZED, FORBIDDEN, RATE_LIMITED (with a [apperr.RateLimitedError]
// cause), or NETWORK_ERROR.
func (c *Client) ListProjects(ctx context.Context, scope projects.Scope, l *projects.Listing, refresh bool) ([]Project, error) {
	query := l.EscapedScopedQuery(scope)
	hooks := observability.Listing()
	hooks.OnListStart(ctx, scope.String(), query)
	start := time.Now()

	var out []Project
	err := c.Cached(ctx, c.keyer.ListingKey(c.baseURL, query), refresh, &out, func() error {
		return c.Get(ctx, c.baseURL+"/"+query, &out)
	})
	if err != nil {
		err = wrapError(err, query)
	}

	hooks.OnListComplete(ctx, scope.String(), query, len(out), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []Project{}
	}
	return out, nil
}

func wrapError(err error, query string) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return apperr.Wrap(apperr.ErrCodeTimeout, err, "list %s", query)
	case errors.Is(err, integrations.ErrNotFound):
		return apperr.Wrap(apperr.ErrCodeNotFound, err, "list %s", query)
	case errors.Is(err, integrations.ErrUnauthorized):
		return apperr.Wrap(apperr.ErrCodeUnauthorized, err, "list %s: check the access token", query)
	case errors.Is(err, integrations.ErrForbidden):
		return apperr.Wrap(apperr.ErrCodeForbidden, err, "list %s", query)
	case errors.Is(err, integrations.ErrRateLimited):
		return apperr.Wrap(apperr.ErrCodeRateLimited, err, "list %s", query)
	default:
		return apperr.Wrap(apperr.ErrCodeNetwork, err, "list %s", query)
	}
}
