package integrations

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a resource doesn't exist upstream.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")

	// ErrUnauthorized is returned for 401 responses (missing or invalid token).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned for 403 responses.
	ErrForbidden = errors.New("forbidden")

	// ErrRateLimited is returned for 429 responses.
	ErrRateLimited = errors.New("rate limited")
)

// NewHTTPClient creates an HTTP client with a standard timeout for API requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// ParseRetryAfter converts a Retry-After header value to whole seconds.
// Both delta-seconds and HTTP-date forms are accepted. Missing, malformed,
// or past values yield 0.
func ParseRetryAfter(v string, now time.Time) int {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if n, err := strconv.Atoi(v); err == nil {
		return max(n, 0)
	}
	t, err := http.ParseTime(v)
	if err != nil {
		return 0
	}
	return max(int(t.Sub(now).Seconds()), 0)
}

// NormalizeRepoURL converts various repository URL formats to canonical HTTPS form.
// Handles scp-style git@host:path, git://, ssh:// and git+ prefixes, and removes
// .git suffixes. Returns empty string if raw is empty.
func NormalizeRepoURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.TrimPrefix(s, "git+")
	switch {
	case strings.HasPrefix(s, "git@"):
		if host, path, ok := strings.Cut(strings.TrimPrefix(s, "git@"), ":"); ok {
			s = "https://" + host + "/" + path
		}
	case strings.HasPrefix(s, "ssh://git@"):
		s = "https://" + strings.TrimPrefix(s, "ssh://git@")
	case strings.HasPrefix(s, "git://"):
		s = "https://" + strings.TrimPrefix(s, "git://")
	}
	return strings.TrimSuffix(s, ".git")
}
