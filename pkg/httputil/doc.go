// Package httputil provides retry helpers for the GitLab API client.
//
// # Retry
//
// [Retry] re-runs an operation for transient failures only. An error is
// transient when it is wrapped with [cache.Retryable]; the API client does
// this for:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// The delay doubles after every failed attempt. A 429 response that carries
// a Retry-After header stretches the next wait to the requested duration,
// capped at [MaxRetryAfter]:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return client.Get(ctx, url, &projects)
//	})
//
// # Configuration
//
// [RetryWithBackoff] uses 3 attempts with a 1 second base delay. Use [Retry]
// directly for other budgets.
package httputil
