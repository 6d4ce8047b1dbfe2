// Package integrations provides the shared HTTP client for upstream APIs.
//
// # Overview
//
// API clients live in subpackages and embed [Client]:
//
//   - [gitlab]: GitLab REST API (project listings)
//
// # Client Pattern
//
// Clients follow a consistent pattern:
//
//	client := gitlab.NewClient(backend, "https://gitlab.com/api/v4", token, time.Hour)
//	list, err := client.ListProjects(ctx, projects.ScopeOwned, listing, false)  // false = use cache
//
// [Client] handles:
//   - HTTP requests with retry and rate limiting
//   - Response caching through any [cache.Cache] backend
//   - Status mapping to the sentinel errors in this package
//
// # Errors
//
// Responses map to sentinels so callers can use errors.Is:
//
//   - 401: [ErrUnauthorized]
//   - 403: [ErrForbidden]
//   - 404: [ErrNotFound]
//   - 429: [ErrRateLimited] (retryable, carries Retry-After)
//   - 5xx and transport failures: [ErrNetwork] (retryable)
//
// Every request emits [observability.HTTPHooks] events.
//
// [gitlab]: github.com/matzehuels/lablist/pkg/integrations/gitlab
// [cache.Cache]: github.com/matzehuels/lablist/pkg/cache.Cache
// [observability.HTTPHooks]: github.com/matzehuels/lablist/pkg/observability.HTTPHooks
package integrations
