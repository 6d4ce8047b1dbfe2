// Package pkg provides the core libraries for lablist, a GitLab project
// listing tool.
//
// # Overview
//
// lablist turns a set of project filters into the query string the GitLab
// projects API expects, and optionally runs that query against an instance.
// The pkg directory is organized into three main areas:
//
//  1. [projects] - Domain logic (filter model, query rendering, token parsing)
//  2. [integrations] - External API clients (shared HTTP client, GitLab)
//  3. Infrastructure - caching, configuration, errors, hooks, HTTP service
//
// # Architecture
//
// The typical data flow through lablist:
//
//	CLI flags / HTTP query parameters
//	         ↓
//	    [projects] package (Listing + BuildQuery)
//	         ↓
//	    [gitlab] package (ListProjects, cached per token and query)
//	         ↓
//	    table, JSON, or interactive picker
//
// # Quick Start
//
// Render a query without contacting GitLab:
//
//	q := projects.NewListing().
//	    Archived(false).
//	    Visibility(projects.VisibilityPrivate).
//	    Sort(projects.SortAsc).
//	    BuildQuery()
//	// projects?archived=false&visibility=private&sort=asc
//
// List the matching projects:
//
//	backend, _ := cache.Open(ctx, cache.Options{Backend: cache.BackendFile, Dir: dir})
//	client := gitlab.NewClient(backend, gitlab.DefaultBaseURL, token, time.Hour)
//	list, err := client.ListProjects(ctx, projects.ScopeOwned, l, false)
//
// # Main Packages
//
// [projects] - The listing filter model. Filters are emitted in a fixed
// order (archived, visibility, order_by, sort, search, simple) and unset
// filters are omitted.
//
// [gitlab] - GitLab REST client for project listings with PRIVATE-TOKEN
// authentication and error classification.
//
// [integrations] - Shared HTTP client with retry, rate limit handling and
// response caching.
//
// [cache] - Cache backends: file (CLI default), Redis, MongoDB, and a no-op
// cache.
//
// [config] - TOML configuration with environment overrides.
//
// [server] - HTTP service exposing query rendering and project listing.
//
// [errors] - Coded errors and input validation.
//
// [observability] - Hooks for listing, cache, and HTTP events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test -run Example ./pkg/...       # Examples only
//	go test -tags integration ./pkg/...  # Include integration tests
//
// [projects]: https://pkg.go.dev/github.com/matzehuels/lablist/pkg/integrations/gitlab/projects
// [gitlab]: https://pkg.go.dev/github.com/matzehuels/lablist/pkg/integrations/gitlab
// [integrations]: https://pkg.go.dev/github.com/matzehuels/lablist/pkg/integrations
// [cache]: https://pkg.go.dev/github.com/matzehuels/lablist/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/lablist/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/lablist/pkg/server
// [errors]: https://pkg.go.dev/github.com/matzehuels/lablist/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/lablist/pkg/observability
package pkg
