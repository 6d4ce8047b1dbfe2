// Package gitlab provides an HTTP client for the GitLab projects API.
//
// # Overview
//
// [Client.ListProjects] renders a [projects.Listing] into a request path,
// fetches the matching projects, and caches the decoded result:
//
//	client := gitlab.NewClient(backend, gitlab.DefaultBaseURL, token, time.Hour)
//	l := projects.NewListing().Archived(false).OrderBy(projects.OrderByName)
//	list, err := client.ListProjects(ctx, projects.ScopeOwned, l, false)
//
// The query string is built with the search term percent-encoded; every
// other value is a fixed token or a boolean and is sent as is.
//
// # Authentication
//
// A GitLab personal access token is optional and sent as PRIVATE-TOKEN.
// Without a token, only public projects are listed. Cached listings are
// keyed per token.
package gitlab
