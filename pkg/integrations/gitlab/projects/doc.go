// Package projects builds query strings for the GitLab project listing API.
//
// # Overview
//
// GitLab lists projects at GET /projects and accepts a set of optional
// filters as query parameters. [Listing] holds those filters and
// [Listing.BuildQuery] renders them as the path-plus-query component of
// the request:
//
//	q := projects.NewListing().
//	    Visibility(projects.VisibilityPrivate).
//	    Sort(projects.SortAsc).
//	    BuildQuery()
//	// q == "projects?visibility=private&sort=asc"
//
// # Parameter Order
//
// Parameters are always emitted in the same order, regardless of the order
// in which setters were called:
//
//	archived, visibility, order_by, sort, search, simple
//
// Unset filters are omitted. A listing with no filters renders as the bare
// resource name "projects" with no trailing "?".
//
// # Server Defaults
//
// GitLab orders by created_at and sorts descending when order_by and sort
// are omitted. The builder never emits those defaults itself.
//
// # Search Escaping
//
// [Listing.BuildQuery] writes the search term verbatim, so a term such as
// "foo bar" produces "search=foo bar". Terms containing '&', '=' or '#'
// therefore corrupt the query. [Listing.EscapedQuery] renders the same
// string with the search term passed through [url.QueryEscape]; the GitLab
// client uses the escaped form on the wire.
//
// # Scopes
//
// GitLab also serves the sibling collections /projects/visible,
// /projects/owned, /projects/starred and /projects/all with the same
// filters. [Listing.BuildScopedQuery] renders against those paths.
package projects
