package projects

import (
	"strings"

	"github.com/matzehuels/lablist/pkg/errors"
)

// Accepted tokens, in documentation order.
var (
	Visibilities = []Visibility{VisibilityPublic, VisibilityInternal, VisibilityPrivate}
	OrderFields  = []OrderBy{OrderByID, OrderByName, OrderByPath, OrderByCreatedAt, OrderByUpdatedAt, OrderByLastActivityAt}
	Sorts        = []Sort{SortAsc, SortDesc}
	Scopes       = []Scope{ScopeMember, ScopeVisible, ScopeOwned, ScopeStarred, ScopeAll}
)

// ParseVisibility converts user input such as "Private" into a Visibility.
func ParseVisibility(s string) (Visibility, error) {
	return parseToken(s, "visibility", Visibilities)
}

// ParseOrderBy converts user input such as "last_activity_at" into an OrderBy.
func ParseOrderBy(s string) (OrderBy, error) {
	return parseToken(s, "order_by", OrderFields)
}

// ParseSort converts user input such as "ASC" into a Sort.
func ParseSort(s string) (Sort, error) {
	return parseToken(s, "sort", Sorts)
}

// ParseScope converts user input into a Scope. Both "" and "member" select
// the plain /projects collection.
func ParseScope(s string) (Scope, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if norm == "" || norm == "member" {
		return ScopeMember, nil
	}
	return parseToken(s, "scope", Scopes[1:])
}

func parseToken[T ~string](s, field string, valid []T) (T, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, v := range valid {
		if string(v) == norm {
			return v, nil
		}
	}
	var zero T
	return zero, errors.New(errors.ErrCodeInvalidInput, "invalid %s %q (want one of: %s)", field, s, joinTokens(valid))
}

func joinTokens[T ~string](valid []T) string {
	names := make([]string, len(valid))
	for i, v := range valid {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}
