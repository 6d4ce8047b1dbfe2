package server

import (
	"net/url"
	"strconv"

	apperr "github.com/matzehuels/lablist/pkg/errors"
	"github.com/matzehuels/lablist/pkg/integrations/gitlab/projects"
)

// ParseListing builds a listing and scope from URL query parameters.
// Absent or empty parameters leave the matching filter unset. Invalid
// values yield INVALID_INPUT errors naming the parameter.
func ParseListing(q url.Values) (*projects.Listing, projects.Scope, error) {
	l := projects.NewListing()

	if v := q.Get("archived"); v != "" {
		b, err := parseBool("archived", v)
		if err != nil {
			return nil, "", err
		}
		l.Archived(b)
	}
	if v := q.Get("visibility"); v != "" {
		vis, err := projects.ParseVisibility(v)
		if err != nil {
			return nil, "", err
		}
		l.Visibility(vis)
	}
	if v := q.Get("order_by"); v != "" {
		o, err := projects.ParseOrderBy(v)
		if err != nil {
			return nil, "", err
		}
		l.OrderBy(o)
	}
	if v := q.Get("sort"); v != "" {
		s, err := projects.ParseSort(v)
		if err != nil {
			return nil, "", err
		}
		l.Sort(s)
	}
	if v := q.Get("search"); v != "" {
		if err := apperr.ValidateSearch(v); err != nil {
			return nil, "", err
		}
		l.Search(v)
	}
	if v := q.Get("simple"); v != "" {
		b, err := parseBool("simple", v)
		if err != nil {
			return nil, "", err
		}
		l.Simple(b)
	}

	scope, err := projects.ParseScope(q.Get("scope"))
	if err != nil {
		return nil, "", err
	}
	return l, scope, nil
}

func parseBool(name, v string) (bool, error) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, apperr.New(apperr.ErrCodeInvalidInput, "invalid %s %q: want true or false", name, v)
	}
	return b, nil
}
