package projects

import (
	"net/url"
	"strconv"
	"strings"
)

// resource is the collection name every listing path starts with.
const resource = "projects"

// param is one query parameter in wire order. value reports the rendered
// value and whether the filter is set; freeText marks values that are
// escaped by the escaped renderings.
type param struct {
	key      string
	value    func(*Listing) (string, bool)
	freeText bool
}

// params is the fixed emission order expected by the remote API.
var params = []param{
	{key: "archived", value: func(l *Listing) (string, bool) { return formatBool(l.archived) }},
	{key: "visibility", value: func(l *Listing) (string, bool) { return formatEnum(l.visibility) }},
	{key: "order_by", value: func(l *Listing) (string, bool) { return formatEnum(l.orderBy) }},
	{key: "sort", value: func(l *Listing) (string, bool) { return formatEnum(l.sort) }},
	{key: "search", value: func(l *Listing) (string, bool) { return l.search, l.search != "" }, freeText: true},
	{key: "simple", value: func(l *Listing) (string, bool) { return formatBool(l.simple) }},
}

// BuildQuery renders the listing as "projects" followed by the set filters,
// e.g. "projects?archived=true&sort=asc". The search term is not escaped.
func (l *Listing) BuildQuery() string {
	return l.render(resource, verbatim)
}

// BuildScopedQuery renders the listing against the collection for scope,
// e.g. "projects/owned?simple=true". The search term is not escaped.
func (l *Listing) BuildScopedQuery(scope Scope) string {
	return l.render(scope.Resource(), verbatim)
}

// EscapedQuery is BuildQuery with the search term query-escaped.
func (l *Listing) EscapedQuery() string {
	return l.render(resource, url.QueryEscape)
}

// EscapedScopedQuery is BuildScopedQuery with the search term query-escaped.
func (l *Listing) EscapedScopedQuery(scope Scope) string {
	return l.render(scope.Resource(), url.QueryEscape)
}

func (l *Listing) render(path string, escape func(string) string) string {
	if l.IsZero() {
		return path
	}

	var b strings.Builder
	b.WriteString(path)

	sep := byte('?')
	for _, p := range params {
		v, ok := p.value(l)
		if !ok {
			continue
		}
		if p.freeText {
			v = escape(v)
		}
		b.WriteByte(sep)
		sep = '&'
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(v)
	}
	return b.String()
}

func verbatim(s string) string { return s }

func formatBool(b *bool) (string, bool) {
	if b == nil {
		return "", false
	}
	return strconv.FormatBool(*b), true
}

func formatEnum[T ~string](v *T) (string, bool) {
	if v == nil {
		return "", false
	}
	return string(*v), true
}
