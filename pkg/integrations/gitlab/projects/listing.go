package projects

// Visibility limits a listing by project visibility level.
// Values are emitted verbatim, so use the constants below or
// [ParseVisibility] rather than converting arbitrary strings.
type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityInternal Visibility = "internal"
	VisibilityPrivate  Visibility = "private"
)

// OrderBy selects the field GitLab orders the listing by.
// The server default is [OrderByCreatedAt]. Use the constants below or
// [ParseOrderBy]; other values are sent to GitLab as given.
type OrderBy string

const (
	OrderByID             OrderBy = "id"
	OrderByName           OrderBy = "name"
	OrderByPath           OrderBy = "path"
	OrderByCreatedAt      OrderBy = "created_at"
	OrderByUpdatedAt      OrderBy = "updated_at"
	OrderByLastActivityAt OrderBy = "last_activity_at"
)

// Sort selects the sort direction. The server default is [SortDesc].
// Use [SortAsc], [SortDesc] or [ParseSort].
type Sort string

const (
	SortAsc  Sort = "asc"
	SortDesc Sort = "desc"
)

// Scope selects which project collection is listed.
// [ScopeMember] is the plain /projects collection.
type Scope string

const (
	ScopeMember  Scope = ""
	ScopeVisible Scope = "visible"
	ScopeOwned   Scope = "owned"
	ScopeStarred Scope = "starred"
	ScopeAll     Scope = "all" // admin only
)

func (v Visibility) String() string { return string(v) }
func (o OrderBy) String() string    { return string(o) }
func (s Sort) String() string       { return string(s) }

// String returns the path segment for the scope, or "member" for [ScopeMember].
func (s Scope) String() string {
	if s == ScopeMember {
		return "member"
	}
	return string(s)
}

// Resource returns the collection path for the scope, e.g. "projects/owned".
func (s Scope) Resource() string {
	if s == ScopeMember {
		return resource
	}
	return resource + "/" + string(s)
}

// QueryBuilder renders an endpoint's path and query string.
type QueryBuilder interface {
	BuildQuery() string
}

// Listing holds the optional filters of a project listing request.
//
// Every filter starts unset. Setters store a value and return the Listing
// so calls can be chained. A Listing is meant to be built by one caller,
// rendered, and discarded; it is not safe for concurrent mutation.
type Listing struct {
	archived   *bool       // limit by archived status
	visibility *Visibility // limit by visibility
	orderBy    *OrderBy    // server default: created_at
	sort       *Sort       // server default: desc
	search     string      // empty means unset
	simple     *bool       // return only id, URL, name and path
}

var _ QueryBuilder = (*Listing)(nil)

// NewListing returns a Listing with every filter unset.
func NewListing() *Listing {
	return &Listing{}
}

// Archived limits the listing by archived status.
func (l *Listing) Archived(archived bool) *Listing {
	l.archived = &archived
	return l
}

// Visibility limits the listing to one visibility level.
func (l *Listing) Visibility(visibility Visibility) *Listing {
	l.visibility = &visibility
	return l
}

// OrderBy sets the field the listing is ordered by.
func (l *Listing) OrderBy(orderBy OrderBy) *Listing {
	l.orderBy = &orderBy
	return l
}

// Sort sets the sort direction.
func (l *Listing) Sort(sort Sort) *Listing {
	l.sort = &sort
	return l
}

// Search limits the listing to projects matching term.
// An empty term clears the filter.
func (l *Listing) Search(term string) *Listing {
	l.search = term
	return l
}

// Simple requests the reduced project representation.
func (l *Listing) Simple(simple bool) *Listing {
	l.simple = &simple
	return l
}

// IsZero reports whether no filter is set. A nil Listing is zero.
func (l *Listing) IsZero() bool {
	return l == nil || (l.archived == nil &&
		l.visibility == nil &&
		l.orderBy == nil &&
		l.sort == nil &&
		l.search == "" &&
		l.simple == nil)
}
