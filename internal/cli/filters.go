package cli

import (
	"strings"

	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/lablist/pkg/errors"
	"github.com/matzehuels/lablist/pkg/integrations/gitlab/projects"
)

// filterFlags holds the listing filters shared by query and projects.
// Boolean filters are tri-state: they stay unset unless passed explicitly,
// so --archived=false is different from omitting --archived.
type filterFlags struct {
	archived   bool
	visibility string
	orderBy    string
	sort       string
	search     string
	simple     bool
	scope      string
}

// register adds the filter flags to cmd.
func (f *filterFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.BoolVar(&f.archived, "archived", false, "limit by archived status")
	fl.StringVar(&f.visibility, "visibility", "", "limit by visibility ("+tokenList(projects.Visibilities)+")")
	fl.StringVar(&f.orderBy, "order-by", "", "order by field ("+tokenList(projects.OrderFields)+")")
	fl.StringVar(&f.sort, "sort", "", "sort direction ("+tokenList(projects.Sorts)+")")
	fl.StringVar(&f.search, "search", "", "search term")
	fl.BoolVar(&f.simple, "simple", false, "return only limited fields per project")
	fl.StringVar(&f.scope, "scope", "", "project collection (member, visible, owned, starred, all)")

	_ = cmd.RegisterFlagCompletionFunc("visibility", fixedCompletion(tokenStrings(projects.Visibilities)))
	_ = cmd.RegisterFlagCompletionFunc("order-by", fixedCompletion(tokenStrings(projects.OrderFields)))
	_ = cmd.RegisterFlagCompletionFunc("sort", fixedCompletion(tokenStrings(projects.Sorts)))
	_ = cmd.RegisterFlagCompletionFunc("scope", fixedCompletion([]string{"member", "visible", "owned", "starred", "all"}))
}

// listing converts the flags that were set on cmd into a Listing and Scope.
func (f *filterFlags) listing(cmd *cobra.Command) (*projects.Listing, projects.Scope, error) {
	l := projects.NewListing()
	changed := cmd.Flags().Changed

	if changed("archived") {
		l.Archived(f.archived)
	}
	if f.visibility != "" {
		v, err := projects.ParseVisibility(f.visibility)
		if err != nil {
			return nil, "", err
		}
		l.Visibility(v)
	}
	if f.orderBy != "" {
		o, err := projects.ParseOrderBy(f.orderBy)
		if err != nil {
			return nil, "", err
		}
		l.OrderBy(o)
	}
	if f.sort != "" {
		s, err := projects.ParseSort(f.sort)
		if err != nil {
			return nil, "", err
		}
		l.Sort(s)
	}
	if f.search != "" {
		if err := apperr.ValidateSearch(f.search); err != nil {
			return nil, "", err
		}
		l.Search(f.search)
	}
	if changed("simple") {
		l.Simple(f.simple)
	}

	scope, err := projects.ParseScope(f.scope)
	if err != nil {
		return nil, "", err
	}
	return l, scope, nil
}

func tokenStrings[T ~string](tokens []T) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = string(t)
	}
	return out
}

func tokenList[T ~string](tokens []T) string {
	return strings.Join(tokenStrings(tokens), ", ")
}

func fixedCompletion(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
