package cli

import (
	"github.com/spf13/cobra"
)

// queryCommand creates the query command, which renders a listing query
// without contacting GitLab.
func (c *CLI) queryCommand() *cobra.Command {
	var (
		filters filterFlags
		escape  bool
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Print the projects query string for a set of filters",
		Long: `Print the GitLab projects query string for a set of filters.

Filters appear in a fixed order regardless of flag order. Boolean filters
are only included when passed explicitly. The search term is printed as
given unless --escape is set.`,
		Example: `  lablist query --archived --sort asc
  lablist query --visibility private --search "foo bar" --escape
  lablist query --scope owned --simple=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, scope, err := filters.listing(cmd)
			if err != nil {
				return err
			}
			q := l.BuildScopedQuery(scope)
			if escape {
				q = l.EscapedScopedQuery(scope)
			}
			c.printf("%s\n", q)
			return nil
		},
	}

	filters.register(cmd)
	cmd.Flags().BoolVar(&escape, "escape", false, "percent-encode the search term")
	return cmd
}
