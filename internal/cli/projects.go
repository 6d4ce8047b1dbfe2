package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lablist/pkg/integrations/gitlab"
)

// projectsCommand creates the projects command, which lists projects from
// the configured GitLab instance.
func (c *CLI) projectsCommand() *cobra.Command {
	var (
		filters     filterFlags
		refresh     bool
		noCache     bool
		asJSON      bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List GitLab projects matching a set of filters",
		Long: `List GitLab projects matching a set of filters.

Accepts the same filters as "lablist query". Results are cached for the
configured TTL; --refresh fetches fresh data and --no-cache skips the
cache entirely.`,
		Example: `  lablist projects --scope owned --order-by last_activity_at
  lablist projects --visibility public --search runner --json
  lablist projects --scope starred --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON && interactive {
				return fmt.Errorf("--json and --interactive cannot be combined")
			}

			l, scope, err := filters.listing(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			client, closeFn, err := c.newGitLabClient(ctx, noCache)
			if err != nil {
				return err
			}
			defer closeFn()

			prog := newProgress(loggerFromContext(ctx))
			var spinner *Spinner
			if !asJSON {
				spinner = newSpinner(ctx, os.Stderr, "Fetching "+l.EscapedScopedQuery(scope))
				spinner.Start()
			}
			list, err := client.ListProjects(ctx, scope, l, refresh)
			if spinner != nil {
				spinner.Stop()
			}
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Listed %d projects", len(list)))

			switch {
			case asJSON:
				enc := json.NewEncoder(c.Out)
				enc.SetIndent("", "  ")
				return enc.Encode(list)
			case interactive:
				return c.pickProject(list)
			default:
				c.printProjects(list)
				return nil
			}
		},
	}

	filters.register(cmd)
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cached results")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching entirely")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print projects as JSON")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick a project interactively")
	return cmd
}

func (c *CLI) printProjects(list []gitlab.Project) {
	if len(list) == 0 {
		printInfo("No projects matched")
		return
	}
	c.printf("%s\n", renderProjects(list, time.Now()))
}

// pickProject runs the interactive picker and prints the chosen project.
func (c *CLI) pickProject(list []gitlab.Project) error {
	if len(list) == 0 {
		printInfo("No projects matched")
		return nil
	}

	final, err := tea.NewProgram(NewProjectListModel(list), tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return fmt.Errorf("project picker: %w", err)
	}
	m, ok := final.(ProjectListModel)
	if !ok || m.Selected == nil {
		return nil
	}

	p := m.Selected
	c.printf("%s\n", p.WebURL)
	printKeyValue("Project", p.PathWithNamespace)
	if p.Description != "" {
		printKeyValue("Description", p.Description)
	}
	if repo := p.RepoURL(); repo != "" {
		printNextStep("Clone it", "git clone "+repo)
	}
	return nil
}
