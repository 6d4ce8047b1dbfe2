package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/lablist/pkg/server"
)

// serveCommand creates the serve command, which runs the HTTP query service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP query service",
		Long: `Run the HTTP query service.

Routes:
  GET /healthz      liveness probe
  GET /v1/query     render a listing query
  GET /v1/projects  list projects from GitLab

The listen address defaults to server.addr from the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			client, closeFn, err := c.newGitLabClient(ctx, noCache)
			if err != nil {
				return err
			}
			defer closeFn()

			logger := loggerFromContext(ctx).WithPrefix("http")
			logger.Info("serving", "gitlab", client.BaseURL(), "cache", cfg.Cache.Backend)
			return server.New(client, logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable response caching")
	return cmd
}
