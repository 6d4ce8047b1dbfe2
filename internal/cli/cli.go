package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lablist/pkg/buildinfo"
	"github.com/matzehuels/lablist/pkg/cache"
	"github.com/matzehuels/lablist/pkg/config"
	"github.com/matzehuels/lablist/pkg/integrations/gitlab"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = config.AppName

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command output. Defaults to os.Stdout.
	Out io.Writer

	// ConfigPath overrides the config file location (--config).
	ConfigPath string

	cfg *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "lablist builds and runs GitLab project listing queries",
		Long: `lablist renders GitLab project listing filters into API query strings,
lists the matching projects, and serves both operations over HTTP.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default $XDG_CONFIG_HOME/lablist/config.toml)")

	// Register all subcommands
	root.AddCommand(c.queryCommand())
	root.AddCommand(c.projectsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config and Clients
// =============================================================================

// loadConfig loads and validates the configuration once per process.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c.Logger.Debug("config loaded", "gitlab", cfg.GitLab.URL, "cache", cfg.Cache.Backend, "ttl", cfg.Cache.TTL)
	c.cfg = cfg
	return cfg, nil
}

// openCache opens the configured backend, or a NullCache when noCache is set.
// A backend that cannot be reached degrades to no caching with a warning.
func (c *CLI) openCache(ctx context.Context, cfg *config.Config, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	backend, err := cache.Open(ctx, cfg.CacheOptions())
	if err != nil {
		c.Logger.Warn("cache unavailable, continuing without it", "backend", cfg.Cache.Backend, "err", err)
		return cache.NewNullCache()
	}
	return backend
}

// newGitLabClient builds a client for the configured instance. The returned
// close function releases the cache backend.
func (c *CLI) newGitLabClient(ctx context.Context, noCache bool) (*gitlab.Client, func(), error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	backend := c.openCache(ctx, cfg, noCache)
	client := gitlab.NewClient(backend, cfg.GitLab.URL, cfg.GitLab.Token, cfg.Cache.TTL.Duration)
	closeFn := func() {
		if err := backend.Close(); err != nil {
			c.Logger.Debug("close cache", "err", err)
		}
	}
	return client, closeFn, nil
}

// printf writes formatted command output.
func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}
