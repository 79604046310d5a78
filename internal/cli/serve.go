package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/puzzlesearch/pkg/api"
)

// serveCommand creates the HTTP API command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solvers over HTTP",
		Long: `Serve the solvers as a JSON API.

  POST /v1/fifteen       {"board": "1 2 3 4\n..."}
  POST /v1/superqueens   {"n": 8}
  GET  /v1/runs          ?puzzle=fifteen&limit=20
  GET  /v1/runs/{id}
  GET  /healthz

Search limits, cache and store backends come from the config file. The server
stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			runner, closeFn, err := c.newRunner(cmd.Context(), cfg, noCache)
			if err != nil {
				return err
			}
			defer closeFn()

			(&logHooks{logger: c.Logger}).register()

			c.Logger.Info("starting API",
				"cache", cfg.Cache.Backend,
				"store", cfg.Store.Backend,
				"max_expansions", cfg.Search.MaxExpansions,
				"timeout", cfg.Search.Timeout)
			return api.New(runner, cfg, c.Logger).ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, \":8080\")")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the solution cache")

	return cmd
}
