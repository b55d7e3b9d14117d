package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mps/internal/server"
	"github.com/matzehuels/mps/pkg/observability"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Long: `Serve starts the HTTP API. Requests share the configured cache, so a
chord set solved once is answered from the cache afterwards, also by
other instances pointed at the same Redis or MongoDB backend.

  GET  /healthz
  POST /v1/solve?method=bu|td
  POST /v1/render?format=svg|dot|png|pdf
  POST /v1/compare`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}

			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			observability.SetHTTPHooks(observability.NewLogHooks(c.Logger))

			defaults := c.baseOptions()
			defaults.Format = ""
			srv := server.New(runner,
				server.WithLogger(c.Logger),
				server.WithDefaults(defaults),
				server.WithMaxBodyBytes(c.Config.Server.MaxBodyBytes),
				server.WithMaxChords(c.Config.Server.MaxChords),
				server.WithTimeouts(c.Config.Server.ReadTimeout, c.Config.Server.WriteTimeout),
			)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}
