package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/felixbrock/hellopage/internal/app"
)

var servePort string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server on GOPORT (default 8000).

Environment:
  GOPORT            listen port
  RATE_LIMIT        requests per second per client, 0 disables limiting
  RATE_BURST        burst size per client
  SHUTDOWN_TIMEOUT  graceful shutdown timeout, e.g. 5s`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "listen port, overrides GOPORT")
}

// serveConfig reads the env config and applies the --port override.
func serveConfig(port string) app.Config {
	cfg := config()
	if port != "" {
		cfg.Port = port
	}
	return cfg
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := serveConfig(servePort)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.App{
		ComponentBuilder: app.DefaultComponentBuilder(),
		Config:           cfg,
	}

	return a.Start(ctx)
}
