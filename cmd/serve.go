package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/theapemachine/yamap-mcp/pkg/service"
)

var (
	transportFlag string
	addrFlag      string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the MCP tools",
		Long:  longServe,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry()
			if err != nil {
				return err
			}

			cfg, err := loadMCPConfig()
			if err != nil {
				return err
			}

			if addrFlag != "" {
				cfg.Addr = addrFlag
			}

			broker := service.NewMCPBroker(cfg, reg)

			transport := transportFlag
			if transport == "" {
				transport = viper.GetString("server.transport")
			}

			switch transport {
			case "", "stdio":
				return broker.ServeStdio()
			case "sse":
				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
				defer stop()

				return broker.ServeSSE(ctx)
			default:
				return fmt.Errorf("unsupported transport: %s", transport)
			}
		},
	}
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&transportFlag, "transport", "t", "", "Transport to serve on (stdio, sse); overrides server.transport")
	serveCmd.Flags().StringVarP(&addrFlag, "addr", "a", "", "Address for the sse transport; overrides server.addr")
}

var longServe = `
Serve the hallo, fetch_html and yamap_plan tools over MCP.

Examples:
  # Serve on stdio, the way an MCP client launches it.
  yamap-mcp serve

  # Serve over SSE on port 3210.
  yamap-mcp serve --transport sse --addr 0.0.0.0:3210
`
