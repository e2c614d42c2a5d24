package mcp

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	mcpsrv "github.com/viant/mcp"

	"github.com/viant/cobra-mcp/mcp/metadata"
)

const defaultServeCommand = "mcp"

// AddServeCommand grafts an "mcp" subcommand onto an existing cobra
// application. The subcommand is excluded from scanning, so the server never
// lists itself as a tool; the rest of the tree is exposed unchanged. The
// command name can be overridden through the configuration passed via
// WithConfig.
func AddServeCommand(root *cobra.Command, opts ...Option) *cobra.Command {
	probe := &Service{root: root}
	for _, opt := range opts {
		opt(probe)
	}
	name := defaultServeCommand
	if probe.config != nil && probe.config.Command != "" {
		name = probe.config.Command
	}

	serveCmd := &cobra.Command{
		Use:   name,
		Short: "Expose this application's commands as MCP tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd, root, opts)
		},
	}
	metadata.Exclude(serveCmd)
	root.AddCommand(serveCmd)
	return serveCmd
}

func serve(cmd *cobra.Command, root *cobra.Command, opts []Option) error {
	svc, err := New(cmd.Context(), root, opts...)
	if err != nil {
		return err
	}

	var srvOpts *mcpsrv.ServerOptions
	if cfg := svc.Config(); cfg != nil {
		srvOpts = cfg.Server
	}
	mcpServer, err := mcpsrv.NewServer(svc.NewHandler, srvOpts)
	if err != nil {
		return err
	}

	httpSrv := mcpServer.HTTP(cmd.Context(), "")
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err.Error() != "http: Server closed" {
			log.Fatalf("http server: %v", err)
		}
	}()
	fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on %s\n", httpSrv.Addr)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	fmt.Fprintln(cmd.OutOrStdout(), "shutting down…")
	return httpSrv.Close()
}
