package cmd

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/viant/cobra-mcp/mcp"
	mcpconfig "github.com/viant/cobra-mcp/mcp/config"
)

var (
	rootCmd *cobra.Command
	cfgPath string

	svcOnce sync.Once
	svcInst *mcp.Service
	svcErr  error
)

// setRoot remembers the command tree the CLI operates on.
func setRoot(root *cobra.Command) { rootCmd = root }

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// service singleton can be created lazily by whichever sub-command is executed
// first.
func setConfigPath(p string) { cfgPath = p }

// serviceSingleton initialises an mcp.Service only once and reuses the
// instance across sub-commands within the same CLI invocation.
func serviceSingleton() (*mcp.Service, error) {
	svcOnce.Do(func() {
		if rootCmd == nil {
			svcErr = fmt.Errorf("no command tree configured")
			return
		}
		var opts []mcp.Option
		if cfgPath != "" {
			var cfg *mcpconfig.Config
			var err error
			if strings.Contains(cfgPath, "://") {
				cfg, err = mcpconfig.LoadURL(context.Background(), cfgPath)
			} else {
				cfg, err = mcpconfig.Load(cfgPath)
			}
			if err != nil {
				svcErr = err
				return
			}
			opts = append(opts, mcp.WithConfig(cfg))
		}
		svcInst, svcErr = mcp.New(context.Background(), rootCmd, opts...)
	})
	return svcInst, svcErr
}
