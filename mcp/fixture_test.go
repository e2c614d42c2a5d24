package mcp

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viant/cobra-mcp/mcp/state"
)

// recorder counts command-body invocations so tests can assert which stages
// of a chain actually ran.
type recorder struct {
	rootRuns  int
	startRuns int
}

// demoApp builds the command tree used across the package tests: a root with
// a persistent --env flag whose value the root stage publishes through the
// call state, one leaf with positional arguments, and a nested group with a
// mixed flag surface.
func demoApp(rec *recorder) *cobra.Command {
	root := &cobra.Command{Use: "app", Short: "Demo application"}
	root.PersistentFlags().String("env", "development", "Deployment environment")
	root.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		rec.rootRuns++
		if s, ok := state.From(cmd.Context()); ok {
			env, _ := cmd.Flags().GetString("env")
			s.Set("env", env)
		}
	}

	show := &cobra.Command{
		Use:   "show-env",
		Short: "Print the active environment",
		Run: func(cmd *cobra.Command, _ []string) {
			s, _ := state.From(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "env=%s\n", s.String("env", "unknown"))
		},
	}

	echo := &cobra.Command{
		Use:   "echo <message> [suffix]",
		Short: "Echo a message",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(args, " "))
		},
	}

	job := &cobra.Command{Use: "job", Short: "Job management"}
	start := &cobra.Command{
		Use:   "start",
		Short: "Start a job",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec.startRuns++
			workers, _ := cmd.Flags().GetInt("workers")
			verbose, _ := cmd.Flags().GetBool("verbose")
			tags, _ := cmd.Flags().GetStringSlice("tag")
			fmt.Fprintf(cmd.OutOrStdout(), "workers=%d verbose=%v tags=%v\n", workers, verbose, tags)
			return nil
		},
	}
	start.Flags().Int("workers", 1, "Worker count")
	start.Flags().Bool("verbose", false, "Verbose output")
	start.Flags().StringSlice("tag", nil, "Job tags")

	fail := &cobra.Command{
		Use:   "fail",
		Short: "Always fails",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "about to fail")
			return fmt.Errorf("job rejected")
		},
	}
	job.AddCommand(start, fail)

	root.AddCommand(show, echo, job)
	return root
}
