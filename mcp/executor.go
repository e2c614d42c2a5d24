package mcp

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/viant/cobra-mcp/mcp/state"
)

// executeChain replays the command chain behind a tool entry. Parameters are
// validated against the plan before any stage runs, so a rejected call leaves
// no side effects. Every stage shares one state container and one output
// sink; flag values persist across stages within the call and are restored to
// their declared defaults when the call ends.
func (s *Service) executeChain(ctx context.Context, entry *toolEntry, params map[string]interface{}) (string, error) {
	plan := entry.plan
	if err := plan.Validate(params); err != nil {
		return "", err
	}
	chain, err := s.commandChain(plan.Path)
	if err != nil {
		return "", err
	}

	// Cobra commands carry mutable flag and stream state, so two calls can
	// never replay overlapping chains at the same time.
	s.execMu.Lock()
	defer s.execMu.Unlock()
	defer teardown(chain)

	callCtx := state.With(ctx, state.New())
	var output bytes.Buffer
	for i, cmd := range chain {
		if err := invokeStage(callCtx, cmd, plan.StageArgs(i, params), &output); err != nil {
			return "", fmt.Errorf("%v: %w", strings.Join(plan.Path[:i+1], " "), err)
		}
	}
	return strings.TrimRight(output.String(), " \t\r\n"), nil
}

// invokeStage parses the reconstructed tokens for one command and runs its
// body together with the hooks cobra would fire for it. A failure at any
// point stops the chain; stages already run keep whatever they did.
func invokeStage(ctx context.Context, cmd *cobra.Command, args []string, output *bytes.Buffer) error {
	cmd.SetOut(output)
	cmd.SetErr(output)
	cmd.SetContext(ctx)

	if err := cmd.ParseFlags(args); err != nil {
		return err
	}
	positional := cmd.Flags().Args()
	if err := cmd.ValidateArgs(positional); err != nil {
		return err
	}

	switch {
	case cmd.PersistentPreRunE != nil:
		if err := cmd.PersistentPreRunE(cmd, positional); err != nil {
			return err
		}
	case cmd.PersistentPreRun != nil:
		cmd.PersistentPreRun(cmd, positional)
	}
	switch {
	case cmd.PreRunE != nil:
		if err := cmd.PreRunE(cmd, positional); err != nil {
			return err
		}
	case cmd.PreRun != nil:
		cmd.PreRun(cmd, positional)
	}
	switch {
	case cmd.RunE != nil:
		return cmd.RunE(cmd, positional)
	case cmd.Run != nil:
		cmd.Run(cmd, positional)
	}
	return nil
}

// teardown restores every flag a call changed to its declared default and
// detaches the call-scoped output streams, returning the chain to the state
// the next call expects.
func teardown(chain []*cobra.Command) {
	for _, cmd := range chain {
		cmd.Flags().Visit(resetFlag)
		cmd.SetOut(nil)
		cmd.SetErr(nil)
	}
}

func resetFlag(f *pflag.Flag) {
	if slice, ok := f.Value.(pflag.SliceValue); ok {
		_ = slice.Replace(sliceDefault(f.DefValue))
	} else {
		_ = f.Value.Set(f.DefValue)
	}
	f.Changed = false
}

// sliceDefault splits a pflag slice default such as "[a,b]" back into its
// elements; plain Set would append instead of replacing.
func sliceDefault(defValue string) []string {
	trimmed := strings.Trim(defValue, "[]")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, ",")
}
