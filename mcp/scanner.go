package mcp

import (
	"slices"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	mcpschema "github.com/viant/mcp-protocol/schema"

	"github.com/viant/cobra-mcp/mcp/tool"
	"github.com/viant/cobra-mcp/mcp/tool/conversion"
)

const helpFlagName = "help"

// builtin subcommands cobra injects for its own purposes; never exposed.
var builtinCommands = map[string]bool{
	"help":       true,
	"completion": true,
}

// scanTools walks the command tree depth-first and derives one tool entry per
// invocable command. Scanning never invokes application code; its only
// product is the in-memory descriptor list.
func (s *Service) scanTools() ([]toolEntry, error) {
	var entries []toolEntry
	if err := s.walk([]*cobra.Command{s.root}, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Service) walk(chain []*cobra.Command, entries *[]toolEntry) error {
	cmd := chain[len(chain)-1]
	if cmd.Hidden && !s.config.IncludeHidden {
		return nil
	}
	if slices.Contains(s.config.Exclude, cmd.CommandPath()) {
		return nil
	}

	for _, child := range cmd.Commands() {
		if builtinCommands[child.Name()] {
			continue
		}
		if err := s.walk(append(chain, child), entries); err != nil {
			return err
		}
	}

	// An excluded command is still walked above so its children stay
	// reachable, but it never becomes a tool itself.
	if s.meta.Lookup(cmd).Excluded || !isInvocable(cmd) {
		return nil
	}

	*entries = append(*entries, s.buildEntry(chain))
	return nil
}

// isInvocable reports whether a command can be executed directly. Group
// commands whose body only prints help are not tools; a group with a real
// body (detected by non-help local flags) is exposed in addition to its
// children.
func isInvocable(cmd *cobra.Command) bool {
	if cmd.Run == nil && cmd.RunE == nil {
		return false
	}
	if len(cmd.Commands()) > 0 {
		hasNonHelpFlags := false
		cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
			if f.Name != helpFlagName {
				hasNonHelpFlags = true
			}
		})
		if !hasNonHelpFlags {
			return false
		}
	}
	return true
}

// buildEntry derives the tool descriptor and execution plan for one command
// chain. Parameters are attributed to the shallowest stage that declares
// them; deeper declarations of the same normalized name are shadowed, and the
// input schema merges the declared parameters of every stage along the path.
func (s *Service) buildEntry(chain []*cobra.Command) toolEntry {
	leaf := chain[len(chain)-1]

	path := make([]string, len(chain))
	for i, c := range chain {
		path[i] = c.Name()
	}

	name := tool.Join(path).String()
	meta := s.meta.Lookup(leaf)
	if meta.Name != "" {
		// An override replaces the entire flattened name, not just the leaf
		// segment.
		name = meta.Name
	}

	plan := &tool.Plan{
		Name:        tool.Name(name),
		Description: describe(leaf, meta.Description),
		Path:        path,
		Stages:      make([]tool.Stage, len(chain)),
		Params:      map[string]tool.Param{},
	}

	properties := map[string]map[string]interface{}{}
	var required []string

	for i, c := range chain {
		stage := tool.Stage{Segment: c.Name(), Flags: map[string]string{}}
		c.LocalFlags().VisitAll(func(f *pflag.Flag) {
			if f.Name == helpFlagName {
				return
			}
			param := tool.Normalize(f.Name)
			if _, taken := plan.Params[param]; taken {
				return
			}
			plan.Params[param] = tool.Param{Stage: i, Flag: f.Name, Kind: tool.ParamFlag}
			stage.Flags[param] = f.Name
			properties[param] = conversion.FlagProperty(f)
			if conversion.FlagRequired(f) {
				required = append(required, param)
			}
		})

		if i == len(chain)-1 {
			declared := tool.ParseUseArguments(c.Use)
			choices := positionalChoices(c, declared)
			for _, arg := range declared {
				if _, taken := plan.Params[arg.Name]; taken {
					continue
				}
				plan.Params[arg.Name] = tool.Param{Stage: i, Kind: tool.ParamArgument}
				stage.Arguments = append(stage.Arguments, arg)
				properties[arg.Name] = conversion.ArgumentProperty("", choices)
				if arg.Required {
					required = append(required, arg.Name)
				}
			}
		}
		plan.Stages[i] = stage
	}

	sort.Strings(required)
	schema := mcpschema.ToolInputSchema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
	return toolEntry{
		name:        name,
		description: plan.Description,
		inputSchema: schema,
		plan:        plan,
	}
}

// positionalChoices narrows a sole positional argument to the command's
// declared ValidArgs; with several positionals the choice set is ambiguous
// and therefore omitted.
func positionalChoices(cmd *cobra.Command, arguments []tool.Argument) []string {
	if len(arguments) != 1 || len(cmd.ValidArgs) == 0 {
		return nil
	}
	choices := make([]string, 0, len(cmd.ValidArgs))
	for _, v := range cmd.ValidArgs {
		// Completion entries may carry a tab-separated description.
		choices = append(choices, strings.SplitN(string(v), "\t", 2)[0])
	}
	return choices
}

// describe assembles the tool description: annotation override or Short,
// with Long appended when it adds information.
func describe(cmd *cobra.Command, override string) string {
	description := cmd.Short
	if override != "" {
		description = override
	}
	if cmd.Long != "" && cmd.Long != cmd.Short {
		if description != "" {
			description += "\n\n"
		}
		description += cmd.Long
	}
	return description
}
