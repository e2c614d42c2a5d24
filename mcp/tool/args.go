package tool

import (
	"fmt"
	"sort"
)

// StageArgs reconstructs the command-line token sequence for one stage of the
// plan from a caller-supplied parameter mapping. Positional values come first,
// in the declared order, followed by named flags in sorted key order so that
// the output is deterministic regardless of map iteration.
func (p *Plan) StageArgs(stage int, params map[string]interface{}) []string {
	var tokens []string
	for _, arg := range p.Stages[stage].Arguments {
		value, ok := params[arg.Name]
		if !ok {
			break
		}
		tokens = append(tokens, fmt.Sprintf("%v", value))
	}

	names := make([]string, 0, len(params))
	for name := range params {
		param, ok := p.Params[name]
		if !ok || param.Stage != stage || param.Kind != ParamFlag {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		tokens = append(tokens, flagTokens(p.Params[name].Flag, params[name])...)
	}
	return tokens
}

// flagTokens renders a single named parameter. Boolean false is suppressed
// entirely, boolean true becomes a bare flag, slices repeat the flag per
// element and everything else is a single --flag=value token.
func flagTokens(flag string, value interface{}) []string {
	switch actual := value.(type) {
	case bool:
		if actual {
			return []string{"--" + flag}
		}
		return nil
	case []interface{}:
		tokens := make([]string, 0, len(actual))
		for _, item := range actual {
			tokens = append(tokens, fmt.Sprintf("--%s=%v", flag, item))
		}
		return tokens
	case nil:
		return nil
	default:
		return []string{fmt.Sprintf("--%s=%v", flag, value)}
	}
}
