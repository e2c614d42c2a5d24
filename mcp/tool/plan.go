package tool

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors surfaced while validating caller arguments against a plan.
// They are detected before any command body runs so that a rejected call never
// leaves partial side effects behind.
var (
	// ErrUnknownParameter indicates a caller supplied a parameter that no
	// command along the tool's path declares.
	ErrUnknownParameter = errors.New("unknown parameter")

	// ErrMissingArgument indicates a required positional argument is absent,
	// or a later positional was supplied while an earlier one is missing (the
	// token sequence would silently shift otherwise).
	ErrMissingArgument = errors.New("missing positional argument")
)

// Argument describes one positional parameter declared in a command's Use
// line. Positional values are order-sensitive and unnamed on the wire, so the
// declared order is the sole source of truth for reconstruction.
type Argument struct {
	Name     string
	Required bool
}

// ParamKind distinguishes how a caller-supplied parameter is rendered into
// command-line tokens.
type ParamKind int

const (
	// ParamFlag renders as a named --flag token.
	ParamFlag ParamKind = iota
	// ParamArgument renders as a bare positional token.
	ParamArgument
)

// Param records where and how one caller-supplied parameter is applied.
type Param struct {
	// Stage indexes into Plan.Path; parameters are attributed to the
	// shallowest command that declares them.
	Stage int
	// Flag is the flag name as declared on the command (dashes intact);
	// empty for positional arguments.
	Flag string
	Kind ParamKind
}

// Stage describes one command node along a tool's dotted path together with
// the parameters attributed to it.
type Stage struct {
	// Segment is the structural command name.
	Segment string
	// Flags maps the normalized parameter name to the declared flag name.
	Flags map[string]string
	// Arguments holds the declared positional order for this stage.
	Arguments []Argument
}

// Plan is the immutable execution descriptor for one flattened tool. It is
// built once during scanning and shared read-only afterwards; the dotted path
// it records is the address the executor resolves, the flat name is only a
// surface identifier for callers.
type Plan struct {
	Name        Name
	Description string
	// Path holds structural command names from the root to the target node.
	Path []string
	// Stages parallels Path.
	Stages []Stage
	// Params maps normalized parameter names to their owning stage.
	Params map[string]Param
}

// Validate checks a caller-supplied parameter mapping against the plan. All
// violations are reported before any command body is invoked.
func (p *Plan) Validate(params map[string]interface{}) error {
	for name := range params {
		if _, ok := p.Params[name]; !ok {
			return fmt.Errorf("%w: %q is not declared by tool %q", ErrUnknownParameter, name, p.Name)
		}
	}
	for _, stage := range p.Stages {
		var gap string
		for _, arg := range stage.Arguments {
			_, present := params[arg.Name]
			switch {
			case present && gap != "":
				return fmt.Errorf("%w: %q must be set when %q is", ErrMissingArgument, gap, arg.Name)
			case !present && arg.Required:
				return fmt.Errorf("%w: %q is required by tool %q", ErrMissingArgument, arg.Name, p.Name)
			case !present && gap == "":
				gap = arg.Name
			}
		}
	}
	return nil
}

// reserved lists Use-line placeholders that describe the command grammar
// rather than a positional parameter.
var reserved = map[string]bool{
	"command": true,
	"args":    true,
	"flags":   true,
}

// ParseUseArguments extracts positional parameter declarations from a cobra
// Use line, the same convention cobra renders in usage text: "set <key>
// <value>" declares two required positionals, "get <key> [fallback]" one
// required and one optional. The leading token names the command itself and is
// skipped.
func ParseUseArguments(use string) []Argument {
	fields := strings.Fields(use)
	if len(fields) < 2 {
		return nil
	}
	var args []Argument
	for _, field := range fields[1:] {
		required := true
		name := field
		switch {
		case strings.HasPrefix(field, "[") && strings.HasSuffix(field, "]"):
			required = false
			name = strings.Trim(field, "[]")
		case strings.HasPrefix(field, "<") && strings.HasSuffix(field, ">"):
			name = strings.Trim(field, "<>")
		default:
			continue
		}
		name = strings.ToLower(name)
		if name == "" || reserved[name] || strings.ContainsAny(name, "<>[]|") {
			continue
		}
		args = append(args, Argument{Name: Normalize(name), Required: required})
	}
	return args
}
