package mcp

import (
	"fmt"
	"strings"

	mcpschema "github.com/viant/mcp-protocol/schema"

	"github.com/viant/cobra-mcp/mcp/tool"
)

// toolEntry holds metadata and the execution plan for one tool derived from a
// command node. Entries are immutable after bootstrap.
type toolEntry struct {
	name        string
	description string
	inputSchema mcpschema.ToolInputSchema
	plan        *tool.Plan
}

// addToolEntries populates the ordered registry and the lookup index. Two
// commands resolving to the same flat name is a configuration error surfaced
// here, at scan time, rather than deferred to call time.
func (s *Service) addToolEntries(entries []toolEntry) error {
	s.tools = make([]toolEntry, 0, len(entries))
	for i := range entries {
		entry := &entries[i]
		if existing, ok := s.index.Lookup(entry.name); ok {
			return fmt.Errorf("%w: %q maps to both %q and %q",
				ErrNameCollision, entry.name,
				dotted(existing.plan.Path), dotted(entry.plan.Path))
		}
		s.tools = append(s.tools, *entry)
		s.index.Set(entry.name, &s.tools[len(s.tools)-1])
	}
	return nil
}

func dotted(path []string) string {
	return strings.Join(path, ".")
}
