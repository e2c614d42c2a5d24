package cmd

import (
	"fmt"
	"sort"
)

// ListToolsCmd prints every registered tool in flattened-name form.
type ListToolsCmd struct {
	Pattern string `short:"p" long:"pattern" description:"Filter by name: exact, prefix* or *"`
}

func (c *ListToolsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	pattern := c.Pattern
	if pattern == "" {
		pattern = "*"
	}
	tools := svc.MatchTools(pattern)
	// Sorting for deterministic output (helpful for tests & scripting).
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })
	for _, t := range tools {
		fmt.Printf("%s\t%s\n", t.Name, t.Description)
	}
	return nil
}
