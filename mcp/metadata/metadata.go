package metadata

import "github.com/spf13/cobra"

// Annotation keys recognised on cobra commands. Application authors attach
// them via cobra's Annotations map or the helpers below.
const (
	// AnnotationName replaces the entire flattened tool name for a command.
	AnnotationName = "cobra-mcp.name"
	// AnnotationExclude hides a command from the tool list. An excluded group
	// is still walked so its children remain reachable.
	AnnotationExclude = "cobra-mcp.exclude"
	// AnnotationDescription overrides the description derived from Short/Long.
	AnnotationDescription = "cobra-mcp.description"
)

// Metadata captures the per-command declarative overrides.
type Metadata struct {
	Name        string
	Description string
	Excluded    bool
}

// Extract reads the override annotations attached to a command.
func Extract(cmd *cobra.Command) Metadata {
	if cmd.Annotations == nil {
		return Metadata{}
	}
	return Metadata{
		Name:        cmd.Annotations[AnnotationName],
		Description: cmd.Annotations[AnnotationDescription],
		Excluded:    cmd.Annotations[AnnotationExclude] == "true",
	}
}

// Rename sets a custom flat tool name on a command.
func Rename(cmd *cobra.Command, name string) {
	annotate(cmd, AnnotationName, name)
}

// Exclude marks a command so it is never emitted as a tool.
func Exclude(cmd *cobra.Command) {
	annotate(cmd, AnnotationExclude, "true")
}

// Describe overrides the description exposed for a command.
func Describe(cmd *cobra.Command, description string) {
	annotate(cmd, AnnotationDescription, description)
}

func annotate(cmd *cobra.Command, key, value string) {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[key] = value
}

// Table is the metadata index built once during scanning so that the scanner
// and the path resolver consult a single source instead of re-reading
// annotations per lookup.
type Table struct {
	entries map[*cobra.Command]Metadata
}

// NewTable builds the index for a command tree.
func NewTable(root *cobra.Command) *Table {
	table := &Table{entries: map[*cobra.Command]Metadata{}}
	table.collect(root)
	return table
}

func (t *Table) collect(cmd *cobra.Command) {
	t.entries[cmd] = Extract(cmd)
	for _, child := range cmd.Commands() {
		t.collect(child)
	}
}

// Lookup returns the recorded metadata for a command node.
func (t *Table) Lookup(cmd *cobra.Command) Metadata {
	return t.entries[cmd]
}
