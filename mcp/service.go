package mcp

import (
	"context"
	"sync"

	"github.com/spf13/cobra"
	serverproto "github.com/viant/mcp-protocol/server"

	"github.com/viant/cobra-mcp/internal/syncmap"
	"github.com/viant/cobra-mcp/mcp/config"
	"github.com/viant/cobra-mcp/mcp/matcher"
	"github.com/viant/cobra-mcp/mcp/metadata"
)

// Service bundles a cobra command tree, configuration and the tool registry
// derived from the tree. All heavy lifting during instantiation lives in
// bootstrap.go to keep this file focused on the public surface.
type Service struct {
	root   *cobra.Command
	config *config.Config

	// Ordered tool entries for reproducible listing plus an index for O(1)
	// name lookup. Both are built once at construction and never mutated.
	tools []toolEntry
	index *syncmap.Map[*toolEntry]
	meta  *metadata.Table

	// Protocol entries materialized at bootstrap and shared by every
	// connection handler.
	proto serverproto.Tools

	// Chain execution mutates shared cobra flag state, so concurrent calls
	// are serialized here. Listing needs no synchronization.
	execMu sync.Mutex
}

// Root returns the command tree the service exposes. Callers must treat it as
// read-only.
func (s *Service) Root() *cobra.Command { return s.root }

// Config returns the effective configuration instance passed to the service
// at construction time. Callers must treat the returned object as read-only.
func (s *Service) Config() *config.Config { return s.config }

// Name returns the MCP server name the service was configured with.
func (s *Service) Name() string {
	if s.config != nil && s.config.Name != "" {
		return s.config.Name
	}
	return s.root.Name()
}

// Descriptor carries the externally visible metadata of one tool.
type Descriptor struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema interface{} `json:"inputSchema"`
}

// ToolNames returns all registered tool names in scan order. The slice is a
// copy and therefore safe for callers to modify.
func (s *Service) ToolNames() []string {
	names := make([]string, len(s.tools))
	for i, e := range s.tools {
		names[i] = e.name
	}
	return names
}

// ToolDescriptors returns metadata for every tool in scan order. The returned
// slice is detached from internal state and therefore read-only for callers.
func (s *Service) ToolDescriptors() []Descriptor {
	out := make([]Descriptor, len(s.tools))
	for i, e := range s.tools {
		out[i] = Descriptor{Name: e.name, Description: e.description, InputSchema: e.inputSchema}
	}
	return out
}

// ToolMetadata returns description and input schema for a named tool when
// present. The last return value is false when the tool does not exist.
func (s *Service) ToolMetadata(name string) (string, interface{}, bool) {
	entry, ok := s.index.Lookup(name)
	if !ok {
		return "", nil, false
	}
	return entry.description, entry.inputSchema, true
}

// MatchTools returns the descriptors whose name satisfies pattern, using the
// matcher semantics shared with the CLI ("*", prefix "name*", or exact).
func (s *Service) MatchTools(pattern string) []Descriptor {
	var out []Descriptor
	for _, e := range s.tools {
		if matcher.Match(pattern, e.name) {
			out = append(out, Descriptor{Name: e.name, Description: e.description, InputSchema: e.inputSchema})
		}
	}
	return out
}

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithConfig sets a custom configuration instance. When omitted a zero value
// config is assumed.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithServerName overrides the exposed MCP server name.
func WithServerName(name string) Option {
	return func(s *Service) {
		if s.config == nil {
			s.config = &config.Config{}
		}
		s.config.Name = name
	}
}

// WithIncludeHidden also exposes hidden commands as tools.
func WithIncludeHidden() Option {
	return func(s *Service) {
		if s.config == nil {
			s.config = &config.Config{}
		}
		s.config.IncludeHidden = true
	}
}

// New constructs a service for the given command tree. The tree is scanned
// exactly once; a scan-time configuration error (such as a tool name
// collision) fails construction before any tool is usable.
func New(ctx context.Context, root *cobra.Command, opts ...Option) (*Service, error) {
	svc := &Service{root: root}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}
