package mcp

import (
	"context"
	"fmt"

	"github.com/viant/cobra-mcp/internal/syncmap"
	"github.com/viant/cobra-mcp/mcp/config"
	"github.com/viant/cobra-mcp/mcp/metadata"
)

// init is the main bootstrap routine invoked by New once all options have
// been applied. It orchestrates the individual preparation steps so the logic
// stays easy to read and to maintain.
func (s *Service) init(ctx context.Context) error {
	s.initDefaults()

	// Validate configuration early to fail fast when possible.
	if err := s.config.Validate(); err != nil {
		return err
	}
	if s.root == nil {
		return fmt.Errorf("root command is required")
	}

	// Single metadata table consulted by both the scanner and the resolver,
	// instead of re-reading annotations on every lookup.
	s.meta = metadata.NewTable(s.root)

	entries, err := s.scanTools()
	if err != nil {
		return fmt.Errorf("scan commands: %w", err)
	}

	s.index = syncmap.NewRegistry[*toolEntry]()
	if err := s.addToolEntries(entries); err != nil {
		return err
	}
	s.proto = s.buildProtoTools()
	return nil
}

// initDefaults applies fall-back values for optional dependencies that were
// not supplied through options.
func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = &config.Config{}
	}
}
