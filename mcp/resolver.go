package mcp

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// commandChain resolves a tool path back to the cobra commands that produced
// it, root included. Each segment is matched against the structural command
// name first and only then against a rename annotation, so a rename can never
// shadow a sibling's structural name.
func (s *Service) commandChain(segments []string) ([]*cobra.Command, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: empty command path", ErrCommandNotFound)
	}
	if segments[0] != s.root.Name() {
		return nil, fmt.Errorf("%w: %v", ErrCommandNotFound, segments[0])
	}
	chain := make([]*cobra.Command, 0, len(segments))
	chain = append(chain, s.root)
	current := s.root
	for _, segment := range segments[1:] {
		if !current.HasSubCommands() {
			return nil, fmt.Errorf("%w: %v", ErrNotGroup, current.Name())
		}
		next, err := s.findCommand(current, segment)
		if err != nil {
			return nil, err
		}
		chain = append(chain, next)
		current = next
	}
	return chain, nil
}

func (s *Service) findCommand(parent *cobra.Command, segment string) (*cobra.Command, error) {
	for _, candidate := range parent.Commands() {
		if candidate.Name() == segment {
			return candidate, nil
		}
	}
	for _, candidate := range parent.Commands() {
		if s.meta.Lookup(candidate).Name == segment {
			return candidate, nil
		}
	}
	return nil, fmt.Errorf("%w: %v under %v", ErrCommandNotFound, segment, strings.Join(pathOf(parent), " "))
}

func pathOf(cmd *cobra.Command) []string {
	var segments []string
	for current := cmd; current != nil; current = current.Parent() {
		segments = append([]string{current.Name()}, segments...)
	}
	return segments
}
