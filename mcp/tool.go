package mcp

import (
	"context"
	"fmt"

	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"

	"github.com/viant/cobra-mcp/internal/conv"
)

// buildProtoTools materializes the protocol entry for every scanned command.
// Invoked once at bootstrap; connection handlers and listings share the
// result rather than rebuilding handlers per call.
func (s *Service) buildProtoTools() serverproto.Tools {
	var result = make(serverproto.Tools, 0, len(s.tools))
	for i := range s.tools {
		entry, err := s.LookupTool(s.tools[i].name)
		if err != nil {
			continue
		}
		result = append(result, entry)
	}
	return result
}

// Tools returns protocol tool entries in scan order, so successive listings
// are identical. The slice is a copy detached from the shared registry.
func (s *Service) Tools() serverproto.Tools {
	result := make(serverproto.Tools, len(s.proto))
	copy(result, s.proto)
	return result
}

// LookupTool returns the protocol entry for a single tool name.
func (s *Service) LookupTool(name string) (*serverproto.ToolEntry, error) {
	entry, ok := s.index.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownTool, name)
	}

	toolEntry := serverproto.ToolEntry{
		Metadata: mcpschema.Tool{
			Name:        entry.name,
			Description: conv.Pointer(entry.description),
			InputSchema: entry.inputSchema,
		},
	}
	toolEntry.Handler = func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		output, err := s.ExecuteTool(ctx, request.Params.Name, request.Params.Arguments)
		res := &mcpschema.CallToolResult{}
		if err != nil {
			res.IsError = conv.Pointer[bool](true)
			res.Content = append(res.Content, mcpschema.CallToolResultContentElem{
				Text: err.Error(),
			})
			return res, nil
		}
		res.Content = append(res.Content, mcpschema.CallToolResultContentElem{
			Text: output,
		})
		return res, nil
	}
	return &toolEntry, nil
}

// ExecuteTool replays the command chain behind a registered tool with the
// supplied arguments and returns the captured text output with trailing
// whitespace trimmed. A name absent from the registry is rejected before
// anything runs.
func (s *Service) ExecuteTool(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	entry, ok := s.index.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrUnknownTool, name)
	}
	if args == nil {
		args = map[string]interface{}{}
	}
	output, err := s.executeChain(ctx, entry, args)
	if err != nil {
		return "", fmt.Errorf("command execution failed: %w", err)
	}
	return output, nil
}
