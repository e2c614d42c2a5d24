package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// TestServiceTools ensures the protocol registry carries one entry per
// scanned tool and that every entry resolves individually through LookupTool.
func TestServiceTools(t *testing.T) {
	ctx := context.Background()
	svc, err := New(ctx, demoApp(&recorder{}))
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	tools := svc.Tools()
	assert.Len(t, tools, len(svc.ToolNames()))

	for _, te := range tools {
		entry, err := svc.LookupTool(te.Metadata.Name)
		if assert.NoError(t, err, "LookupTool(%q) returned error", te.Metadata.Name) {
			assert.EqualValues(t, te.Metadata.Name, entry.Metadata.Name)
			assert.NotNil(t, entry.Metadata.Description)
		}
	}

	_, err = svc.LookupTool("no_such_tool")
	assert.ErrorIs(t, err, ErrUnknownTool)

	// The returned slice is a copy; mutating it never corrupts the shared
	// registry behind subsequent listings.
	tools[0] = nil
	again := svc.Tools()
	if assert.Len(t, again, len(tools)) {
		assert.NotNil(t, again[0])
	}
}

// TestToolHandler drives a tool end to end through the protocol handler the
// server registers per tool.
func TestToolHandler(t *testing.T) {
	ctx := context.Background()
	svc, err := New(ctx, demoApp(&recorder{}))
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	entry, err := svc.LookupTool("app_show_env")
	if err != nil {
		t.Fatalf("failed to lookup tool: %v", err)
	}

	request := &mcpschema.CallToolRequest{
		Params: mcpschema.CallToolRequestParams{
			Name: "app_show_env",
			Arguments: mcpschema.CallToolRequestParamsArguments{
				"env": "production",
			},
		},
	}
	result, jsonErr := entry.Handler(ctx, request)
	assert.Nil(t, jsonErr)
	if assert.Len(t, result.Content, 1) {
		assert.EqualValues(t, "env=production", result.Content[0].Text)
	}
	assert.Nil(t, result.IsError)
}

// TestToolHandlerError asserts that execution failures surface as an in-band
// error result rather than a protocol error.
func TestToolHandlerError(t *testing.T) {
	ctx := context.Background()
	svc, err := New(ctx, demoApp(&recorder{}))
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	entry, err := svc.LookupTool("app_job_start")
	if err != nil {
		t.Fatalf("failed to lookup tool: %v", err)
	}

	request := &mcpschema.CallToolRequest{
		Params: mcpschema.CallToolRequestParams{
			Name: "app_job_start",
			Arguments: mcpschema.CallToolRequestParamsArguments{
				"bogus": true,
			},
		},
	}
	result, jsonErr := entry.Handler(ctx, request)
	assert.Nil(t, jsonErr)
	if assert.NotNil(t, result.IsError) {
		assert.True(t, *result.IsError)
	}
	if assert.Len(t, result.Content, 1) {
		assert.Contains(t, result.Content[0].Text, "unknown parameter")
	}
}
