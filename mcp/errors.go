package mcp

import "errors"

var (
	// ErrUnknownTool indicates a call named a tool absent from the registry.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrNameCollision indicates two commands resolved to the same flat tool
	// name. Surfaced at scan time, before any tool is usable.
	ErrNameCollision = errors.New("duplicate tool name")

	// ErrCommandNotFound indicates a dotted path segment matched no child by
	// structural or override name.
	ErrCommandNotFound = errors.New("command not found")

	// ErrNotGroup indicates a non-terminal path segment resolved to a command
	// without children.
	ErrNotGroup = errors.New("not a command group")
)
