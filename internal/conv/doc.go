// Package conv provides a small generic helper for bridging to the MCP
// schema types, whose optional fields are pointer-typed.
package conv
