// Package mcp exposes a cobra command tree as a flat set of MCP tools. Its
// central Service type scans the tree once at construction, derives one tool
// descriptor per invocable command and, on every call, replays the full
// parent-to-child invocation chain with a call-scoped shared state and
// output sink.
package mcp
