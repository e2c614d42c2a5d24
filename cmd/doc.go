// Package cmd implements the sub-commands that make up the cobra-mcp
// command-line interface (list-tools, tool, call, serve).  The CLI operates
// on a cobra command tree supplied by the embedding application; plumbing
// shared between sub-commands such as configuration loading and service
// initialisation lives in shared.go.
package cmd
