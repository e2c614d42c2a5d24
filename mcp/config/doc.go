// Package config defines the YAML configuration for exposing a command tree
// over MCP: server options, exposure name, exclusions and the injected serve
// command name.
package config
