// Package conversion maps cobra/pflag parameter declarations to JSON schema
// properties for MCP tool input contracts.
package conversion
