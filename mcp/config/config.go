package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	mcp "github.com/viant/mcp"
)

// Config controls how a command tree is exposed over MCP.
type Config struct {
	// Server holds transport/auth options passed to the MCP server.
	Server *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
	// Name identifies the MCP server; defaults to the root command name.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	// Command is the name of the injected serve subcommand (default "mcp").
	Command string `yaml:"command,omitempty" json:"command,omitempty"`
	// Exclude lists command paths ("app config set") that are never exposed,
	// in addition to per-command exclusion annotations.
	Exclude []string `yaml:"exclude,omitempty" json:"exclude,omitempty"`
	// IncludeHidden also exposes hidden commands.
	IncludeHidden bool `yaml:"includeHidden,omitempty" json:"includeHidden,omitempty"`
}

// Load reads a configuration file from the local file system.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	return parse(data, path)
}

// LoadURL reads a configuration document from any afs-supported location
// (file, s3, gs, http, ...).
func LoadURL(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download config %q: %w", URL, err)
	}
	return parse(data, URL)
}

func parse(data []byte, location string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", location, err)
	}
	return &cfg, nil
}

// Validate rejects malformed settings before any tool is built.
func (c *Config) Validate() error {
	for _, path := range c.Exclude {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("exclude entries must not be empty")
		}
	}
	return nil
}
