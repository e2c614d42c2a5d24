package mcp

import (
	"context"

	"github.com/viant/jsonrpc/transport"
	protocolclient "github.com/viant/mcp-protocol/client"
	"github.com/viant/mcp-protocol/logger"
	serverproto "github.com/viant/mcp-protocol/server"
)

// NewHandler adapts the service to the per-connection handler factory that
// mcp.NewServer expects. The entries registered here were materialized at
// bootstrap from the scanned command tree, so all connections share one
// registry and a new session never re-walks the tree.
func (s *Service) NewHandler(ctx context.Context, notifier transport.Notifier, l logger.Logger, cli protocolclient.Operations) (serverproto.Handler, error) {
	handler := serverproto.NewDefaultHandler(notifier, l, cli)
	for _, entry := range s.proto {
		handler.Registry.ToolRegistry.Put(entry.Metadata.Name, entry)
	}
	return handler, nil
}
