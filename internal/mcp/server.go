// Package mcp exposes fitness tracking operations as Model Context Protocol
// tools served over stdio.
package mcp

import (
	"context"

	"github.com/hyperengineering/fitlog/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	store     store.Store
}

// NewServer creates an MCP server whose tools operate on s.
func NewServer(s store.Store, version string) *Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fitlog",
			Version: version,
		},
		nil,
	)

	srv := &Server{
		mcpServer: mcpServer,
		store:     s,
	}
	srv.registerTools()

	return srv
}

// Serve runs the server on stdin/stdout until ctx is cancelled or the
// client disconnects.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
