package server

import (
	"context"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// serveStdio runs the MCP server over stdin/stdout until the stream closes.
func (s *Server) serveStdio(ctx context.Context) error {
	s.logger.Info("Serving via STDIO")

	// WithStdioContextFunc injects our context values into every request;
	// it is the only way tool handlers get hold of the TOPdesk client.
	contextFunc := func(reqCtx context.Context) context.Context {
		return s.withToolContext(reqCtx)
	}

	return mcpserver.ServeStdio(s.mcpServer, mcpserver.WithStdioContextFunc(contextFunc))
}
