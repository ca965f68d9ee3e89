package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// shutdownTimeout bounds graceful HTTP shutdown after ctx cancellation.
const shutdownTimeout = 10 * time.Second

// serveHTTP runs the MCP server over streamable HTTP until ctx is canceled.
func (s *Server) serveHTTP(ctx context.Context) error {
	httpSrv := mcpserver.NewStreamableHTTPServer(s.mcpServer,
		mcpserver.WithHTTPContextFunc(func(reqCtx context.Context, r *http.Request) context.Context {
			return s.withToolContext(reqCtx)
		}),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.Start(fmt.Sprintf(":%d", s.config.HTTPPort))
	}()

	s.logger.Info("Serving via HTTP", "port", s.config.HTTPPort)

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	}
}
