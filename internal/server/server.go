package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/topdesk-mcp/topdesk-mcp-go/internal/config"
	"github.com/topdesk-mcp/topdesk-mcp-go/internal/tools"
	"github.com/topdesk-mcp/topdesk-mcp-go/internal/topdesk"
)

// parseLogLevel converts a string log level to slog.Level
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Server wraps the MCP server with our configuration
type Server struct {
	mcpServer *mcpserver.MCPServer
	config    *config.Config
	client    tools.IncidentClient
	logger    *slog.Logger
}

// New creates a new MCP server instance
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: parseLogLevel(cfg.LogLevel),
		}))
	}

	client, err := topdesk.NewClient(cfg.TopDesk, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create TOPdesk client: %w", err)
	}

	mcpServer := mcpserver.NewMCPServer(
		"TOPdesk MCP Server",
		"1.0.0",
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)

	s := &Server{
		mcpServer: mcpServer,
		config:    cfg,
		client:    client,
		logger:    logger,
	}

	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	logger.Info("TOPdesk MCP server initialized",
		"profile", cfg.Profile,
		"mode", cfg.Mode)

	return s, nil
}

// registerTools registers all tools for the configured profile
func (s *Server) registerTools() error {
	if err := tools.AddToolsToServer(s.mcpServer, s.config.Profile); err != nil {
		return err
	}

	toolNames := tools.GetToolsForProfile(s.config.Profile)
	s.logger.Info("Registered tools", "count", len(toolNames))

	return nil
}

// Serve starts the server in the configured mode
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("Starting server", "mode", s.config.Mode)

	switch s.config.Mode {
	case "stdio":
		return s.serveStdio(ctx)
	case "http":
		return s.serveHTTP(ctx)
	default:
		return fmt.Errorf("unknown server mode: %s", s.config.Mode)
	}
}

// withToolContext injects the TOPdesk client into a request context. Every
// tool handler resolves the client from there, which is also the seam tests
// use to substitute mocks.
func (s *Server) withToolContext(ctx context.Context) context.Context {
	return tools.WithClient(ctx, s.client)
}
