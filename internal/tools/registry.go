// Package tools provides the MCP tool registry and shared helpers for the
// TOPdesk tool handlers.
//
// Tool packages register themselves from init(); the server selects which
// registrations to expose based on the configured profile and wires them
// into the underlying MCP server.
package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolHandler is the function signature for MCP tool handlers
type ToolHandler func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error)

// ToolRegistration holds a tool's metadata and handler
type ToolRegistration struct {
	Name        string
	Description string
	Handler     ToolHandler
	Schema      mcp.Tool
	Profile     string
}

// Global tool registry
var registry = make(map[string]*ToolRegistration)

// ProfileDefinitions maps each profile to the tools it exposes.
var ProfileDefinitions = map[string][]string{
	"core": {
		"test_connection",
	},
	"incidents": {
		"get_incident_by_number",
	},
}

// RegisterTool adds a tool to the registry
func RegisterTool(reg *ToolRegistration) {
	registry[reg.Name] = reg
}

// GetTool retrieves a tool from the registry
func GetTool(name string) (*ToolRegistration, bool) {
	tool, ok := registry[name]
	return tool, ok
}

// GetToolsForProfile returns all tool names for a given profile
func GetToolsForProfile(profile string) []string {
	if profile == "all" {
		// Return all tools from all profiles
		allTools := make(map[string]bool)
		for _, tools := range ProfileDefinitions {
			for _, tool := range tools {
				allTools[tool] = true
			}
		}
		result := make([]string, 0, len(allTools))
		for tool := range allTools {
			result = append(result, tool)
		}
		return result
	}

	tools, ok := ProfileDefinitions[profile]
	if !ok {
		return []string{}
	}
	return tools
}

// AddToolsToServer adds all tools for a profile to an MCP server
func AddToolsToServer(s *server.MCPServer, profile string) error {
	for _, name := range GetToolsForProfile(profile) {
		reg, ok := GetTool(name)
		if !ok {
			// Listed in a profile but not registered - skip silently
			continue
		}
		s.AddTool(reg.Schema, wrapHandler(reg))
	}
	return nil
}

// wrapHandler converts our ToolHandler to mcp-go's expected signature
func wrapHandler(reg *ToolRegistration) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return reg.Handler(ctx, request.GetArguments())
	}
}

// Helper functions for creating tool results

// ToJSON converts a value to JSON string without HTML escaping
func ToJSON(v interface{}) string {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false) // Prevent &, <, > from being escaped as &, <, >
	if err := encoder.Encode(v); err != nil {
		return fmt.Sprintf("{\"error\": \"failed to marshal JSON: %v\"}", err)
	}

	// encoder.Encode() adds a trailing newline, trim it
	return strings.TrimSuffix(buf.String(), "\n")
}

// SuccessResult creates a successful tool result
func SuccessResult(data interface{}) *mcp.CallToolResult {
	return mcp.NewToolResultText(ToJSON(data))
}

// ErrorResult creates an error tool result
func ErrorResult(message string) *mcp.CallToolResult {
	return mcp.NewToolResultError(message)
}

// ErrorResultf creates an error tool result with formatting
func ErrorResultf(format string, args ...interface{}) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf(format, args...))
}
