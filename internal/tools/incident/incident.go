// Package incident registers the TOPdesk incident tools.
package incident

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/topdesk-mcp/topdesk-mcp-go/internal/tools"
	"github.com/topdesk-mcp/topdesk-mcp-go/internal/topdesk"
)

func init() {
	RegisterGetIncidentByNumber()
	RegisterTestConnection()
}

// RegisterGetIncidentByNumber registers the get_incident_by_number tool
func RegisterGetIncidentByNumber() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "get_incident_by_number",
		Description: "Look up a TOPdesk incident by its human-readable ticket number",
		Profile:     "incidents",
		Schema: mcp.NewTool("get_incident_by_number",
			mcp.WithDescription("Look up a TOPdesk incident by its human-readable ticket number (e.g. 2510017 or 'I2510 017') and return a flattened summary"),
			mcp.WithString("ticket_number",
				mcp.Required(),
				mcp.Description("7-digit ticket number, as an integer or a numeric string")),
		),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			raw, err := tools.ExtractTicketNumber(args)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			client, err := tools.GetClient(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get TOPdesk client: %v", err), nil
			}

			summary, err := client.LookupIncident(ctx, raw)
			if err != nil {
				// Lookup failures are part of the tool's result contract,
				// not protocol errors: NotFound, transport and auth
				// problems all come back as the failure envelope.
				return tools.SuccessResult(topdesk.FailureEnvelope(err)), nil
			}

			return tools.SuccessResult(topdesk.SuccessEnvelope(summary)), nil
		},
	})
}

// RegisterTestConnection registers the test_connection tool
func RegisterTestConnection() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "test_connection",
		Description: "Verify TOPdesk connectivity and credentials",
		Profile:     "core",
		Schema: mcp.NewTool("test_connection",
			mcp.WithDescription("Verify TOPdesk connectivity and credentials via the API version endpoint"),
		),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			client, err := tools.GetClient(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get TOPdesk client: %v", err), nil
			}

			version, err := client.Ping(ctx)
			if err != nil {
				return tools.ErrorResultf("TOPdesk connectivity check failed: %v", err), nil
			}

			result := map[string]interface{}{
				"status":      "ok",
				"message":     "TOPdesk MCP server is operational",
				"api_version": version,
			}
			return tools.SuccessResult(result), nil
		},
	})
}
