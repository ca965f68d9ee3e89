package tools

import (
	"context"
	"fmt"

	"github.com/topdesk-mcp/topdesk-mcp-go/internal/topdesk"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	// clientKey is the context key for storing the TOPdesk client
	clientKey contextKey = "topdesk-client"
)

// IncidentClient is the surface of the TOPdesk client used by tool
// handlers. Tests inject mock implementations through WithClient instead of
// standing up a real tenant.
type IncidentClient interface {
	LookupIncident(ctx context.Context, raw string) (*topdesk.IncidentSummary, error)
	Ping(ctx context.Context) (string, error)
}

// Compile-time check that the real client satisfies the tool-facing surface.
var _ IncidentClient = (*topdesk.Client)(nil)

// WithClient stores the TOPdesk client used by tool handlers in the context.
// The server installs it for every request; tests use it to inject mocks.
func WithClient(ctx context.Context, c IncidentClient) context.Context {
	return context.WithValue(ctx, clientKey, c)
}

// GetClient retrieves the TOPdesk client from the context.
func GetClient(ctx context.Context) (IncidentClient, error) {
	if c, ok := ctx.Value(clientKey).(IncidentClient); ok && c != nil {
		return c, nil
	}
	return nil, fmt.Errorf("no TOPdesk client in context")
}
