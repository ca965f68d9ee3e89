package incident

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topdesk-mcp/topdesk-mcp-go/internal/tools"
	"github.com/topdesk-mcp/topdesk-mcp-go/internal/topdesk"
)

// MockClient implements tools.IncidentClient with function fields.
type MockClient struct {
	LookupIncidentFunc func(ctx context.Context, raw string) (*topdesk.IncidentSummary, error)
	PingFunc           func(ctx context.Context) (string, error)
}

func (m *MockClient) LookupIncident(ctx context.Context, raw string) (*topdesk.IncidentSummary, error) {
	if m.LookupIncidentFunc != nil {
		return m.LookupIncidentFunc(ctx, raw)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *MockClient) Ping(ctx context.Context) (string, error) {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return "", fmt.Errorf("not implemented")
}

// getTextContent extracts text from MCP Content interface
func getTextContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)

	textContent, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok, "Content should be TextContent")
	return textContent.Text
}

func TestGetIncidentByNumber(t *testing.T) {
	reg, ok := tools.GetTool("get_incident_by_number")
	require.True(t, ok)

	t.Run("returns success envelope for a match", func(t *testing.T) {
		mock := &MockClient{
			LookupIncidentFunc: func(ctx context.Context, raw string) (*topdesk.IncidentSummary, error) {
				assert.Equal(t, "2510017", raw)
				return topdesk.Flatten(map[string]any{
					"id":               "a9e5f1c2-8b4d-4f6e-9c3a-1d2e3f4a5b6c",
					"number":           "I2510 017",
					"briefDescription": "Laptop will not boot",
				}), nil
			},
		}
		ctx := tools.WithClient(context.Background(), mock)

		result, err := reg.Handler(ctx, map[string]interface{}{"ticket_number": float64(2510017)})
		require.NoError(t, err)
		assert.False(t, result.IsError)

		var out map[string]any
		require.NoError(t, json.Unmarshal([]byte(getTextContent(t, result)), &out))
		assert.Equal(t, true, out["success"])
		assert.Equal(t, "I2510 017", out["incident_number"])
		assert.Equal(t, "a9e5f1c2-8b4d-4f6e-9c3a-1d2e3f4a5b6c", out["incident_id"])
		assert.Contains(t, out, "raw_response")
	})

	t.Run("not found comes back as failure envelope", func(t *testing.T) {
		mock := &MockClient{
			LookupIncidentFunc: func(ctx context.Context, raw string) (*topdesk.IncidentSummary, error) {
				return nil, &topdesk.NotFoundError{Raw: raw, Canonical: topdesk.CanonicalTicketNumber(raw)}
			},
		}
		ctx := tools.WithClient(context.Background(), mock)

		result, err := reg.Handler(ctx, map[string]interface{}{"ticket_number": "2510999"})
		require.NoError(t, err)
		assert.False(t, result.IsError, "lookup failures are results, not protocol errors")

		var out map[string]any
		require.NoError(t, json.Unmarshal([]byte(getTextContent(t, result)), &out))
		assert.Equal(t, false, out["success"])
		assert.Contains(t, out["error"], "2510999")
		assert.Contains(t, out["error"], "I2510 999")
	})

	t.Run("transport failure is distinguishable from not found", func(t *testing.T) {
		mock := &MockClient{
			LookupIncidentFunc: func(ctx context.Context, raw string) (*topdesk.IncidentSummary, error) {
				return nil, &topdesk.TransportError{Err: fmt.Errorf("connection refused")}
			},
		}
		ctx := tools.WithClient(context.Background(), mock)

		result, err := reg.Handler(ctx, map[string]interface{}{"ticket_number": "2510017"})
		require.NoError(t, err)

		var out map[string]any
		require.NoError(t, json.Unmarshal([]byte(getTextContent(t, result)), &out))
		assert.Equal(t, false, out["success"])
		assert.Contains(t, out["error"], "request to TOPdesk failed")
		assert.NotContains(t, out["error"], "No incident found")
	})

	t.Run("missing ticket_number is a tool error", func(t *testing.T) {
		ctx := tools.WithClient(context.Background(), &MockClient{})

		result, err := reg.Handler(ctx, map[string]interface{}{})
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, getTextContent(t, result), "ticket_number parameter is required")
	})

	t.Run("missing client is a tool error", func(t *testing.T) {
		result, err := reg.Handler(context.Background(), map[string]interface{}{"ticket_number": "2510017"})
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, getTextContent(t, result), "no TOPdesk client in context")
	})
}

func TestTestConnection(t *testing.T) {
	reg, ok := tools.GetTool("test_connection")
	require.True(t, ok)

	t.Run("reports version on success", func(t *testing.T) {
		mock := &MockClient{
			PingFunc: func(ctx context.Context) (string, error) { return "3.1.4", nil },
		}
		ctx := tools.WithClient(context.Background(), mock)

		result, err := reg.Handler(ctx, map[string]interface{}{})
		require.NoError(t, err)
		assert.False(t, result.IsError)

		content := getTextContent(t, result)
		assert.Contains(t, content, "ok")
		assert.Contains(t, content, "3.1.4")
	})

	t.Run("reports failure", func(t *testing.T) {
		mock := &MockClient{
			PingFunc: func(ctx context.Context) (string, error) {
				return "", &topdesk.AuthError{StatusCode: 401}
			},
		}
		ctx := tools.WithClient(context.Background(), mock)

		result, err := reg.Handler(ctx, map[string]interface{}{})
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, getTextContent(t, result), "authentication failed")
	})
}
