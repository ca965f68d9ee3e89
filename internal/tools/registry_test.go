package tools_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topdesk-mcp/topdesk-mcp-go/internal/tools"

	// Import tool packages to trigger init() registration.
	_ "github.com/topdesk-mcp/topdesk-mcp-go/internal/tools/incident"
)

func TestGetToolsForProfile(t *testing.T) {
	t.Run("core profile", func(t *testing.T) {
		assert.Equal(t, []string{"test_connection"}, tools.GetToolsForProfile("core"))
	})

	t.Run("incidents profile", func(t *testing.T) {
		assert.Equal(t, []string{"get_incident_by_number"}, tools.GetToolsForProfile("incidents"))
	})

	t.Run("all profile is the union", func(t *testing.T) {
		all := tools.GetToolsForProfile("all")
		sort.Strings(all)
		assert.Equal(t, []string{"get_incident_by_number", "test_connection"}, all)
	})

	t.Run("unknown profile is empty", func(t *testing.T) {
		assert.Empty(t, tools.GetToolsForProfile("nope"))
	})
}

func TestRegistryContainsProfileTools(t *testing.T) {
	// Every tool listed in a profile must actually be registered.
	for profile, names := range tools.ProfileDefinitions {
		for _, name := range names {
			reg, ok := tools.GetTool(name)
			require.True(t, ok, "tool %s from profile %s is not registered", name, profile)
			assert.Equal(t, name, reg.Name)
			assert.NotNil(t, reg.Handler)
			assert.NotEmpty(t, reg.Description)
		}
	}
}

func TestToJSON(t *testing.T) {
	t.Run("does not escape HTML", func(t *testing.T) {
		out := tools.ToJSON(map[string]string{"q": "number=='I2510 017' && a<b"})
		assert.Contains(t, out, "&&")
		assert.Contains(t, out, "<")
		assert.NotContains(t, out, "\\u0026")
	})

	t.Run("no trailing newline", func(t *testing.T) {
		out := tools.ToJSON(map[string]int{"n": 1})
		assert.NotEmpty(t, out)
		assert.NotEqual(t, byte('\n'), out[len(out)-1])
	})
}

func TestResultHelpers(t *testing.T) {
	t.Run("success result", func(t *testing.T) {
		result := tools.SuccessResult(map[string]bool{"success": true})
		assert.False(t, result.IsError)
	})

	t.Run("error result", func(t *testing.T) {
		result := tools.ErrorResultf("lookup failed: %s", "boom")
		assert.True(t, result.IsError)
	})
}
