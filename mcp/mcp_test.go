package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spetersoncode/autotool"
	"github.com/spetersoncode/autotool/crud"
	"github.com/spetersoncode/autotool/toolkit"
)

func TestToMCPTool(t *testing.T) {
	t.Run("converts tool with raw schema", func(t *testing.T) {
		schema := json.RawMessage(`{"type":"object","properties":{"name":{"type":"string"}}}`)
		tool := autotool.Tool{
			Name:        "get_bucket",
			Description: "Fetch one bucket",
			Parameters:  schema,
		}

		mcpTool := ToMCPTool(tool)

		assert.Equal(t, "get_bucket", mcpTool.Name)
		assert.Equal(t, "Fetch one bucket", mcpTool.Description)
		assert.Equal(t, schema, mcpTool.RawInputSchema)
	})

	t.Run("converts a slice", func(t *testing.T) {
		tools := []autotool.Tool{
			{Name: "get_bucket", Description: "Fetch one bucket"},
			{Name: "list_buckets", Description: "List buckets"},
		}

		mcpTools := ToMCPTools(tools)

		require.Len(t, mcpTools, 2)
		assert.Equal(t, "get_bucket", mcpTools[0].Name)
		assert.Equal(t, "list_buckets", mcpTools[1].Name)
	})
}

func TestNewServer(t *testing.T) {
	buildRegistry := func(t *testing.T) *toolkit.Registry {
		t.Helper()
		controls, err := crud.New(crud.WithRead(true))
		require.NoError(t, err)

		w, err := toolkit.New([]autotool.Candidate{
			{
				Name: "list_buckets",
				Invoke: func(ctx context.Context, call autotool.ToolCall) (string, error) {
					return `["logs"]`, nil
				},
			},
			{Name: "delete_bucket"},
		}, toolkit.WithControls(controls))
		require.NoError(t, err)

		return w.Registry()
	}

	t.Run("builds a server from an admitted registry", func(t *testing.T) {
		s := NewServer(buildRegistry(t), WithName("storage-tools"), WithVersion("0.1.0"))
		assert.NotNil(t, s)
	})

	t.Run("defaults apply without options", func(t *testing.T) {
		assert.NotNil(t, NewServer(buildRegistry(t)))
	})
}

func TestMCPHandler(t *testing.T) {
	t.Run("marshals arguments and forwards the call", func(t *testing.T) {
		var got autotool.ToolCall
		h := mcpHandler("get_bucket", func(ctx context.Context, call autotool.ToolCall) (string, error) {
			got = call
			return `{"name":"logs"}`, nil
		})

		req := mcp.CallToolRequest{}
		req.Params.Name = "get_bucket"
		req.Params.Arguments = map[string]any{"name": "logs"}

		result, err := h(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.False(t, result.IsError)

		assert.Equal(t, "get_bucket", got.Name)
		assert.NotEmpty(t, got.ID)
		assert.JSONEq(t, `{"name":"logs"}`, got.Arguments)
	})

	t.Run("nil arguments become an empty object", func(t *testing.T) {
		var got autotool.ToolCall
		h := mcpHandler("list_buckets", func(ctx context.Context, call autotool.ToolCall) (string, error) {
			got = call
			return "[]", nil
		})

		_, err := h(context.Background(), mcp.CallToolRequest{})
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, got.Arguments)
	})

	t.Run("handler errors surface as MCP error results", func(t *testing.T) {
		h := mcpHandler("get_bucket", func(ctx context.Context, call autotool.ToolCall) (string, error) {
			return "", context.DeadlineExceeded
		})

		result, err := h(context.Background(), mcp.CallToolRequest{})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsError)
	})
}
