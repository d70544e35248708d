package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/spetersoncode/autotool"
	"github.com/spetersoncode/autotool/toolkit"
)

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	name    string
	version string
}

// WithName sets the server name reported to MCP clients.
func WithName(name string) ServerOption {
	return func(c *serverConfig) {
		c.name = name
	}
}

// WithVersion sets the server version reported to MCP clients.
func WithVersion(version string) ServerOption {
	return func(c *serverConfig) {
		c.version = version
	}
}

// NewServer creates an MCP server exposing every tool in an admitted
// registry. Tools without an invocation handler are skipped; MCP clients
// could discover but never call them.
//
// Example:
//
//	w, _ := toolkit.Wrap(introspect.NewEnumerator(client),
//	    toolkit.WithControls(controls),
//	)
//
//	s := mcp.NewServer(w.Registry(),
//	    mcp.WithName("storage-tools"),
//	    mcp.WithVersion("1.0.0"),
//	)
//	server.ServeStdio(s)
func NewServer(registry *toolkit.Registry, opts ...ServerOption) *server.MCPServer {
	cfg := &serverConfig{
		name:    "autotool-mcp-server",
		version: "1.0.0",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s := server.NewMCPServer(
		cfg.name,
		cfg.version,
		server.WithToolCapabilities(true),
	)

	for _, t := range registry.Tools() {
		handler, ok := registry.Handler(t.Name)
		if !ok || handler == nil {
			continue
		}
		s.AddTool(ToMCPTool(t), mcpHandler(t.Name, handler))
	}

	return s
}

// mcpHandler wraps an autotool Handler as an MCP tool handler.
func mcpHandler(name string, handler autotool.Handler) func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsJSON := "{}"
		if req.Params.Arguments != nil {
			data, err := json.Marshal(req.Params.Arguments)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to marshal arguments: %v", err)), nil
			}
			argsJSON = string(data)
		}

		call := autotool.ToolCall{
			ID:        uuid.NewString(),
			Name:      name,
			Arguments: argsJSON,
		}

		result, err := handler(ctx, call)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(result), nil
	}
}

// ServeStdio starts an MCP server over stdin/stdout, the standard transport
// for MCP servers invoked as subprocesses.
func ServeStdio(registry *toolkit.Registry, opts ...ServerOption) error {
	s := NewServer(registry, opts...)
	return server.ServeStdio(s)
}
