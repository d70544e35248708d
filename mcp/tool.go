// Package mcp exposes an admitted tool registry over the Model Context
// Protocol.
//
// The filtering core decides which of a wrapped client's operations may
// become tools; this package hands the survivors to MCP clients (such as
// desktop assistants) for discovery and invocation. Invocation runs through
// the handlers the enumerator supplied; the filtering core itself never
// executes an operation.
//
//	w, _ := toolkit.Wrap(introspect.NewEnumerator(client),
//	    toolkit.WithControls(controls),
//	)
//
//	if err := mcp.ServeStdio(w.Registry()); err != nil {
//	    log.Fatal(err)
//	}
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/spetersoncode/autotool"
)

// ToMCPTool converts an autotool Tool to an MCP Tool.
// The Parameters JSON schema becomes the MCP Tool's RawInputSchema.
func ToMCPTool(t autotool.Tool) mcp.Tool {
	return mcp.NewToolWithRawSchema(t.Name, t.Description, t.Parameters)
}

// ToMCPTools converts a slice of autotool Tools to MCP Tools.
func ToMCPTools(tools []autotool.Tool) []mcp.Tool {
	result := make([]mcp.Tool, len(tools))
	for i, t := range tools {
		result[i] = ToMCPTool(t)
	}
	return result
}
