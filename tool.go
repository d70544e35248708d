package autotool

import (
	"context"
	"encoding/json"
)

// Tool defines an operation that can be offered to the model.
type Tool struct {
	// Name is the unique identifier for the tool. It is the exact operation
	// name the agent will invoke on the wrapped client.
	Name string
	// Description explains what the tool does (helps the model decide when to use it).
	Description string
	// Parameters is a JSON Schema object defining the operation parameters.
	Parameters json.RawMessage
}

// ToolCall represents a request from the model to invoke a tool.
type ToolCall struct {
	// ID is a unique identifier for this tool call (used to match results).
	ID string `json:"id"`
	// Name is the name of the tool to invoke.
	Name string `json:"name"`
	// Arguments is a JSON string containing the arguments to pass.
	Arguments string `json:"arguments"`
}

// ToolResult represents the result of executing a tool call.
type ToolResult struct {
	// ToolCallID matches the ID from the corresponding ToolCall.
	ToolCallID string `json:"toolCallId"`
	// Content is the result content to return to the model.
	Content string `json:"content"`
	// IsError indicates if the result represents an error.
	IsError bool `json:"isError,omitempty"`
}

// Handler is a function that executes a tool call and returns a result.
// The context supports cancellation and timeout. Handlers are supplied by
// enumerators and invoked only by the consuming agent framework; nothing in
// this library calls one.
type Handler func(ctx context.Context, call ToolCall) (string, error)
