package toolkit

import "fmt"

// ErrDuplicateTool is returned when registering a tool with a name that is
// already present in the registry.
type ErrDuplicateTool struct {
	Name string
}

// Error returns a formatted error message including the duplicate tool name.
func (e *ErrDuplicateTool) Error() string {
	return fmt.Sprintf("toolkit: already registered: %s", e.Name)
}
