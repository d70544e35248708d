package toolkit

import (
	"sync"

	"github.com/spetersoncode/autotool"
	"github.com/spetersoncode/autotool/crud"
)

// Registry is a verb-indexed collection of admitted tools.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	tools  map[string]ToolPair
	byVerb map[crud.Verb][]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tools:  make(map[string]ToolPair),
		byVerb: make(map[crud.Verb][]string),
	}
}

// Register adds an admitted tool pair to the registry.
// Returns an error if a tool with the same name is already registered.
func (r *Registry) Register(p ToolPair) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[p.Tool.Name]; exists {
		return &ErrDuplicateTool{Name: p.Tool.Name}
	}

	r.tools[p.Tool.Name] = p
	r.byVerb[p.Verb] = append(r.byVerb[p.Verb], p.Tool.Name)
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(p ToolPair) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}

// Unregister removes a tool from the registry.
// It is a no-op if the tool is not registered.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.tools[name]
	if !ok {
		return
	}
	delete(r.tools, name)

	names := r.byVerb[p.Verb]
	for i, n := range names {
		if n == name {
			r.byVerb[p.Verb] = append(names[:i], names[i+1:]...)
			break
		}
	}
}

// Get retrieves a tool pair by operation name.
func (r *Registry) Get(name string) (ToolPair, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.tools[name]
	return p, ok
}

// GetTool retrieves a tool definition by operation name.
func (r *Registry) GetTool(name string) (autotool.Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.tools[name]
	if !ok {
		return autotool.Tool{}, false
	}
	return p.Tool, true
}

// Handler retrieves the invocation handler for an operation name. The
// registry never calls handlers itself; that is the consuming framework's
// job.
func (r *Registry) Handler(name string) (autotool.Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.tools[name]
	if !ok {
		return nil, false
	}
	return p.Handler, true
}

// Has returns true if the registry contains the named tool.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.tools[name]
	return ok
}

// Tools returns all registered tool definitions.
func (r *Registry) Tools() []autotool.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]autotool.Tool, 0, len(r.tools))
	for _, p := range r.tools {
		tools = append(tools, p.Tool)
	}
	return tools
}

// ByVerb returns the tool definitions classified under the given verb, in
// registration order.
func (r *Registry) ByVerb(v crud.Verb) []autotool.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := r.byVerb[v]
	tools := make([]autotool.Tool, 0, len(names))
	for _, name := range names {
		tools = append(tools, r.tools[name].Tool)
	}
	return tools
}

// Names returns the names of all registered tools.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	return names
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}
